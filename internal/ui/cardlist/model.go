// Package cardlist renders the current page of notification cards and turns
// key presses into dashboard intents.
package cardlist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notifdash/internal/dashboard"
	"github.com/nhle/notifdash/internal/keys"
	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/theme"
)

// OpenDetailMsg asks the parent to open the detail view.
type OpenDetailMsg struct {
	ID string
}

// MarkReadMsg asks the parent to mark a notification read.
type MarkReadMsg struct {
	ID string
}

// DeleteMsg asks the parent to delete a notification.
type DeleteMsg struct {
	ID string
}

// PageMsg asks the parent to move Delta pages.
type PageMsg struct {
	Delta int
}

// SearchMsg carries the search text after every edit.
type SearchMsg struct {
	Text string
}

// maxGridColumns and minCardWidth bound the grid layout.
const (
	maxGridColumns = 3
	minCardWidth   = 28
)

// Model is the card list view component.
type Model struct {
	keys *keys.KeyMap
	now  func() time.Time

	records       []model.Notification
	viewMode      model.ViewMode
	filteredCount int
	currentPage   int
	emptyText     string

	cursor   int
	expanded map[string]bool

	pager       paginator.Model
	searchMode  bool
	searchInput textinput.Model

	width  int
	height int
}

// New creates a new card list model.
func New(k *keys.KeyMap, width, height int) Model {
	si := textinput.New()
	si.Placeholder = "search title, preview or sender..."
	si.Prompt = "/ "
	si.Width = width - 4

	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = lipgloss.NewStyle().Foreground(theme.ColorBlue).Render("●")
	p.InactiveDot = lipgloss.NewStyle().Foreground(theme.ColorSubtle).Render("○")

	return Model{
		keys:        k,
		now:         time.Now,
		viewMode:    model.ViewModeList,
		expanded:    make(map[string]bool),
		pager:       p,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// SetClock replaces time.Now for expiry labels.
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
}

// SetViewModel replaces the rendered page. The cursor returns to the first
// card when the page changes and is clamped otherwise.
func (m *Model) SetViewModel(vm dashboard.ViewModel) {
	if vm.CurrentPage != m.currentPage {
		m.cursor = 0
	}
	m.records = vm.VisibleRecords
	m.viewMode = vm.ViewMode
	m.filteredCount = vm.FilteredCount
	m.currentPage = vm.CurrentPage
	m.emptyText = vm.EmptyState()

	m.pager.TotalPages = max(vm.TotalPages, 1)
	m.pager.Page = max(vm.CurrentPage-1, 0)

	m.cursor = min(m.cursor, max(len(m.records)-1, 0))
}

// Selected returns the notification under the cursor.
func (m Model) Selected() (model.Notification, bool) {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return model.Notification{}, false
	}
	return m.records[m.cursor], true
}

// Cursor returns the index of the selected card on the page.
func (m Model) Cursor() int { return m.cursor }

// Searching reports whether the search input has focus.
func (m Model) Searching() bool { return m.searchMode }

// Expanded reports whether the card with id shows its full details.
func (m Model) Expanded(id string) bool { return m.expanded[id] }

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the card list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searchMode {
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if m.searchMode {
		return m.handleSearchKeys(keyMsg)
	}
	return m.handleNormalKeys(keyMsg)
}

// handleSearchKeys processes key input while in search mode. Every edit is
// sent to the parent so results follow the typing.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil

	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.Reset()
		return m, search("")
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if after := m.searchInput.Value(); after != before {
		return m, tea.Batch(cmd, search(after))
	}
	return m, cmd
}

// handleNormalKeys processes key input in normal (non-search) mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor+cols < len(m.records) {
			m.cursor += cols
		}

	case key.Matches(msg, m.keys.Left):
		if cols > 1 && m.cursor%cols > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if cols > 1 && m.cursor%cols < cols-1 && m.cursor+1 < len(m.records) {
			m.cursor++
		}

	case key.Matches(msg, m.keys.NextPage):
		return m, func() tea.Msg { return PageMsg{Delta: 1} }

	case key.Matches(msg, m.keys.PrevPage):
		return m, func() tea.Msg { return PageMsg{Delta: -1} }

	case key.Matches(msg, m.keys.Select):
		if n, ok := m.Selected(); ok {
			return m, func() tea.Msg { return OpenDetailMsg{ID: n.ID} }
		}

	case key.Matches(msg, m.keys.Expand):
		if n, ok := m.Selected(); ok {
			if m.expanded[n.ID] {
				delete(m.expanded, n.ID)
			} else {
				m.expanded[n.ID] = true
			}
		}

	case key.Matches(msg, m.keys.MarkRead):
		if n, ok := m.Selected(); ok {
			return m, func() tea.Msg { return MarkReadMsg{ID: n.ID} }
		}

	case key.Matches(msg, m.keys.Delete):
		if n, ok := m.Selected(); ok {
			return m, func() tea.Msg { return DeleteMsg{ID: n.ID} }
		}

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		return m, m.searchInput.Focus()
	}

	return m, nil
}

func search(text string) tea.Cmd {
	return func() tea.Msg { return SearchMsg{Text: text} }
}

// ResetSearch clears the search box without emitting a message.
func (m *Model) ResetSearch() {
	m.searchMode = false
	m.searchInput.Blur()
	m.searchInput.Reset()
}

// SearchView renders the search box for the toolbar.
func (m Model) SearchView() string {
	if m.searchMode {
		return m.searchInput.View()
	}
	if v := m.searchInput.Value(); v != "" {
		return "/ " + v
	}
	return theme.DimmedStyle.Render("/ search notifications")
}

// columns returns how many cards share a row.
func (m Model) columns() int {
	if m.viewMode != model.ViewModeGrid {
		return 1
	}
	return min(max(m.width/minCardWidth, 1), maxGridColumns)
}

// View renders the card list view.
func (m Model) View() string {
	if len(m.records) == 0 {
		return m.renderEmptyState()
	}

	cols := m.columns()
	cardWidth := max(m.width/cols, minCardWidth)
	now := m.now()

	var (
		rows      []string
		cursorTop int
		cursorEnd int
		line      int
	)
	for start := 0; start < len(m.records); start += cols {
		end := min(start+cols, len(m.records))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			n := m.records[i]
			cards = append(cards, renderCard(n, cardWidth, i == m.cursor, m.expanded[n.ID], now))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		h := lipgloss.Height(row)
		if m.cursor >= start && m.cursor < end {
			cursorTop, cursorEnd = line, line+h
		}
		rows = append(rows, row)
		line += h
	}

	body := scrollTo(strings.Join(rows, "\n"), cursorTop, cursorEnd, max(m.height-1, 1))
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

// scrollTo returns at most height lines of content, offset so that the
// lines [top, end) are visible.
func scrollTo(content string, top, end, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= height {
		return content
	}
	offset := 0
	if end > height {
		offset = min(end-height, top)
	}
	last := min(offset+height, len(lines))
	return strings.Join(lines[offset:last], "\n")
}

// renderFooter shows the page dots and the result count.
func (m Model) renderFooter() string {
	count := fmt.Sprintf("%d result", m.filteredCount)
	if m.filteredCount != 1 {
		count += "s"
	}
	if m.pager.TotalPages <= 1 {
		return theme.DimmedStyle.Render(count)
	}
	return fmt.Sprintf(
		"%s  %s",
		m.pager.View(),
		theme.DimmedStyle.Render(fmt.Sprintf("page %d of %d · %s", m.pager.Page+1, m.pager.TotalPages, count)),
	)
}

// renderEmptyState shows guidance text when the page has no cards.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	text := m.emptyText
	if text == "" {
		text = dashboard.EmptyInbox
	}
	return style.Render("No notifications found.\n\n" + text)
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchInput.Width = width - 4
}
