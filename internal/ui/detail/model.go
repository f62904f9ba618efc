package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nhle/notifdash/internal/keys"
	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/theme"
)

// BackMsg signals the parent to close the detail view.
type BackMsg struct{}

// Actions the detail view can request.
const (
	ActionMarkRead = "mark_read"
	ActionDelete   = "delete"
)

// ActionMsg signals the parent to execute an action on the shown notification.
type ActionMsg struct {
	Action string
	ID     string
}

// Model is the notification detail view component.
type Model struct {
	record   *model.Notification
	viewport viewport.Model
	keys     *keys.KeyMap
	now      func() time.Time
	width    int
	height   int
}

// New creates a new detail view model.
func New(keys *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		keys:     keys,
		now:      time.Now,
		width:    width,
		height:   height,
	}
}

// SetClock replaces time.Now for the relative expiry.
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
}

// Init returns the initial command for the detail view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg {
				return BackMsg{}
			}

		case key.Matches(msg, m.keys.MarkRead):
			if m.record != nil && m.record.Status != model.StatusRead {
				id := m.record.ID
				return m, func() tea.Msg {
					return ActionMsg{Action: ActionMarkRead, ID: id}
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if m.record != nil {
				id := m.record.ID
				return m, func() tea.Msg {
					return ActionMsg{Action: ActionDelete, ID: id}
				}
			}
			return m, nil
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	if m.record == nil {
		emptyStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray)
		return emptyStyle.Render("No notification selected")
	}

	return m.viewport.View()
}

// renderContent builds the full detail content string for the viewport.
func (m Model) renderContent() string {
	if m.record == nil {
		return ""
	}

	n := m.record
	textWidth := max(min(m.width-4, 100), 20)
	var sections []string

	// Title
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	sections = append(sections, titleStyle.Render(n.Title))

	// Badges line: category + status + pinned
	badges := []string{
		theme.CategoryStyle(n.Category).Render(theme.CategoryLabel(model.CategoryFilter(n.Category))),
		theme.StatusStyle(n.Status).Render(theme.StatusLabel(n.Status)),
	}
	if n.IsPinned {
		badges = append(badges, lipgloss.NewStyle().Foreground(theme.ColorMagenta).Render("📌 pinned"))
	}
	sections = append(sections, strings.Join(badges, "  "))
	sections = append(sections, "")

	// Preview
	previewStyle := lipgloss.NewStyle().
		Foreground(theme.ColorGray).
		Italic(true).
		Width(textWidth)
	sections = append(sections, previewStyle.Render(n.Preview))

	// Separator
	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(strings.Repeat("─", textWidth))
	sections = append(sections, "", separator, "")

	// Full details
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)
	sections = append(sections, headerStyle.Render("Details"))

	body := n.FullDetails
	if body == "" {
		body = lipgloss.NewStyle().
			Foreground(theme.ColorGray).
			Italic(true).
			Render("No further details")
	} else {
		body = lipgloss.NewStyle().Width(textWidth).Render(body)
	}
	sections = append(sections, body)

	if n.HasAttachment {
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.ColorBlue).
			Render("📎 Attachment available"))
	}

	// Metadata table
	sections = append(sections, "", separator, "")

	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	valStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)

	sections = append(sections, fmt.Sprintf(
		"%s    %s",
		metaStyle.Render("Sender:"),
		valStyle.Render(n.Sender),
	))
	if !n.SubmittedAt.IsZero() {
		sections = append(sections, fmt.Sprintf(
			"%s %s",
			metaStyle.Render("Submitted:"),
			valStyle.Render(n.SubmittedAt.Format("2006-01-02 15:04")),
		))
	}
	if !n.ExpiresAt.IsZero() {
		now := m.now()
		expiry := n.ExpiresAt.Format("2006-01-02") +
			" (" + humanize.RelTime(n.ExpiresAt, now, "ago", "from now") + ")"
		style := valStyle
		if n.IsExpired(now) {
			style = theme.ExpiredStyle
			expiry += " expired"
		}
		sections = append(sections, fmt.Sprintf(
			"%s   %s",
			metaStyle.Render("Expires:"),
			style.Render(expiry),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetRecord updates the notification being displayed. The scroll position
// is kept when the same notification is refreshed.
func (m *Model) SetRecord(n *model.Notification) {
	same := m.record != nil && n != nil && m.record.ID == n.ID
	m.record = n
	m.viewport.SetContent(m.renderContent())
	if !same {
		m.viewport.GotoTop()
	}
}

// Record returns the notification being displayed, or nil.
func (m Model) Record() *model.Notification {
	return m.record
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
	m.viewport.SetContent(m.renderContent())
}
