package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notifdash/internal/keys"
	"github.com/nhle/notifdash/internal/theme"
	"github.com/nhle/notifdash/internal/ui/command"
)

// sectionTitles names the groups returned by KeyMap.FullHelp, in order.
var sectionTitles = []string{"Navigation", "General", "Filters", "Actions"}

// Model is the help overlay. Its content scrolls when the terminal is too
// short to show every section.
type Model struct {
	keys     *keys.KeyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new help view model.
func New(k *keys.KeyMap, width, height int) Model {
	m := Model{
		keys:     k,
		help:     help.New(),
		viewport: viewport.New(width, height),
	}
	m.SetSize(width, height)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update scrolls the overlay.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the help overlay.
func (m Model) View() string {
	return theme.DetailPanelStyle.
		Width(max(m.width-4, 0)).
		Render(m.viewport.View())
}

// renderContent lays out one block per key group followed by the palette
// commands.
func (m Model) renderContent() string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	section := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue).MarginTop(1)

	blocks := []string{heading.Render("Keyboard Shortcuts")}
	for i, group := range m.keys.FullHelp() {
		title := "More"
		if i < len(sectionTitles) {
			title = sectionTitles[i]
		}
		blocks = append(blocks,
			section.Render(title),
			m.help.FullHelpView([][]key.Binding{group}),
		)
	}

	var cmds strings.Builder
	for _, c := range command.Commands {
		fmt.Fprintf(&cmds, "%-40s %s\n", c.Usage, theme.HelpStyle.Render(c.Summary))
	}
	blocks = append(blocks,
		section.Render("Commands (:)"),
		strings.TrimRight(cmds.String(), "\n"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// SetSize updates the help view dimensions and re-lays out the content.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = max(width-6, 0)
	m.viewport.Width = max(width-6, 0)
	m.viewport.Height = max(height-4, 1)
	m.viewport.SetContent(m.renderContent())
}

// ScrollOffset returns how far the content is scrolled.
func (m Model) ScrollOffset() int {
	return m.viewport.YOffset
}
