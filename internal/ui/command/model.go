package command

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notifdash/internal/theme"
)

// CommandMsg is emitted when the user executes a command.
type CommandMsg string

// CancelMsg is emitted when the user leaves the palette without a command.
type CancelMsg struct{}

// Command documents one palette entry.
type Command struct {
	Usage   string
	Summary string
}

// Commands lists every palette entry in display order.
var Commands = []Command{
	{"read all", "mark every notification as read"},
	{"delete all", "delete every notification (asks first)"},
	{"filter <all|unread|urgent|expired>", "filter by status"},
	{"category <all|finance|hr|stock|alerts>", "filter by category"},
	{"grid", "show cards in a grid"},
	{"list", "show cards in a single column"},
	{"page <n>", "jump to page n"},
	{"next", "next page"},
	{"prev", "previous page"},
	{"clear", "drop search and filters"},
	{"refresh", "recompute the dashboard"},
	{"reset", "start a new session from the seed data"},
	{"help", "show keyboard shortcuts"},
	{"quit", "exit notifdash"},
}

const maxHistory = 20

// Model is the command palette view. Up and down walk through previously
// executed commands; tab accepts the inline suggestion.
type Model struct {
	input   textinput.Model
	history []string
	recall  int // index into history, len(history) when not recalling
	width   int
	height  int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "read all, filter unread, category hr, page 2..."
	ti.Prompt = ": "
	ti.ShowSuggestions = true
	ti.SetSuggestions(suggestions())
	ti.Focus()
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// suggestions returns the literal prefix of every command, up to its first
// placeholder.
func suggestions() []string {
	out := make([]string, 0, len(Commands))
	for _, c := range Commands {
		s := c.Usage
		if i := strings.Index(s, "<"); i >= 0 {
			s = s[:i]
		}
		out = append(out, s)
	}
	return out
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			cmd := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if cmd == "" {
				m.recall = len(m.history)
				return m, func() tea.Msg { return CancelMsg{} }
			}
			m.remember(cmd)
			return m, func() tea.Msg { return CommandMsg(cmd) }

		case "esc":
			m.input.Reset()
			m.recall = len(m.history)
			return m, func() tea.Msg { return CancelMsg{} }

		case "up":
			if m.recall > 0 {
				m.recall--
				m.input.SetValue(m.history[m.recall])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.recall < len(m.history)-1 {
				m.recall++
				m.input.SetValue(m.history[m.recall])
				m.input.CursorEnd()
			} else {
				m.recall = len(m.history)
				m.input.Reset()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// remember appends cmd to the history, skipping immediate repeats.
func (m *Model) remember(cmd string) {
	if n := len(m.history); n == 0 || m.history[n-1] != cmd {
		m.history = append(m.history, cmd)
	}
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.recall = len(m.history)
}

// History returns previously executed commands, oldest first.
func (m Model) History() []string {
	return m.history
}

// Value returns the text currently typed into the palette.
func (m Model) Value() string {
	return m.input.Value()
}

// Matching returns the commands whose usage starts with the typed text.
func (m Model) Matching() []Command {
	typed := strings.ToLower(strings.TrimSpace(m.input.Value()))
	var out []Command
	for _, c := range Commands {
		if strings.HasPrefix(c.Usage, typed) || strings.HasPrefix(typed, strings.Fields(c.Usage)[0]+" ") {
			out = append(out, c)
		}
	}
	return out
}

// View renders the command palette with the commands matching the input.
func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Command Palette")

	lines := []string{title, m.input.View(), ""}

	matches := m.Matching()
	limit := max(m.height-8, 1)
	for i, c := range matches {
		if i == limit {
			lines = append(lines, theme.DimmedStyle.Render(fmt.Sprintf("  … %d more", len(matches)-limit)))
			break
		}
		lines = append(lines, fmt.Sprintf("  %-42s %s", c.Usage, theme.HelpStyle.Render(c.Summary)))
	}
	if len(matches) == 0 {
		lines = append(lines, theme.WarningStyle.Render("  no matching command"))
	}

	return theme.DetailPanelStyle.
		Width(max(m.width-4, 0)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	m.recall = len(m.history)
	return m.input.Focus()
}
