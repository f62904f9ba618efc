// Package confirm asks a yes/no question with a huh form before a
// destructive action runs.
package confirm

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nhle/notifdash/internal/theme"
)

// ResultMsg is dispatched once the user answers. Action echoes the value
// passed to Ask so the parent knows what was confirmed.
type ResultMsg struct {
	Action    string
	Confirmed bool
}

// bindings holds the form value on the heap so that huh's Value() pointer
// stays valid across Bubble Tea model copies.
type bindings struct {
	confirmed bool
}

// Model is the Bubble Tea model for the confirmation prompt.
type Model struct {
	form   *huh.Form
	fb     *bindings
	action string
	width  int
	height int
}

// New creates a new confirmation model.
func New(width, height int) Model {
	return Model{
		fb:     &bindings{},
		width:  width,
		height: height,
	}
}

// keyMap lets esc abort the form. ctrl+c stays bound as well, for when
// the form runs on its own.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	)
	return km
}

// Ask starts a new question for action. The answer defaults to no and esc
// cancels.
func (m *Model) Ask(action, title, description, affirmative string) tea.Cmd {
	m.action = action
	m.fb.confirmed = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative(affirmative).
				Negative("Cancel").
				Value(&m.fb.confirmed),
		),
	).WithShowHelp(false).WithKeyMap(keyMap())
	return m.form.Init()
}

// Active reports whether a question is waiting for an answer.
func (m Model) Active() bool {
	return m.form != nil
}

// Update handles messages for the confirmation form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.finish(m.fb.confirmed)
	case huh.StateAborted:
		return m.finish(false)
	}

	return m, cmd
}

func (m Model) finish(confirmed bool) (Model, tea.Cmd) {
	action := m.action
	m.form = nil
	m.action = ""
	return m, func() tea.Msg {
		return ResultMsg{Action: action, Confirmed: confirmed}
	}
}

// View renders the confirmation form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	return theme.DetailPanelStyle.
		BorderForeground(theme.ColorRed).
		Width(max(min(m.width-4, 70), 20)).
		Render(m.form.View())
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
