package command

import (
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() Model {
	m := New(80, 24)
	m.input.Cursor.SetMode(cursor.CursorStatic)
	return m
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, t tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: t})
}

func TestEnter_EmitsCommandAndRemembers(t *testing.T) {
	m := typeText(newTestModel(), "page 2")

	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, CommandMsg("page 2"), cmd())
	assert.Empty(t, m.Value())
	assert.Equal(t, []string{"page 2"}, m.History())
}

func TestEnter_EmptyCancels(t *testing.T) {
	m, cmd := press(newTestModel(), tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, CancelMsg{}, cmd())
	assert.Empty(t, m.History())
}

func TestEsc_Cancels(t *testing.T) {
	m := typeText(newTestModel(), "grid")

	m, cmd := press(m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, CancelMsg{}, cmd())
	assert.Empty(t, m.Value())
}

func TestHistory_Recall(t *testing.T) {
	m := newTestModel()
	for _, c := range []string{"grid", "list", "list", "page 3"} {
		m = typeText(m, c)
		m, _ = press(m, tea.KeyEnter)
	}
	assert.Equal(t, []string{"grid", "list", "page 3"}, m.History(), "repeats collapse")

	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "page 3", m.Value())
	m, _ = press(m, tea.KeyUp)
	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "grid", m.Value())
	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "grid", m.Value(), "stays on the oldest entry")

	m, _ = press(m, tea.KeyDown)
	assert.Equal(t, "list", m.Value())
	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	assert.Empty(t, m.Value(), "walking past the newest clears the input")
}

func TestHistory_Bounded(t *testing.T) {
	m := newTestModel()
	for i := 0; i < maxHistory+5; i++ {
		m.remember(string(rune('a' + i)))
	}
	assert.Len(t, m.History(), maxHistory)
	assert.Equal(t, string(rune('a'+5)), m.History()[0])
}

func TestMatching(t *testing.T) {
	m := newTestModel()
	assert.Len(t, m.Matching(), len(Commands))

	m = typeText(m, "pa")
	require.Len(t, m.Matching(), 1)
	assert.Equal(t, "page <n>", m.Matching()[0].Usage)

	m = typeText(m, "ge 12")
	require.Len(t, m.Matching(), 1, "arguments keep the command matched")

	m = typeText(newTestModel(), "zzz")
	assert.Empty(t, m.Matching())
	assert.Contains(t, m.View(), "no matching command")
}

func TestSuggestions_StopAtPlaceholder(t *testing.T) {
	s := suggestions()
	assert.Contains(t, s, "filter ")
	assert.Contains(t, s, "read all")
	assert.Len(t, s, len(Commands))
}

func TestView(t *testing.T) {
	out := newTestModel().View()
	assert.Contains(t, out, "Command Palette")
	assert.Contains(t, out, "delete all")
}
