package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskActivatesForm(t *testing.T) {
	m := New(80, 24)
	assert.False(t, m.Active())
	assert.Empty(t, m.View())

	m.Ask("delete_all", "Delete all notifications?", "This cannot be undone.", "Delete all")
	assert.True(t, m.Active())
	assert.Contains(t, m.View(), "Delete all notifications?")
}

func TestAbortAnswersNo(t *testing.T) {
	m := New(80, 24)
	m.Ask("delete_all", "Delete all notifications?", "", "Delete all")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, ResultMsg{Action: "delete_all", Confirmed: false}, cmd())
	assert.False(t, m.Active())
}

func TestEscAnswersNo(t *testing.T) {
	m := New(80, 24)
	m.Ask("delete_all", "Delete all notifications?", "", "Delete all")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, ResultMsg{Action: "delete_all", Confirmed: false}, cmd())
	assert.False(t, m.Active())
}

func TestFinishEchoesAction(t *testing.T) {
	m := New(80, 24)
	m.Ask("delete_all", "Delete all notifications?", "", "Delete all")
	m.fb.confirmed = true

	m, cmd := m.finish(m.fb.confirmed)
	assert.Equal(t, ResultMsg{Action: "delete_all", Confirmed: true}, cmd())
	assert.False(t, m.Active())
}

func TestUpdateWithoutFormIsNoop(t *testing.T) {
	m := New(80, 24)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}
