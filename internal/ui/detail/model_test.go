package detail_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/notifdash/internal/keys"
	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/seed"
	"github.com/nhle/notifdash/internal/ui/detail"
)

var testNow = time.Date(2024, time.February, 4, 10, 0, 0, 0, time.UTC)

func newDetail(t *testing.T, n *model.Notification) detail.Model {
	t.Helper()
	m := detail.New(keys.DefaultKeyMap(), 100, 50)
	m.SetClock(func() time.Time { return testNow })
	m.SetRecord(n)
	return m
}

func TestViewShowsEverything(t *testing.T) {
	n := seed.Default()[0]
	out := newDetail(t, &n).View()

	assert.Contains(t, out, "Nouvelle facture ajoutée")
	assert.Contains(t, out, "Finance")
	assert.Contains(t, out, "Unread")
	assert.Contains(t, out, "pinned")
	assert.Contains(t, out, "TechCorp.")
	assert.Contains(t, out, "Attachment available")
	assert.Contains(t, out, "Marie Dubois")
	assert.Contains(t, out, "2024-01-29")
	assert.Contains(t, out, "expired")
}

func TestViewWithoutDetails(t *testing.T) {
	n := seed.Default()[1]
	n.FullDetails = ""
	out := newDetail(t, &n).View()

	assert.Contains(t, out, "No further details")
	assert.NotContains(t, out, "Attachment available")
}

func TestEmpty(t *testing.T) {
	out := newDetail(t, nil).View()
	assert.Contains(t, out, "No notification selected")
}

func TestKeys(t *testing.T) {
	n := seed.Default()[0]
	m := newDetail(t, &n)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, detail.BackMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	require.NotNil(t, cmd)
	assert.Equal(t, detail.ActionMsg{Action: detail.ActionMarkRead, ID: "1"}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.NotNil(t, cmd)
	assert.Equal(t, detail.ActionMsg{Action: detail.ActionDelete, ID: "1"}, cmd())
}

func TestMarkReadIgnoredWhenAlreadyRead(t *testing.T) {
	n := seed.Default()[3]
	require.Equal(t, model.StatusRead, n.Status)
	m := newDetail(t, &n)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	assert.Nil(t, cmd)
}
