package cardlist

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/notifdash/internal/dashboard"
	"github.com/nhle/notifdash/internal/keys"
	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/query"
	"github.com/nhle/notifdash/internal/seed"
)

var testNow = time.Date(2024, time.February, 4, 10, 0, 0, 0, time.UTC)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and flattens batches into their messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func newTestModel(t *testing.T, mode model.ViewMode, width int) Model {
	t.Helper()
	m := New(keys.DefaultKeyMap(), width, 60)
	m.SetClock(func() time.Time { return testNow })
	m.searchInput.Cursor.SetMode(cursor.CursorStatic)

	records := seed.Default()
	m.SetViewModel(dashboard.ViewModel{
		VisibleRecords: records,
		FilteredCount:  len(records),
		CurrentPage:    1,
		TotalPages:     1,
		ViewMode:       mode,
	})
	return m
}

func TestListNavigation(t *testing.T) {
	m := newTestModel(t, model.ViewModeList, 100)
	assert.Equal(t, 1, m.columns())

	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	assert.Equal(t, 2, m.Cursor())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.Cursor())

	for range 10 {
		m, _ = m.Update(runes("j"))
	}
	assert.Equal(t, 4, m.Cursor())

	// Left and right do nothing in list mode.
	m, _ = m.Update(runes("h"))
	assert.Equal(t, 4, m.Cursor())
}

func TestGridNavigation(t *testing.T) {
	m := newTestModel(t, model.ViewModeGrid, 90)
	require.Equal(t, 3, m.columns())

	m, _ = m.Update(runes("l"))
	m, _ = m.Update(runes("l"))
	assert.Equal(t, 2, m.Cursor())

	// The row ends at the third card.
	m, _ = m.Update(runes("l"))
	assert.Equal(t, 2, m.Cursor())

	// Below the third card is nothing on a five-card page.
	m, _ = m.Update(runes("j"))
	assert.Equal(t, 2, m.Cursor())

	m, _ = m.Update(runes("h"))
	m, _ = m.Update(runes("j"))
	assert.Equal(t, 4, m.Cursor())

	m, _ = m.Update(runes("k"))
	assert.Equal(t, 1, m.Cursor())
}

func TestNarrowGridFallsBackToFewerColumns(t *testing.T) {
	m := newTestModel(t, model.ViewModeGrid, 40)
	assert.Equal(t, 1, m.columns())
}

func TestActionsEmitIntents(t *testing.T) {
	m := newTestModel(t, model.ViewModeList, 100)
	m, _ = m.Update(runes("j"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []tea.Msg{OpenDetailMsg{ID: "2"}}, drain(cmd))

	_, cmd = m.Update(runes("m"))
	assert.Equal(t, []tea.Msg{MarkReadMsg{ID: "2"}}, drain(cmd))

	_, cmd = m.Update(runes("d"))
	assert.Equal(t, []tea.Msg{DeleteMsg{ID: "2"}}, drain(cmd))

	_, cmd = m.Update(runes("]"))
	assert.Equal(t, []tea.Msg{PageMsg{Delta: 1}}, drain(cmd))

	_, cmd = m.Update(runes("["))
	assert.Equal(t, []tea.Msg{PageMsg{Delta: -1}}, drain(cmd))
}

func TestActionsOnEmptyPageDoNothing(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80, 20)
	m.SetViewModel(dashboard.ViewModel{CurrentPage: 1, TotalPages: 1})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	_, cmd = m.Update(runes("d"))
	assert.Nil(t, cmd)
}

func TestExpandShowsFullDetails(t *testing.T) {
	m := newTestModel(t, model.ViewModeList, 120)
	assert.NotContains(t, m.View(), "TechCorp.")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.Expanded("1"))
	assert.Contains(t, m.View(), "TechCorp.")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.Expanded("1"))
}

func TestSearchMode(t *testing.T) {
	m := newTestModel(t, model.ViewModeList, 100)

	m, _ = m.Update(runes("/"))
	require.True(t, m.Searching())

	m, cmd := m.Update(runes("f"))
	assert.Contains(t, drain(cmd), tea.Msg(SearchMsg{Text: "f"}))

	// Keys that are actions in normal mode are typed while searching.
	m, cmd = m.Update(runes("d"))
	assert.Contains(t, drain(cmd), tea.Msg(SearchMsg{Text: "fd"}))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Searching())
	assert.Contains(t, m.SearchView(), "fd")

	m, _ = m.Update(runes("/"))
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Searching())
	assert.Equal(t, []tea.Msg{SearchMsg{Text: ""}}, drain(cmd))
	assert.Contains(t, m.SearchView(), "search notifications")
}

func TestCursorResetsOnPageChange(t *testing.T) {
	m := newTestModel(t, model.ViewModeList, 100)
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	require.Equal(t, 2, m.Cursor())

	records := seed.Default()
	m.SetViewModel(dashboard.ViewModel{
		VisibleRecords: records[:2],
		FilteredCount:  8,
		CurrentPage:    2,
		TotalPages:     2,
	})
	assert.Equal(t, 0, m.Cursor())
	assert.Contains(t, m.View(), "page 2 of 2")
}

func TestCursorClampsAfterDelete(t *testing.T) {
	m := newTestModel(t, model.ViewModeList, 100)
	for range 4 {
		m, _ = m.Update(runes("j"))
	}
	require.Equal(t, 4, m.Cursor())

	records := seed.Default()
	m.SetViewModel(dashboard.ViewModel{
		VisibleRecords: records[:4],
		FilteredCount:  4,
		CurrentPage:    1,
		TotalPages:     1,
	})
	assert.Equal(t, 3, m.Cursor())
}

func TestEmptyState(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80, 20)
	m.SetViewModel(dashboard.ViewModel{
		Filter:      query.Filter{Search: "zzz"},
		Queried:     true,
		CurrentPage: 1,
		TotalPages:  1,
	})
	assert.Contains(t, m.View(), "No notifications found.")
}

func TestCardShowsMarkersAndExpiry(t *testing.T) {
	m := newTestModel(t, model.ViewModeList, 120)
	out := m.View()

	assert.Contains(t, out, "Nouvelle facture ajoutée")
	assert.Contains(t, out, pinnedMarker)
	assert.Contains(t, out, attachmentMarker)
	assert.Contains(t, out, "Finance")
	assert.Contains(t, out, "Unread")
	assert.Contains(t, out, "Marie Dubois")
	assert.Contains(t, out, "5 results")
}

func TestExpiryLabel(t *testing.T) {
	records := seed.Default()

	assert.Contains(t, expiryLabel(records[0], testNow), "expired")
	assert.Contains(t, expiryLabel(records[0], testNow), "ago")
	assert.Contains(t, expiryLabel(records[4], testNow), "from now")

	today := records[0]
	today.ExpiresAt = time.Date(2024, time.February, 4, 8, 0, 0, 0, time.UTC)
	assert.Contains(t, expiryLabel(today, testNow), "expires today")

	assert.Empty(t, expiryLabel(model.Notification{}, testNow))
}
