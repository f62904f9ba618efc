package dashboard

import (
	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/query"
	"github.com/nhle/notifdash/internal/stats"
)

// ViewModel is the read-only snapshot the presentation layer renders after
// every intent.
type ViewModel struct {
	VisibleRecords []model.Notification

	TotalCount     int
	FilteredCount  int
	UnreadCount    int
	CategoryCounts map[model.CategoryFilter]int
	StatusCounts   map[model.StatusFilter]int
	QuickStats     stats.Quick

	CurrentPage int
	TotalPages  int
	PageSize    int
	HasPrev     bool
	HasNext     bool

	Filter   query.Filter
	Queried  bool
	ViewMode model.ViewMode

	// SelectedRecordForDetail is nil when the detail modal is closed.
	SelectedRecordForDetail *model.Notification

	// Notice confirms the last intent; Warning reports a soft failure such
	// as an unknown ID. Both are empty when there is nothing to say.
	Notice  string
	Warning string
}

// Empty-state messages.
const (
	EmptyNoMatches = "No notifications match your filters or search."
	EmptyInbox     = "You have no notifications right now."
)

// EmptyState returns the message to show when the page has no cards, or ""
// when there are cards to render.
func (vm ViewModel) EmptyState() string {
	if len(vm.VisibleRecords) > 0 {
		return ""
	}
	if vm.Filter.Active() {
		return EmptyNoMatches
	}
	return EmptyInbox
}

// FilterActive reports whether search or any filter narrows the view.
func (vm ViewModel) FilterActive() bool {
	return vm.Filter.Active()
}
