// Package dashboard owns the state of one dashboard session. Each intent
// mutates the session, then recomputes the query, statistics and page from
// the store and returns a fresh ViewModel.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nhle/notifdash/internal/logging"
	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/paginate"
	"github.com/nhle/notifdash/internal/query"
	"github.com/nhle/notifdash/internal/stats"
	"github.com/nhle/notifdash/internal/store"
)

// Notices shown after successful intents.
const (
	NoticeMarkedRead    = "Notification marked as read"
	NoticeDeleted       = "Notification deleted"
	NoticeAllMarkedRead = "All notifications marked as read"
	NoticeAllDeleted    = "All notifications deleted"
)

// Dashboard handles intents for a single session. It is not safe for
// concurrent use; the host serializes intents.
type Dashboard struct {
	store  store.Store
	logger zerolog.Logger
	now    func() time.Time

	filter     query.Filter
	page       int
	pageSize   int
	viewMode   model.ViewMode
	selectedID string
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithClock replaces time.Now, used for expiry comparisons.
func WithClock(now func() time.Time) Option {
	return func(d *Dashboard) { d.now = now }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dashboard) {
		d.logger = logging.Component(logger, "dashboard")
	}
}

// WithPageSize sets the number of cards per page.
func WithPageSize(n int) Option {
	return func(d *Dashboard) {
		if n > 0 {
			d.pageSize = n
		}
	}
}

// WithViewMode sets the initial view mode.
func WithViewMode(m model.ViewMode) Option {
	return func(d *Dashboard) {
		if m != "" {
			d.viewMode = m
		}
	}
}

// New returns a dashboard over s, starting on page 1 with no filters.
func New(s store.Store, opts ...Option) *Dashboard {
	d := &Dashboard{
		store:    s,
		logger:   zerolog.Nop(),
		now:      time.Now,
		page:     1,
		pageSize: paginate.DefaultPageSize,
		viewMode: model.ViewModeList,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Store returns the session's store.
func (d *Dashboard) Store() store.Store { return d.store }

// Snapshot recomputes the view model without changing state.
func (d *Dashboard) Snapshot(ctx context.Context) (ViewModel, error) {
	return d.snapshot(ctx, "", "")
}

// === Query intents ===

// Search sets the free-text search and returns to page 1.
func (d *Dashboard) Search(ctx context.Context, text string) (ViewModel, error) {
	d.filter.Search = text
	d.page = 1
	return d.snapshot(ctx, "", "")
}

// SetStatusFilter selects a status filter and returns to page 1. Unknown
// values leave the state unchanged and produce a warning.
func (d *Dashboard) SetStatusFilter(ctx context.Context, f model.StatusFilter) (ViewModel, error) {
	parsed, err := model.ParseStatusFilter(string(f))
	if err != nil {
		return d.snapshot(ctx, "", err.Error())
	}
	d.filter.Status = parsed
	d.page = 1
	return d.snapshot(ctx, "", "")
}

// SetCategoryFilter selects a category and returns to page 1. Unknown
// values leave the state unchanged and produce a warning.
func (d *Dashboard) SetCategoryFilter(ctx context.Context, c model.CategoryFilter) (ViewModel, error) {
	parsed, err := model.ParseCategoryFilter(string(c))
	if err != nil {
		return d.snapshot(ctx, "", err.Error())
	}
	d.filter.Category = parsed
	d.page = 1
	return d.snapshot(ctx, "", "")
}

// ClearFilters drops the search and both filters.
func (d *Dashboard) ClearFilters(ctx context.Context) (ViewModel, error) {
	d.filter = query.Filter{}
	d.page = 1
	return d.snapshot(ctx, "", "")
}

// SetViewMode switches between list and grid. The page is kept.
func (d *Dashboard) SetViewMode(ctx context.Context, m model.ViewMode) (ViewModel, error) {
	parsed, err := model.ParseViewMode(string(m))
	if err != nil {
		return d.snapshot(ctx, "", err.Error())
	}
	d.viewMode = parsed
	return d.snapshot(ctx, "", "")
}

// === Page intents ===

// SetPage moves to page n, clamped to the valid range.
func (d *Dashboard) SetPage(ctx context.Context, n int) (ViewModel, error) {
	d.page = n
	return d.snapshot(ctx, "", "")
}

// NextPage moves forward one page, staying on the last page.
func (d *Dashboard) NextPage(ctx context.Context) (ViewModel, error) {
	d.page++
	return d.snapshot(ctx, "", "")
}

// PrevPage moves back one page, staying on the first page.
func (d *Dashboard) PrevPage(ctx context.Context) (ViewModel, error) {
	d.page--
	return d.snapshot(ctx, "", "")
}

// === Mutation intents ===

// MarkAsRead marks one record read. An unknown id is a warning.
func (d *Dashboard) MarkAsRead(ctx context.Context, id string) (ViewModel, error) {
	if err := d.store.MarkAsRead(ctx, id); err != nil {
		return d.storeFailed(ctx, "mark as read", id, err)
	}
	d.logger.Debug().Str("id", id).Msg("marked as read")
	return d.snapshot(ctx, NoticeMarkedRead, "")
}

// Delete removes one record. An unknown id is a warning.
func (d *Dashboard) Delete(ctx context.Context, id string) (ViewModel, error) {
	if err := d.store.Delete(ctx, id); err != nil {
		return d.storeFailed(ctx, "delete", id, err)
	}
	if d.selectedID == id {
		d.selectedID = ""
	}
	d.logger.Debug().Str("id", id).Msg("deleted")
	return d.snapshot(ctx, NoticeDeleted, "")
}

// MarkAllAsRead marks every record read.
func (d *Dashboard) MarkAllAsRead(ctx context.Context) (ViewModel, error) {
	changed, err := d.store.MarkAllAsRead(ctx)
	if err != nil {
		return ViewModel{}, fmt.Errorf("marking all as read: %w", err)
	}
	d.logger.Info().Int("changed", changed).Msg("marked all as read")
	return d.snapshot(ctx, NoticeAllMarkedRead, "")
}

// DeleteAll empties the store and closes the detail view.
func (d *Dashboard) DeleteAll(ctx context.Context) (ViewModel, error) {
	removed, err := d.store.DeleteAll(ctx)
	if err != nil {
		return ViewModel{}, fmt.Errorf("deleting all: %w", err)
	}
	d.selectedID = ""
	d.page = 1
	d.logger.Info().Int("removed", removed).Msg("deleted all")
	return d.snapshot(ctx, NoticeAllDeleted, "")
}

// === Detail intents ===

// ViewDetail opens the detail view for id. An unknown id is a warning.
func (d *Dashboard) ViewDetail(ctx context.Context, id string) (ViewModel, error) {
	if _, err := d.store.Get(ctx, id); err != nil {
		return d.storeFailed(ctx, "view", id, err)
	}
	d.selectedID = id
	return d.snapshot(ctx, "", "")
}

// CloseDetail closes the detail view.
func (d *Dashboard) CloseDetail(ctx context.Context) (ViewModel, error) {
	d.selectedID = ""
	return d.snapshot(ctx, "", "")
}

// storeFailed downgrades ErrNotFound to a warning and passes any other
// error through.
func (d *Dashboard) storeFailed(ctx context.Context, action, id string, err error) (ViewModel, error) {
	if errors.Is(err, store.ErrNotFound) {
		d.logger.Warn().Str("id", id).Str("action", action).Msg("notification not found")
		return d.snapshot(ctx, "", fmt.Sprintf("Notification %s not found", id))
	}
	d.logger.Error().Err(err).Str("id", id).Str("action", action).Msg("store operation failed")
	return ViewModel{}, fmt.Errorf("%s %s: %w", action, id, err)
}

func (d *Dashboard) snapshot(ctx context.Context, notice, warning string) (ViewModel, error) {
	records, err := d.store.List(ctx)
	if err != nil {
		return ViewModel{}, fmt.Errorf("listing notifications: %w", err)
	}

	now := d.now()
	res := query.Apply(records, d.filter, now)
	st := stats.Compute(records, now)

	page := paginate.New(len(res.Records), d.pageSize, d.page)
	d.page = page.Number

	vm := ViewModel{
		VisibleRecords: paginate.Slice(res.Records, page),
		TotalCount:     len(records),
		FilteredCount:  len(res.Records),
		UnreadCount:    st.UnreadCount,
		CategoryCounts: st.CategoryCounts,
		StatusCounts:   st.StatusCounts,
		QuickStats:     st.Quick,
		CurrentPage:    page.Number,
		TotalPages:     page.TotalPages,
		PageSize:       page.Size,
		HasPrev:        page.HasPrev(),
		HasNext:        page.HasNext(),
		Filter:         res.Filter,
		Queried:        res.Queried,
		ViewMode:       d.viewMode,
		Notice:         notice,
		Warning:        warning,
	}

	if d.selectedID != "" {
		vm.SelectedRecordForDetail = findByID(records, d.selectedID)
		if vm.SelectedRecordForDetail == nil {
			d.selectedID = ""
		}
	}

	return vm, nil
}

func findByID(records []model.Notification, id string) *model.Notification {
	for i := range records {
		if records[i].ID == id {
			n := records[i]
			return &n
		}
	}
	return nil
}
