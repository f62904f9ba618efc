package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/query"
	"github.com/nhle/notifdash/internal/seed"
	"github.com/nhle/notifdash/internal/testutil"
)

func ids(records []model.Notification) []string {
	out := make([]string, len(records))
	for i, n := range records {
		out[i] = n.ID
	}
	return out
}

func TestApply(t *testing.T) {
	records := seed.Default()
	// Between the expiry of record 4 (03/02) and record 3 (05/02).
	feb4 := time.Date(2024, time.February, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter query.Filter
		now    time.Time
		want   []string
	}{
		{
			name: "zero filter keeps everything",
			want: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:   "search is case-insensitive on title",
			filter: query.Filter{Search: "FACTURE"},
			want:   []string{"1"},
		},
		{
			name:   "search matches sender",
			filter: query.Filter{Search: "jean martin"},
			want:   []string{"2"},
		},
		{
			name:   "search folds accented text",
			filter: query.Filter{Search: "SYSTÈME"},
			want:   []string{"1", "3", "4"},
		},
		{
			name:   "search with a trailing space",
			filter: query.Filter{Search: "rapport "},
			want:   []string{"5"},
		},
		{
			name:   "category finance",
			filter: query.Filter{Category: model.CategoryFilterFinance},
			want:   []string{"1", "5"},
		},
		{
			name:   "status unread",
			filter: query.Filter{Status: model.StatusFilterUnread},
			want:   []string{"1", "3"},
		},
		{
			name:   "status urgent",
			filter: query.Filter{Status: model.StatusFilterUrgent},
			want:   []string{"2"},
		},
		{
			name:   "expired compares calendar days",
			filter: query.Filter{Status: model.StatusFilterExpired},
			now:    feb4,
			want:   []string{"1", "4"},
		},
		{
			name:   "nothing expired before first expiry",
			filter: query.Filter{Status: model.StatusFilterExpired},
			now:    time.Date(2024, time.January, 29, 0, 0, 0, 0, time.UTC),
			want:   []string{},
		},
		{
			name:   "expiry day itself is not expired in UTC",
			filter: query.Filter{Status: model.StatusFilterExpired},
			now:    time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC),
			want:   []string{},
		},
		{
			name:   "expired the day after in UTC",
			filter: query.Filter{Status: model.StatusFilterExpired},
			now:    time.Date(2024, time.February, 1, 0, 30, 0, 0, time.UTC),
			want:   []string{"1"},
		},
		{
			name: "filters combine conjunctively",
			filter: query.Filter{
				Search:   "facture",
				Status:   model.StatusFilterUnread,
				Category: model.CategoryFilterFinance,
			},
			want: []string{"1"},
		},
		{
			name: "combined filter can match nothing",
			filter: query.Filter{
				Search:   "facture",
				Status:   model.StatusFilterUrgent,
				Category: model.CategoryFilterHR,
			},
			want: []string{},
		},
		{
			name:   "explicit all values match everything",
			filter: query.Filter{Status: model.StatusFilterAll, Category: model.CategoryFilterAll},
			want:   []string{"1", "2", "3", "4", "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			if now.IsZero() {
				now = testutil.Now
			}
			res := query.Apply(records, tt.filter, now)
			require.NotNil(t, res.Records)
			assert.Equal(t, tt.want, ids(res.Records))
			assert.Equal(t, tt.filter, res.Filter)
		})
	}
}

func TestApplyQueried(t *testing.T) {
	records := seed.Default()

	res := query.Apply(records, query.Filter{}, testutil.Now)
	assert.False(t, res.Queried)

	res = query.Apply(records, query.Filter{
		Search:   "   ",
		Status:   model.StatusFilterAll,
		Category: model.CategoryFilterAll,
	}, testutil.Now)
	assert.False(t, res.Queried, "blank search and all filters narrow nothing")

	res = query.Apply(records, query.Filter{Search: "zzz"}, testutil.Now)
	assert.True(t, res.Queried)
	assert.Empty(t, res.Records)
}

func TestApplyIsPureAndOrderPreserving(t *testing.T) {
	records := testutil.Records(20)
	filters := []query.Filter{
		{Status: model.StatusFilterUnread},
		{Category: model.CategoryFilterStock},
		{Search: "1"},
		{Search: "notification", Status: model.StatusFilterUrgent, Category: model.CategoryFilterHR},
	}

	position := make(map[string]int, len(records))
	for i, n := range records {
		position[n.ID] = i
	}

	for _, f := range filters {
		first := query.Apply(records, f, testutil.Now)
		second := query.Apply(records, f, testutil.Now)
		assert.Equal(t, first.Records, second.Records)

		last := -1
		for _, n := range first.Records {
			p, ok := position[n.ID]
			require.True(t, ok, "record %s not in input", n.ID)
			assert.Greater(t, p, last)
			last = p
		}
	}

	// Input is left untouched.
	assert.Len(t, records, 20)
	assert.Equal(t, "n1", records[0].ID)
}

func TestFilterActive(t *testing.T) {
	assert.False(t, query.Filter{}.Active())
	assert.False(t, query.Filter{Search: "   "}.Active())
	assert.False(t, query.Filter{Status: model.StatusFilterAll, Category: model.CategoryFilterAll}.Active())
	assert.True(t, query.Filter{Search: "x"}.Active())
	assert.True(t, query.Filter{Status: model.StatusFilterExpired}.Active())
	assert.True(t, query.Filter{Category: model.CategoryFilterHR}.Active())
}

func TestApplySearchKeepsSurroundingSpaces(t *testing.T) {
	records := []model.Notification{
		{ID: "a", Title: "alpha beta"},
		{ID: "b", Title: "alphabet soup"},
		{ID: "c", Sender: "Team alpha"},
	}

	res := query.Apply(records, query.Filter{Search: "alpha "}, testutil.Now)
	assert.Equal(t, []string{"a"}, ids(res.Records))

	res = query.Apply(records, query.Filter{Search: " ALPHA"}, testutil.Now)
	assert.Equal(t, []string{"c"}, ids(res.Records))

	res = query.Apply(records, query.Filter{Search: "alpha"}, testutil.Now)
	assert.Equal(t, []string{"a", "b", "c"}, ids(res.Records))

	res = query.Apply(records, query.Filter{Search: "\t  "}, testutil.Now)
	assert.Len(t, res.Records, 3, "blank search matches everything")
	assert.False(t, res.Queried)
}
