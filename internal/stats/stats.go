// Package stats aggregates counts over the full notification set.
package stats

import (
	"time"

	"github.com/nhle/notifdash/internal/model"
)

// Quick is the sidebar's at-a-glance summary.
type Quick struct {
	TotalToday int
	Resolved   int
	Pending    int
	Overdue    int
}

// Stats holds every count the dashboard shows.
type Stats struct {
	UnreadCount    int
	CategoryCounts map[model.CategoryFilter]int
	StatusCounts   map[model.StatusFilter]int
	Quick          Quick
}

// Compute counts records. Every category and status filter has an entry,
// zero included, so callers can index the maps without a presence check.
func Compute(records []model.Notification, now time.Time) Stats {
	s := Stats{
		CategoryCounts: make(map[model.CategoryFilter]int, len(model.CategoryFilters)),
		StatusCounts:   make(map[model.StatusFilter]int, len(model.StatusFilters)),
	}
	for _, f := range model.CategoryFilters {
		s.CategoryCounts[f] = 0
	}
	for _, f := range model.StatusFilters {
		s.StatusCounts[f] = 0
	}

	for _, n := range records {
		s.CategoryCounts[model.CategoryFilter(n.Category)]++

		switch n.Status {
		case model.StatusUnread:
			s.UnreadCount++
			s.StatusCounts[model.StatusFilterUnread]++
		case model.StatusUrgent:
			s.StatusCounts[model.StatusFilterUrgent]++
		case model.StatusRead:
			s.Quick.Resolved++
		}

		if n.IsExpired(now) {
			s.StatusCounts[model.StatusFilterExpired]++
			s.Quick.Overdue++
		}
	}

	total := len(records)
	s.CategoryCounts[model.CategoryFilterAll] = total
	s.StatusCounts[model.StatusFilterAll] = total
	s.Quick.TotalToday = total
	s.Quick.Pending = s.UnreadCount

	return s
}
