// Package query derives the visible subset of notifications from the
// current search text and filters.
package query

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/nhle/notifdash/internal/model"
)

// Filter is the combined search and filter state. The zero value matches
// every record.
type Filter struct {
	Search   string
	Status   model.StatusFilter
	Category model.CategoryFilter
}

// Active reports whether any part of the filter narrows the result.
func (f Filter) Active() bool {
	if strings.TrimSpace(f.Search) != "" {
		return true
	}
	if f.Status != "" && f.Status != model.StatusFilterAll {
		return true
	}
	return f.Category != "" && f.Category != model.CategoryFilterAll
}

// Result is the outcome of Apply.
type Result struct {
	// Records never is nil, so an empty match encodes as [] and not null.
	Records []model.Notification
	Filter  Filter

	// Queried is false when the filter narrows nothing (blank search, "all"
	// filters), letting callers tell "nothing matched" from "nothing asked".
	Queried bool
}

// Apply keeps the records matching every part of f, in input order.
// The expired filter compares against now.
func Apply(records []model.Notification, f Filter, now time.Time) Result {
	res := Result{
		Records: make([]model.Notification, 0, len(records)),
		Filter:  f,
		Queried: f.Active(),
	}

	// A blank search is no search. Otherwise the text is matched as typed,
	// surrounding spaces included.
	fold := cases.Fold()
	var needle string
	if strings.TrimSpace(f.Search) != "" {
		needle = fold.String(f.Search)
	}

	for _, n := range records {
		if needle != "" && !matchesSearch(fold, n, needle) {
			continue
		}
		if !matchesStatus(n, f.Status, now) {
			continue
		}
		if !f.Category.Matches(n.Category) {
			continue
		}
		res.Records = append(res.Records, n)
	}

	return res
}

func matchesSearch(fold cases.Caser, n model.Notification, needle string) bool {
	for _, field := range []string{n.Title, n.Preview, n.Sender} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}

func matchesStatus(n model.Notification, f model.StatusFilter, now time.Time) bool {
	switch f {
	case model.StatusFilterUnread:
		return n.Status == model.StatusUnread
	case model.StatusFilterUrgent:
		return n.Status == model.StatusUrgent
	case model.StatusFilterExpired:
		return n.IsExpired(now)
	default:
		return true
	}
}
