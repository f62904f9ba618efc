package model

import (
	"fmt"
	"strings"
	"time"
)

// Status is the read state of a notification.
type Status string

const (
	StatusUnread Status = "unread"
	StatusRead   Status = "read"
	StatusUrgent Status = "urgent"
)

// Category groups notifications by the business area that raised them.
type Category string

const (
	CategoryFinance Category = "finance"
	CategoryHR      Category = "hr"
	CategoryStock   Category = "stock"
	CategoryAlerts  Category = "alerts"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFinance,
	CategoryHR,
	CategoryStock,
	CategoryAlerts,
}

// Notification is a single record shown on the dashboard.
type Notification struct {
	// ID is the unique, stable identifier for this notification.
	ID string `json:"id" yaml:"id" db:"id" validate:"required"`

	// Title is the one-line headline shown on the card.
	Title string `json:"title" yaml:"title" db:"title" validate:"required"`

	// Preview is the short summary shown under the title.
	Preview string `json:"preview" yaml:"preview" db:"preview"`

	// FullDetails is the optional long body shown in the detail view.
	FullDetails string `json:"full_details,omitempty" yaml:"full_details" db:"full_details"`

	// SubmittedAt is when the notification was raised.
	SubmittedAt time.Time `json:"submitted_at" yaml:"submitted_at" db:"submitted_at" validate:"required"`

	// ExpiresAt is the day after which the notification counts as expired.
	ExpiresAt time.Time `json:"expires_at" yaml:"expires_at" db:"expires_at" validate:"required"`

	// Sender is the display name of whoever raised the notification.
	Sender string `json:"sender" yaml:"sender" db:"sender" validate:"required"`

	Status   Status   `json:"status" yaml:"status" db:"status" validate:"required,oneof=unread read urgent"`
	Category Category `json:"category" yaml:"category" db:"category" validate:"required,oneof=finance hr stock alerts"`

	HasAttachment bool `json:"has_attachment,omitempty" yaml:"has_attachment" db:"has_attachment"`
	IsPinned      bool `json:"is_pinned,omitempty" yaml:"is_pinned" db:"is_pinned"`
}

// IsUnread reports whether the notification still needs attention.
func (n Notification) IsUnread() bool { return n.Status == StatusUnread }

// IsUrgent reports whether the notification was flagged urgent.
func (n Notification) IsUrgent() bool { return n.Status == StatusUrgent }

// IsExpired reports whether the expiry date lies strictly before the
// calendar day of now. The expiry date is read in the zone it was recorded
// in, so a date stays the same date wherever the dashboard runs.
func (n Notification) IsExpired(now time.Time) bool {
	if n.ExpiresAt.IsZero() {
		return false
	}
	y, m, d := n.ExpiresAt.Date()
	expiry := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return expiry.Before(startOfDay(now))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StatusFilter narrows the visible set by status or expiry.
type StatusFilter string

const (
	StatusFilterAll     StatusFilter = "all"
	StatusFilterUnread  StatusFilter = "unread"
	StatusFilterUrgent  StatusFilter = "urgent"
	StatusFilterExpired StatusFilter = "expired"
)

// StatusFilters lists every status filter in display order.
var StatusFilters = []StatusFilter{
	StatusFilterAll,
	StatusFilterUnread,
	StatusFilterUrgent,
	StatusFilterExpired,
}

// ParseStatusFilter converts a user-supplied name into a StatusFilter.
func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range StatusFilters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// CategoryFilter narrows the visible set to one category, or all of them.
type CategoryFilter string

const (
	CategoryFilterAll     CategoryFilter = "all"
	CategoryFilterFinance CategoryFilter = CategoryFilter(CategoryFinance)
	CategoryFilterHR      CategoryFilter = CategoryFilter(CategoryHR)
	CategoryFilterStock   CategoryFilter = CategoryFilter(CategoryStock)
	CategoryFilterAlerts  CategoryFilter = CategoryFilter(CategoryAlerts)
)

// CategoryFilters lists every category filter in display order, "all" first.
var CategoryFilters = []CategoryFilter{
	CategoryFilterAll,
	CategoryFilterFinance,
	CategoryFilterHR,
	CategoryFilterStock,
	CategoryFilterAlerts,
}

// ParseCategoryFilter converts a user-supplied name into a CategoryFilter.
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range CategoryFilters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Matches reports whether the category satisfies the filter.
func (f CategoryFilter) Matches(c Category) bool {
	return f == CategoryFilterAll || f == "" || string(f) == string(c)
}

// ViewMode selects between a single-column list and a multi-column grid.
type ViewMode string

const (
	ViewModeList ViewMode = "list"
	ViewModeGrid ViewMode = "grid"
)

// ParseViewMode converts a user-supplied name into a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ViewModeList:
		return ViewModeList, nil
	case ViewModeGrid:
		return ViewModeGrid, nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}
