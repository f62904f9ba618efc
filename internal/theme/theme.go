// Package theme owns every piece of display metadata: colors, styles and
// the human labels for statuses, categories and filters.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notifdash/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// DetailPanelStyle wraps the detail view content area.
var DetailPanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// CardStyle is the frame around one notification card.
var CardStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// SelectedCardStyle frames the card under the cursor.
var SelectedCardStyle = CardStyle.
	BorderForeground(ColorBlue)

// UnreadAccentStyle marks the left edge of unread cards.
var UnreadAccentStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// BorderStyle provides a standard rounded border for panels.
var BorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// DimmedStyle renders secondary text.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// ExpiredStyle flags notifications past their expiry day.
var ExpiredStyle = lipgloss.NewStyle().
	Foreground(ColorRed).
	Bold(true)

// NoticeStyle renders the confirmation shown after an action.
var NoticeStyle = lipgloss.NewStyle().
	Foreground(ColorGreen).
	Bold(true)

// WarningStyle renders soft failures such as an unknown notification.
var WarningStyle = lipgloss.NewStyle().
	Foreground(ColorYellow).
	Bold(true)

// ChipStyle is an inactive filter chip.
var ChipStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Padding(0, 1)

// ActiveChipStyle is the selected filter chip.
var ActiveChipStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorBlue).
	Bold(true).
	Padding(0, 1)

// StatusStyle returns a color-coded badge style for the given status.
func StatusStyle(status model.Status) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch status {
	case model.StatusUnread:
		return base.Foreground(ColorBlue)
	case model.StatusUrgent:
		return base.Foreground(ColorRed)
	case model.StatusRead:
		return base.Foreground(ColorGray).Bold(false)
	default:
		return base.Foreground(ColorGray)
	}
}

// StatusLabel returns the badge text for a status.
func StatusLabel(status model.Status) string {
	switch status {
	case model.StatusUnread:
		return "Unread"
	case model.StatusRead:
		return "Read"
	case model.StatusUrgent:
		return "Urgent"
	default:
		return string(status)
	}
}

// StatusFilterLabel returns the chip text for a status filter.
func StatusFilterLabel(f model.StatusFilter) string {
	switch f {
	case model.StatusFilterAll, "":
		return "All"
	case model.StatusFilterUnread:
		return "Unread"
	case model.StatusFilterUrgent:
		return "Urgent"
	case model.StatusFilterExpired:
		return "Expired"
	default:
		return string(f)
	}
}

// CategoryStyle returns a color-coded badge style for the given category.
func CategoryStyle(c model.Category) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch c {
	case model.CategoryFinance:
		return base.Foreground(ColorBlue)
	case model.CategoryHR:
		return base.Foreground(ColorGreen)
	case model.CategoryStock:
		return base.Foreground(ColorOrange)
	case model.CategoryAlerts:
		return base.Foreground(ColorRed)
	default:
		return base.Foreground(ColorGray)
	}
}

// CategoryBadge returns the short badge text shown on cards.
func CategoryBadge(c model.Category) string {
	switch c {
	case model.CategoryFinance:
		return "Finance"
	case model.CategoryHR:
		return "HR"
	case model.CategoryStock:
		return "Stock"
	case model.CategoryAlerts:
		return "Alerts"
	default:
		return string(c)
	}
}

// CategoryLabel returns the sidebar text for a category filter.
func CategoryLabel(f model.CategoryFilter) string {
	switch f {
	case model.CategoryFilterAll, "":
		return "All notifications"
	case model.CategoryFilterFinance:
		return "Finance"
	case model.CategoryFilterHR:
		return "Human Resources"
	case model.CategoryFilterStock:
		return "Stock & Inventory"
	case model.CategoryFilterAlerts:
		return "System Alerts"
	default:
		return string(f)
	}
}
