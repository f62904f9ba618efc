package cardlist

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/theme"
)

const (
	pinnedMarker     = "📌"
	attachmentMarker = "📎"
	unreadAccent     = "▌"
)

// renderCard draws one notification card exactly width columns wide.
func renderCard(n model.Notification, width int, selected, expanded bool, now time.Time) string {
	style := theme.CardStyle
	if selected {
		style = theme.SelectedCardStyle
	}
	// Width covers padding but not the border.
	inner := max(width-4, 10)
	style = style.Width(width - 2)

	var lines []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	if n.Status == model.StatusRead {
		titleStyle = titleStyle.Bold(false).Foreground(theme.ColorGray)
	}
	title := n.Title
	if n.IsUnread() {
		title = theme.UnreadAccentStyle.Render(unreadAccent) + " " + titleStyle.Render(title)
	} else {
		title = titleStyle.Render(title)
	}
	var markers []string
	if n.IsPinned {
		markers = append(markers, pinnedMarker)
	}
	if n.HasAttachment {
		markers = append(markers, attachmentMarker)
	}
	if len(markers) > 0 {
		title += " " + strings.Join(markers, " ")
	}
	lines = append(lines, title)

	badges := lipgloss.JoinHorizontal(
		lipgloss.Top,
		theme.CategoryStyle(n.Category).Render(theme.CategoryBadge(n.Category)),
		" ",
		theme.StatusStyle(n.Status).Render(theme.StatusLabel(n.Status)),
	)
	lines = append(lines, badges)

	body := n.Preview
	if expanded && n.FullDetails != "" {
		body = n.FullDetails
	}
	lines = append(lines, lipgloss.NewStyle().Width(inner).Render(body))

	footer := theme.DimmedStyle.Render(
		n.Sender + " · " + n.SubmittedAt.Format("Jan 02 15:04"),
	)
	lines = append(lines, footer, expiryLabel(n, now))

	return style.Render(strings.Join(lines, "\n"))
}

// expiryLabel describes the expiry relative to now.
func expiryLabel(n model.Notification, now time.Time) string {
	if n.ExpiresAt.IsZero() {
		return ""
	}
	if n.IsExpired(now) {
		return theme.ExpiredStyle.Render(
			"expired " + humanize.RelTime(n.ExpiresAt, now, "ago", "from now"),
		)
	}
	if !n.ExpiresAt.After(now) {
		return theme.DimmedStyle.Render("expires today")
	}
	return theme.DimmedStyle.Render(
		"expires " + humanize.RelTime(n.ExpiresAt, now, "ago", "from now"),
	)
}
