package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notifdash/internal/dashboard"
	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/theme"
)

// sidebarMinTerminalWidth is the narrowest terminal that still gets a
// sidebar; below it the cards take the full width.
const sidebarMinTerminalWidth = 90

// Layout manages the multi-panel terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	ToolbarHeight   int
	StatusBarHeight int
	SidebarWidth    int
}

// NewLayout creates a Layout with the given terminal dimensions.
// The header and status bar take one line each, the toolbar two.
func NewLayout(width, height int) Layout {
	sidebar := 0
	if width >= sidebarMinTerminalWidth {
		sidebar = 30
	}
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		ToolbarHeight:   2,
		StatusBarHeight: 1,
		SidebarWidth:    sidebar,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// MainWidth returns the width left for cards beside the sidebar.
func (l Layout) MainWidth() int {
	return max(l.Width-l.SidebarWidth, 0)
}

// ContentHeight returns the height available for the main content area,
// accounting for the header, toolbar and status bar.
func (l Layout) ContentHeight() int {
	return max(l.Height-l.HeaderHeight-l.ToolbarHeight-l.StatusBarHeight, 0)
}

// RenderHeader renders the top header bar with a title and a right-aligned
// status.
func (l Layout) RenderHeader(title string, status string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	statusRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(status)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(statusRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		statusRendered,
	)
}

// RenderToolbar renders the search line and the status filter chips with
// their counts and the current view mode.
func (l Layout) RenderToolbar(search string, vm dashboard.ViewModel) string {
	active := vm.Filter.Status
	if active == "" {
		active = model.StatusFilterAll
	}

	chips := make([]string, 0, len(model.StatusFilters))
	for _, f := range model.StatusFilters {
		label := fmt.Sprintf("%s %d", theme.StatusFilterLabel(f), vm.StatusCounts[f])
		if f == active {
			chips = append(chips, theme.ActiveChipStyle.Render(label))
		} else {
			chips = append(chips, theme.ChipStyle.Render(label))
		}
	}
	chipLine := strings.Join(chips, " ")

	mode := theme.DimmedStyle.Render("view: " + string(vm.ViewMode))
	gap := max(l.Width-lipgloss.Width(chipLine)-lipgloss.Width(mode)-1, 1)
	chipLine = chipLine + strings.Repeat(" ", gap) + mode

	searchLine := lipgloss.NewStyle().
		Foreground(theme.ColorWhite).
		Padding(0, 1).
		MaxWidth(l.Width).
		Render(search)

	return lipgloss.JoinVertical(lipgloss.Left, searchLine, chipLine)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderBody places the sidebar left of the main content. A zero sidebar
// width renders the main content alone.
func (l Layout) RenderBody(sidebar, main string) string {
	if l.SidebarWidth == 0 || sidebar == "" {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, toolbar, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	toolbar string,
	content string,
	statusBar string,
) string {
	parts := []string{header}
	if toolbar != "" {
		parts = append(parts, toolbar)
	}
	parts = append(parts, content, statusBar)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
