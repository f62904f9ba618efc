// Package sidebar renders the category list and the quick statistics.
package sidebar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notifdash/internal/dashboard"
	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/theme"
)

// Model is the sidebar view. It has no key handling of its own; categories
// are switched through the global key map.
type Model struct {
	vm     dashboard.ViewModel
	width  int
	height int
}

// New creates a new sidebar model.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// SetViewModel replaces the rendered counts.
func (m *Model) SetViewModel(vm dashboard.ViewModel) {
	m.vm = vm
}

// SetSize updates the sidebar dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the sidebar.
func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	inner := max(m.width-4, 1)

	active := m.vm.Filter.Category
	if active == "" {
		active = model.CategoryFilterAll
	}

	categories := []string{sectionStyle.Render("Categories")}
	for i, f := range model.CategoryFilters {
		label := fmt.Sprintf("%d %s", i, theme.CategoryLabel(f))
		count := fmt.Sprintf("%d", m.vm.CategoryCounts[f])
		line := spread(label, count, inner-2)
		if f == active {
			categories = append(categories, theme.SelectedItemStyle.Render(line))
		} else {
			categories = append(categories, theme.ListItemStyle.Render(line))
		}
	}

	q := m.vm.QuickStats
	stats := []string{
		sectionStyle.Render("Quick stats"),
		statLine("Today", q.TotalToday, theme.ColorBlue, inner),
		statLine("Resolved", q.Resolved, theme.ColorGreen, inner),
		statLine("Pending", q.Pending, theme.ColorYellow, inner),
		statLine("Overdue", q.Overdue, theme.ColorRed, inner),
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		strings.Join(categories, "\n"),
		"",
		strings.Join(stats, "\n"),
	)

	return theme.BorderStyle.
		Padding(0, 1).
		Width(m.width - 2).
		Height(max(m.height-2, 0)).
		Render(content)
}

func statLine(label string, value int, color lipgloss.AdaptiveColor, width int) string {
	v := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%d", value))
	return spread(label, v, width)
}

// spread places left and right at opposite ends of width columns.
func spread(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
