package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/notifdash/internal/dashboard"
	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/ui/confirm"
)

const actionDeleteAll = "delete-all"

type intent func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error)

// apply runs one intent against the session's dashboard and publishes the
// resulting snapshot to every sub-view. Intents run on the Update goroutine,
// which serializes them.
func (m *Model) apply(fn intent) {
	vm, err := fn(context.Background(), m.sess.Dashboard)
	if err != nil {
		m.logger.Error().Err(err).Str("session", m.sess.ID).Msg("intent failed")
		m.notice = ""
		m.warning = err.Error()
		return
	}
	m.setViewModel(vm)
}

// setViewModel stores vm and pushes it into the sub-views.
func (m *Model) setViewModel(vm dashboard.ViewModel) {
	m.vm = vm
	m.notice = vm.Notice
	m.warning = vm.Warning
	m.cardList.SetViewModel(vm)
	m.sidebar.SetViewModel(vm)
	m.detail.SetRecord(vm.SelectedRecordForDetail)

	// The open record disappeared underneath us.
	if m.currentView == ViewDetail && vm.SelectedRecordForDetail == nil {
		m.currentView = ViewList
	}
}

func (m *Model) refreshNow() {
	m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
		return d.Snapshot(ctx)
	})
}

func (m *Model) markAsRead(id string) {
	m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
		return d.MarkAsRead(ctx, id)
	})
}

func (m *Model) delete(id string) {
	m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
		return d.Delete(ctx, id)
	})
}

func (m *Model) markAllAsRead() {
	m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
		return d.MarkAllAsRead(ctx)
	})
}

func (m *Model) closeDetail() {
	m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
		return d.CloseDetail(ctx)
	})
	m.currentView = ViewList
}

func (m *Model) setStatusFilter(f model.StatusFilter) {
	m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
		return d.SetStatusFilter(ctx, f)
	})
}

func (m *Model) setCategoryFilter(c model.CategoryFilter) {
	m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
		return d.SetCategoryFilter(ctx, c)
	})
}

func (m *Model) setViewMode(v model.ViewMode) {
	m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
		return d.SetViewMode(ctx, v)
	})
}

func (m *Model) toggleViewMode() {
	if m.vm.ViewMode == model.ViewModeGrid {
		m.setViewMode(model.ViewModeList)
		return
	}
	m.setViewMode(model.ViewModeGrid)
}

// clearFilters also empties the search box so the input matches the query.
func (m *Model) clearFilters() {
	m.cardList.ResetSearch()
	m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
		return d.ClearFilters(ctx)
	})
}

func (m *Model) setPage(n int) {
	m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
		return d.SetPage(ctx, n)
	})
}

// askDeleteAll opens the confirmation form; nothing is removed until the
// user answers yes.
func (m *Model) askDeleteAll() tea.Cmd {
	if m.vm.TotalCount == 0 {
		m.notice = ""
		m.warning = "Nothing to delete"
		return nil
	}
	if m.currentView != ViewConfirm {
		m.previousView = m.currentView
	}
	m.currentView = ViewConfirm
	return m.confirmView.Ask(
		actionDeleteAll,
		"Delete all notifications?",
		fmt.Sprintf("%d notifications will be removed from this session.", m.vm.TotalCount),
		"Delete",
	)
}

func (m *Model) handleConfirm(msg confirm.ResultMsg) tea.Cmd {
	if !msg.Confirmed {
		m.warning = ""
		m.notice = "Cancelled"
		return nil
	}
	switch msg.Action {
	case actionDeleteAll:
		m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
			return d.DeleteAll(ctx)
		})
	}
	return nil
}

// resetSession discards the current session and starts a fresh one from
// the seed dataset.
func (m *Model) resetSession() {
	ctx := context.Background()
	old := m.sess.ID

	sess, err := m.sessions.Create(ctx)
	if err != nil {
		m.logger.Error().Err(err).Msg("creating session")
		m.notice = ""
		m.warning = err.Error()
		return
	}
	if err := m.sessions.Close(old); err != nil {
		m.logger.Warn().Err(err).Str("session", old).Msg("closing session")
	}

	m.sess = sess
	m.cardList.ResetSearch()
	m.currentView = ViewList
	m.refreshNow()
	if m.warning == "" {
		m.notice = "Session reset"
	}
	m.logger.Info().Str("old", old).Str("new", sess.ID).Msg("session reset")
}

// executeCommand parses and runs a command palette entry.
func (m *Model) executeCommand(input string) tea.Cmd {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return nil
	}
	verb := fields[0]
	arg := strings.Join(fields[1:], " ")

	switch verb {
	case "quit", "q":
		return tea.Quit

	case "help":
		m.previousView = ViewList
		m.currentView = ViewHelp

	case "read", "mark":
		if arg == "all" || arg == "all read" {
			m.markAllAsRead()
			return nil
		}
		m.unknownCommand(input)

	case "delete":
		if arg == "all" {
			return m.askDeleteAll()
		}
		m.unknownCommand(input)

	case "filter", "status":
		if arg == "" {
			arg = string(model.StatusFilterAll)
		}
		m.setStatusFilter(model.StatusFilter(arg))

	case "category", "cat":
		if arg == "" {
			arg = string(model.CategoryFilterAll)
		}
		m.setCategoryFilter(model.CategoryFilter(arg))

	case "grid", "list":
		m.setViewMode(model.ViewMode(verb))

	case "view":
		m.setViewMode(model.ViewMode(arg))

	case "page":
		n, err := strconv.Atoi(arg)
		if err != nil {
			m.notice = ""
			m.warning = fmt.Sprintf("page: %q is not a number", arg)
			return nil
		}
		m.setPage(n)

	case "next":
		m.setPage(m.vm.CurrentPage + 1)

	case "prev":
		m.setPage(m.vm.CurrentPage - 1)

	case "clear":
		m.clearFilters()

	case "refresh":
		m.refreshNow()

	case "reset":
		m.resetSession()

	default:
		m.unknownCommand(input)
	}

	return nil
}

func (m *Model) unknownCommand(input string) {
	m.logger.Debug().Str("input", input).Msg("unknown command")
	m.notice = ""
	m.warning = fmt.Sprintf("Unknown command %q", input)
}

// nextStatusFilter cycles through the status filters in display order.
func nextStatusFilter(cur model.StatusFilter) model.StatusFilter {
	for i, f := range model.StatusFilters {
		if f == cur {
			return model.StatusFilters[(i+1)%len(model.StatusFilters)]
		}
	}
	// Zero value behaves like "all".
	return model.StatusFilters[1]
}

// nextCategoryFilter cycles through the category filters, "all" first.
func nextCategoryFilter(cur model.CategoryFilter) model.CategoryFilter {
	for i, f := range model.CategoryFilters {
		if f == cur {
			return model.CategoryFilters[(i+1)%len(model.CategoryFilters)]
		}
	}
	return model.CategoryFilters[1]
}

// categoryFilterAt maps the 0-4 shortcut keys to category filters.
func categoryFilterAt(i int) model.CategoryFilter {
	if i < 0 || i >= len(model.CategoryFilters) {
		return model.CategoryFilterAll
	}
	return model.CategoryFilters[i]
}
