package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/nhle/notifdash/internal/dashboard"
	"github.com/nhle/notifdash/internal/keys"
	"github.com/nhle/notifdash/internal/logging"
	"github.com/nhle/notifdash/internal/session"
	"github.com/nhle/notifdash/internal/theme"
	"github.com/nhle/notifdash/internal/ui"
	"github.com/nhle/notifdash/internal/ui/cardlist"
	"github.com/nhle/notifdash/internal/ui/command"
	"github.com/nhle/notifdash/internal/ui/confirm"
	"github.com/nhle/notifdash/internal/ui/detail"
	helpview "github.com/nhle/notifdash/internal/ui/help"
	"github.com/nhle/notifdash/internal/ui/sidebar"
)

// DefaultRefreshInterval is how often the snapshot is recomputed so that
// expiry-derived numbers follow the wall clock.
const DefaultRefreshInterval = time.Minute

// tickMsg triggers a periodic refresh.
type tickMsg time.Time

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewList ViewState = iota
	ViewDetail
	ViewHelp
	ViewCommand
	ViewConfirm
)

// Options tunes a Model. The zero value is usable.
type Options struct {
	Logger          zerolog.Logger
	Now             func() time.Time
	RefreshInterval time.Duration
}

// Model is the root Bubble Tea model that manages view routing, layout,
// and the active dashboard session.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	keys         *keys.KeyMap

	sessions *session.Manager
	sess     *session.Session
	vm       dashboard.ViewModel

	cardList    cardlist.Model
	sidebar     sidebar.Model
	detail      detail.Model
	helpView    helpview.Model
	commandView command.Model
	confirmView confirm.Model

	logger  zerolog.Logger
	now     func() time.Time
	refresh time.Duration

	ready   bool
	notice  string
	warning string
}

// New opens a session on mgr and builds the root model around it.
func New(ctx context.Context, mgr *session.Manager, opts Options) (Model, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = DefaultRefreshInterval
	}

	sess, err := mgr.Create(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("creating session: %w", err)
	}

	km := keys.DefaultKeyMap()
	m := Model{
		currentView: ViewList,
		keys:        km,
		sessions:    mgr,
		sess:        sess,
		cardList:    cardlist.New(km, 80, 24),
		sidebar:     sidebar.New(0, 24),
		detail:      detail.New(km, 80, 24),
		helpView:    helpview.New(km, 80, 24),
		commandView: command.New(80, 24),
		confirmView: confirm.New(80, 24),
		logger:      logging.Component(opts.Logger, "app"),
		now:         opts.Now,
		refresh:     opts.RefreshInterval,
	}
	m.cardList.SetClock(opts.Now)
	m.detail.SetClock(opts.Now)

	vm, err := sess.Dashboard.Snapshot(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("loading dashboard: %w", err)
	}
	m.setViewModel(vm)

	return m, nil
}

// SessionID returns the ID of the active session.
func (m Model) SessionID() string {
	return m.sess.ID
}

// ViewModel returns the last snapshot.
func (m Model) ViewModel() dashboard.ViewModel {
	return m.vm
}

// CurrentView returns the active view.
func (m Model) CurrentView() ViewState {
	return m.currentView
}

// Init starts the periodic refresh.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.cardList.SetSize(m.layout.MainWidth(), contentHeight)
		m.sidebar.SetSize(m.layout.SidebarWidth, contentHeight)
		m.detail.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.commandView.SetSize(contentWidth, contentHeight)
		m.confirmView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case tickMsg:
		m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
			return d.Snapshot(ctx)
		})
		return m, m.tick()

	case cardlist.OpenDetailMsg:
		m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
			return d.ViewDetail(ctx, msg.ID)
		})
		if m.vm.SelectedRecordForDetail != nil {
			m.previousView = m.currentView
			m.currentView = ViewDetail
		}
		return m, nil

	case cardlist.MarkReadMsg:
		m.markAsRead(msg.ID)
		return m, nil

	case cardlist.DeleteMsg:
		m.delete(msg.ID)
		return m, nil

	case cardlist.PageMsg:
		m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
			if msg.Delta < 0 {
				return d.PrevPage(ctx)
			}
			return d.NextPage(ctx)
		})
		return m, nil

	case cardlist.SearchMsg:
		m.apply(func(ctx context.Context, d *dashboard.Dashboard) (dashboard.ViewModel, error) {
			return d.Search(ctx, msg.Text)
		})
		return m, nil

	case detail.BackMsg:
		m.closeDetail()
		return m, nil

	case detail.ActionMsg:
		switch msg.Action {
		case detail.ActionMarkRead:
			m.markAsRead(msg.ID)
		case detail.ActionDelete:
			m.delete(msg.ID)
		}
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(string(msg))

	case command.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case confirm.ResultMsg:
		m.currentView = m.previousView
		return m, m.handleConfirm(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.capturesKeys() {
			break
		}
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// capturesKeys reports whether the active view consumes every key press,
// as text inputs and forms do.
func (m Model) capturesKeys() bool {
	switch m.currentView {
	case ViewCommand, ViewConfirm:
		return true
	case ViewList:
		return m.cardList.Searching()
	default:
		return false
	}
}

// handleGlobalKey processes keys that work outside any single sub-view.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Help):
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return nil, true
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return nil, true

	case key.Matches(msg, m.keys.Command):
		m.previousView = m.currentView
		m.currentView = ViewCommand
		return m.commandView.Focus(), true

	case key.Matches(msg, m.keys.Back) && m.currentView == ViewHelp:
		m.currentView = m.previousView
		return nil, true
	}

	if m.currentView != ViewList {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true

	case key.Matches(msg, m.keys.Refresh):
		m.refreshNow()
		return nil, true

	case key.Matches(msg, m.keys.CycleStatus):
		m.setStatusFilter(nextStatusFilter(m.vm.Filter.Status))
		return nil, true

	case key.Matches(msg, m.keys.CycleCategory):
		m.setCategoryFilter(nextCategoryFilter(m.vm.Filter.Category))
		return nil, true

	case key.Matches(msg, m.keys.ToggleView):
		m.toggleViewMode()
		return nil, true

	case key.Matches(msg, m.keys.ClearFilters):
		m.clearFilters()
		return nil, true

	case key.Matches(msg, m.keys.MarkAllRead):
		m.markAllAsRead()
		return nil, true

	case key.Matches(msg, m.keys.DeleteAll):
		return m.askDeleteAll(), true
	}

	for i, b := range m.keys.CategoryKeys() {
		if key.Matches(msg, b) {
			m.setCategoryFilter(categoryFilterAt(i))
			return nil, true
		}
	}

	return nil, false
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewList:
		m.cardList, cmd = m.cardList.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	case ViewConfirm:
		m.confirmView, cmd = m.confirmView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	headerTitle := "Notifications"
	if m.vm.UnreadCount > 0 {
		headerTitle = fmt.Sprintf("Notifications [%d unread]", m.vm.UnreadCount)
	}
	header := m.layout.RenderHeader(headerTitle, m.headerStatus())
	toolbar := m.layout.RenderToolbar(m.cardList.SearchView(), m.vm)
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.statusLine())

	return m.layout.RenderWithFrame(header, toolbar, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewList:
		return m.layout.RenderBody(m.sidebar.View(), m.cardList.View())
	case ViewDetail:
		return m.detail.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewConfirm:
		return m.confirmView.View()
	default:
		return ""
	}
}

// headerStatus returns the right side of the header bar.
func (m Model) headerStatus() string {
	id := m.sess.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%d total · session %s", m.vm.TotalCount, id)
}

// statusLine shows the outcome of the last intent, falling back to key hints.
func (m Model) statusLine() string {
	if m.warning != "" {
		return theme.WarningStyle.Render("⚠ " + m.warning)
	}
	if m.notice != "" {
		return theme.NoticeStyle.Render("✓ " + m.notice)
	}
	return m.keyHints()
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | tab complete | ↑/↓ history | esc back"
	case ViewConfirm:
		return "←/→ choose | enter confirm | esc cancel"
	case ViewDetail:
		return "esc back | m mark read | d delete | j/k scroll"
	default:
		if m.cardList.Searching() {
			return "type to search | enter done | esc clear"
		}
		if m.vm.FilterActive() {
			return "x clear filters | tab status | c category | / search | ? help"
		}
		return "q quit | ? help | / search | tab status | c category | v view | : command"
	}
}
