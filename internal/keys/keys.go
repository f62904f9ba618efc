package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down  key.Binding
	Up    key.Binding
	Left  key.Binding
	Right key.Binding

	// Paging
	NextPage key.Binding
	PrevPage key.Binding

	// Selection
	Select key.Binding
	Expand key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Search
	Search key.Binding

	// Command palette
	Command key.Binding

	// Help toggle
	Help key.Binding

	// Manual refresh
	Refresh key.Binding

	// Filters
	CycleStatus    key.Binding
	CycleCategory  key.Binding
	CategoryAll    key.Binding
	CategoryFirst  key.Binding
	CategorySecond key.Binding
	CategoryThird  key.Binding
	CategoryFourth key.Binding
	ClearFilters   key.Binding
	ToggleView     key.Binding

	// Actions
	MarkRead    key.Binding
	Delete      key.Binding
	MarkAllRead key.Binding
	DeleteAll   key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left (grid)"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right (grid)"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]/pgdn", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[/pgup", "previous page"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open detail"),
		),
		Expand: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "expand card"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		CycleStatus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cycle status filter"),
		),
		CycleCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle category"),
		),
		CategoryAll: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "all categories"),
		),
		CategoryFirst: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "finance"),
		),
		CategorySecond: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "hr"),
		),
		CategoryThird: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "stock"),
		),
		CategoryFourth: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "alerts"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "list/grid"),
		),
		MarkRead: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark read"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		MarkAllRead: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "mark all read"),
		),
		DeleteAll: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete all"),
		),
	}
}

// CategoryKeys returns the direct category bindings in model.CategoryFilters
// order, "all" first.
func (k *KeyMap) CategoryKeys() []key.Binding {
	return []key.Binding{
		k.CategoryAll, k.CategoryFirst, k.CategorySecond,
		k.CategoryThird, k.CategoryFourth,
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.Back,
		k.Quit, k.Help, k.Search,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.NextPage, k.PrevPage},
		{k.Select, k.Expand, k.Back, k.Quit, k.Search, k.Command, k.Help, k.Refresh},
		{k.CycleStatus, k.CycleCategory, k.CategoryAll, k.CategoryFirst, k.CategorySecond, k.CategoryThird, k.CategoryFourth},
		{k.ClearFilters, k.ToggleView, k.MarkRead, k.Delete, k.MarkAllRead, k.DeleteAll},
	}
}
