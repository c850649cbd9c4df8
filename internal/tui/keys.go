package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Views
	NextView key.Binding // Cycle tasks -> projects -> teams -> reports
	PrevView key.Binding

	// Actions
	Enter key.Binding // Select parent / open detail

	// Task management
	New        key.Binding // Create new task
	Delete     key.Binding // Delete task
	EditStatus key.Binding // Change task status

	// View
	Refresh     key.Binding // Reload the workspace
	Filter      key.Binding // Enter quick filter mode
	Sort        key.Binding // Cycle sort field
	Order       key.Binding // Toggle sort order
	ClearFilter key.Binding // Reset all criteria
	Link        key.Binding // Paste a dashboard link
	Help        key.Binding // Show help
	Detail      key.Binding // Toggle detail view

	// General
	Quit    key.Binding // Quit application
	Escape  key.Binding // Cancel/back
	Confirm key.Binding // Confirm action (in confirm mode)
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		EditStatus: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "change status"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort field"),
		),
		Order: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "sort order"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear filters"),
		),
		Link: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "paste link"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Detail: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "detail"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Enter, k.New, k.Filter, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView, k.Enter},    // Navigation
		{k.New, k.Delete, k.EditStatus},                    // Task management
		{k.Filter, k.Sort, k.Order, k.ClearFilter, k.Link}, // Filtering
		{k.Refresh, k.Detail, k.Help, k.Quit},              // View & general
	}
}
