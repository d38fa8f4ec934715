package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding // Previous editable column
	Right key.Binding // Next editable column

	// Task management
	Edit        key.Binding // Edit the selected cell
	Add         key.Binding // Append a default task
	Delete      key.Binding // Remove the selected task
	CycleColour key.Binding // Next palette colour
	ClearDep    key.Binding // Remove the dependency
	Resolve     key.Binding // Re-run dependency resolution

	// View
	Chart   key.Binding // Show the chart
	Refresh key.Binding // Reload from disk
	Help    key.Binding // Show help

	// General
	Quit    key.Binding // Quit application
	Escape  key.Binding // Cancel/back
	Submit  key.Binding // Apply input
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
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next column"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter/e", "edit cell"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		CycleColour: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "next colour"),
		),
		ClearDep: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear dependency"),
		),
		Resolve: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "resolve"),
		),
		Chart: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "chart"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Add, k.Delete, k.Chart, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Edit, k.Add, k.Delete, k.CycleColour, k.ClearDep, k.Resolve},
		{k.Chart, k.Refresh, k.Help, k.Quit},
	}
}
