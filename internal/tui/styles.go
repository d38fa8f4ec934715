package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/gantt/internal/domain"
)

// Colors defines the color palette for the TUI chrome.
// Task bars use the project palette instead.
var Colors = struct {
	Primary     lipgloss.Color
	Muted       lipgloss.Color
	Error       lipgloss.Color
	Success     lipgloss.Color
	Warning     lipgloss.Color
	TitleNormal lipgloss.Color
	Selected    lipgloss.Color
	SelectedBg  lipgloss.Color
}{
	Primary:     lipgloss.Color("#4A90D9"), // Steel blue
	Muted:       lipgloss.Color("#636E72"), // Gray
	Error:       lipgloss.Color("#D63031"), // Red
	Success:     lipgloss.Color("#00B894"), // Green
	Warning:     lipgloss.Color("#FDCB6E"), // Yellow
	TitleNormal: lipgloss.Color("#DFE6E9"), // Light gray
	Selected:    lipgloss.Color("#FFEAA7"), // Yellow
	SelectedBg:  lipgloss.Color("#1B3A6B"), // Dark blue
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Task grid
	Table      table.Styles
	ActiveCell lipgloss.Style

	// Dependency state badges
	DepSatisfied  lipgloss.Style
	DepPending    lipgloss.Style
	DepUnresolved lipgloss.Style

	// Help
	Help lipgloss.Style

	// Footer
	Footer lipgloss.Style
	Status lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Colors.Muted).
		BorderBottom(true).
		Bold(true)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(Colors.Selected).
		Background(Colors.SelectedBg).
		Bold(false)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Table: tableStyles,

		ActiveCell: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		DepSatisfied: lipgloss.NewStyle().
			Foreground(Colors.Success),

		DepPending: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		DepUnresolved: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),

		Status: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Warning),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Warning).
			MarginBottom(1),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// DependencyStyle returns the badge style for a dependency state.
func (s Styles) DependencyStyle(state domain.DependencyState) lipgloss.Style {
	switch state {
	case domain.DependencySatisfied:
		return s.DepSatisfied
	case domain.DependencyPending:
		return s.DepPending
	case domain.DependencyUnresolved:
		return s.DepUnresolved
	}
	return s.DepUnresolved
}
