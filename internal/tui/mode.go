package tui

// Mode represents the current TUI mode.
type Mode int

// Mode constants.
const (
	ModeNormal  Mode = iota // Task grid navigation
	ModeEdit                // Editing one cell of the selected task
	ModeChart               // Scrolling the rendered chart
	ModeConfirm             // Confirmation dialog
	ModeHelp                // Full key help
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEdit:
		return "edit"
	case ModeChart:
		return "chart"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	}
	return "unknown"
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeEdit
}

// ConfirmAction represents the action awaiting confirmation.
type ConfirmAction int

// ConfirmAction constants.
const (
	ConfirmNone   ConfirmAction = iota
	ConfirmRemove               // Remove the selected task
)

// String returns the string representation of the confirm action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return "none"
	case ConfirmRemove:
		return "remove"
	}
	return "unknown"
}
