package tui

import "github.com/runoshun/gantt/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when tasks are loaded from the repository.
type MsgTasksLoaded struct {
	Tasks  []*domain.Task
	States []domain.DependencyState
}

func (MsgTasksLoaded) sealed() {}

// MsgTasksChanged is sent after a use case saved the project.
// SelectID names the task the cursor should land on, if any.
type MsgTasksChanged struct {
	Status   string
	SelectID string
}

func (MsgTasksChanged) sealed() {}

// MsgChartRendered is sent when the chart text is ready.
type MsgChartRendered struct {
	Text string
}

func (MsgChartRendered) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
