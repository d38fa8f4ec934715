// Package tui provides the terminal task editor and chart viewer.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/gantt/internal/app"
	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/usecase"
)

// editableColumns are the TableColumns indexes the grid lets you edit.
// ID and End Date are fixed: the ID is the reference key and the end is derived.
var editableColumns = []int{1, 2, 3, 5, 6}

// Model is the main bubbletea model for the TUI.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Pointers (8 bytes each)
	container *app.Container

	// Interfaces (16 bytes each)
	err error

	// Slices (24 bytes each)
	tasks  []*domain.Task
	states []domain.DependencyState

	// Strings (16 bytes each)
	status   string
	selectID string

	// Structs
	keys     KeyMap
	styles   Styles
	help     help.Model
	table    table.Model
	input    textinput.Model
	viewport viewport.Model

	// Ints (8 bytes each)
	mode          Mode
	confirmAction ConfirmAction
	column        int // Index into editableColumns
	width         int
	height        int
}

// New creates a new TUI model with the given container.
func New(c *app.Container) *Model {
	styles := DefaultStyles()

	t := table.New(
		table.WithColumns(columns(defaultNameWidth)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(styles.Table)

	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 40

	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		table:     t,
		input:     ti,
		viewport:  viewport.New(80, 20),
		mode:      ModeNormal,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// Run starts the TUI program.
func Run(c *app.Container) error {
	_, err := tea.NewProgram(New(c), tea.WithAltScreen()).Run()
	return err
}

// SelectedTask returns the task under the cursor, or nil.
func (m *Model) SelectedTask() *domain.Task {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.tasks) {
		return nil
	}
	return m.tasks[i]
}

// ActiveColumn returns the header of the column being edited.
func (m *Model) ActiveColumn() string {
	return domain.TableColumns[editableColumns[m.column]]
}

// cellValue returns the current text of the active column for task.
func (m *Model) cellValue(task *domain.Task) string {
	row := domain.ToTable([]*domain.Task{task})[0]
	return row.Values()[editableColumns[m.column]]
}

// editInput converts the text typed for the active column into an edit.
func (m *Model) editInput(task *domain.Task, value string) (usecase.EditTaskInput, error) {
	in := usecase.EditTaskInput{TaskID: task.ID}
	value = strings.TrimSpace(value)

	switch m.ActiveColumn() {
	case domain.ColumnName:
		in.Name = &value
	case domain.ColumnDuration:
		d, err := domain.ParseDuration(value)
		if err != nil {
			return in, err
		}
		in.Duration = &d
	case domain.ColumnStartDate:
		start, err := domain.ParseDate(value)
		if err != nil {
			return in, err
		}
		in.StartDate = &start
	case domain.ColumnColour:
		in.Colour = &value
	case domain.ColumnDependency:
		if value == "" {
			in.ClearDependency = true
		} else {
			in.Dependency = &value
		}
	}
	return in, nil
}

// loadTasks returns a command that loads tasks.
func (m *Model) loadTasks() tea.Cmd {
	c := m.container
	return func() tea.Msg {
		out, err := c.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, States: out.States}
	}
}

// editTask returns a command that applies an edit.
func (m *Model) editTask(in usecase.EditTaskInput) tea.Cmd {
	c := m.container
	return func() tea.Msg {
		out, err := c.EditTaskUseCase().Execute(context.Background(), in)
		if err != nil {
			return MsgError{Err: err}
		}
		status := "Updated " + out.Task.ID
		if moved := movedByResolution(out.Moved, out.Task.ID); len(moved) > 0 {
			status += fmt.Sprintf(", moved %s", strings.Join(moved, ", "))
		}
		if out.Report.Truncated() {
			status += " (schedule did not settle)"
		}
		return MsgTasksChanged{Status: status, SelectID: out.Task.ID}
	}
}

// addTask returns a command that appends a default task.
func (m *Model) addTask() tea.Cmd {
	c := m.container
	return func() tea.Msg {
		out, err := c.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksChanged{Status: "Added " + out.Task.ID, SelectID: out.Task.ID}
	}
}

// removeTask returns a command that removes a task.
func (m *Model) removeTask(id string) tea.Cmd {
	c := m.container
	return func() tea.Msg {
		out, err := c.RemoveTaskUseCase().Execute(context.Background(), usecase.RemoveTaskInput{TaskID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		status := "Removed " + out.Task.ID
		if len(out.Dependents) > 0 {
			status += fmt.Sprintf(" (%s now depend on nothing)", strings.Join(out.Dependents, ", "))
		}
		return MsgTasksChanged{Status: status}
	}
}

// resolveSchedule returns a command that re-runs dependency resolution.
func (m *Model) resolveSchedule() tea.Cmd {
	c := m.container
	return func() tea.Msg {
		out, err := c.ResolveScheduleUseCase().Execute(context.Background(), usecase.ResolveScheduleInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		status := "Schedule already resolved"
		if len(out.Moved) > 0 {
			status = "Moved " + strings.Join(out.Moved, ", ")
		}
		if out.Report.Truncated() {
			status += fmt.Sprintf(" (pending: %s)", strings.Join(out.Report.Pending, ", "))
		}
		return MsgTasksChanged{Status: status}
	}
}

// renderChart returns a command that renders the chart at width.
func (m *Model) renderChart(width int) tea.Cmd {
	c := m.container
	return func() tea.Msg {
		out, err := c.ShowChartUseCase().Execute(context.Background(), usecase.ShowChartInput{Width: width})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgChartRendered{Text: out.Text}
	}
}

// movedByResolution drops the edited task from the moved list.
func movedByResolution(moved []string, editedID string) []string {
	out := make([]string, 0, len(moved))
	for _, id := range moved {
		if id != editedID {
			out = append(out, id)
		}
	}
	return out
}
