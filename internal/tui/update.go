package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/gantt/internal/usecase"
)

// Layout constants. The app style pads two cells left and right and one
// line top and bottom.
const (
	appPadX       = 4
	mainChrome    = 10 // Header, table header, detail, status and help lines
	chartChrome   = 6  // Header and footer lines around the chart viewport
	minGridHeight = 3
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.mode == ModeChart {
			return m, m.renderChart(m.contentWidth())
		}
		return m, nil

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.states = msg.States
		m.table.SetRows(rows(m.tasks, m.states))
		cursor := m.table.Cursor()
		if m.selectID != "" {
			for i, t := range m.tasks {
				if t.ID == m.selectID {
					cursor = i
					break
				}
			}
			m.selectID = ""
		}
		m.table.SetCursor(cursor)
		return m, nil

	case MsgTasksChanged:
		m.status = msg.Status
		m.selectID = msg.SelectID
		return m, m.loadTasks()

	case MsgChartRendered:
		m.viewport.SetContent(msg.Text)
		m.viewport.GotoTop()
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.status = ""
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// resize fits the grid, chart and help to the window.
func (m *Model) resize() {
	width := m.contentWidth()
	m.table.SetColumns(columns(nameWidthFor(width)))
	m.table.SetHeight(max(m.height-mainChrome, minGridHeight))
	m.viewport.Width = width
	m.viewport.Height = max(m.height-chartChrome, minGridHeight)
	m.help.Width = width
}

// contentWidth returns the width inside the app padding.
func (m *Model) contentWidth() int {
	return max(m.width-appPadX, 0)
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeEdit:
		return m.handleEditMode(msg)
	case ModeChart:
		return m.handleChartMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.column = (m.column - 1 + len(editableColumns)) % len(editableColumns)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.column = (m.column + 1) % len(editableColumns)
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.input.Prompt = m.ActiveColumn() + ": "
		m.input.SetValue(m.cellValue(task))
		m.input.CursorEnd()
		m.mode = ModeEdit
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Add):
		return m, m.addTask()

	case key.Matches(msg, m.keys.Delete):
		if m.SelectedTask() == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmRemove
		return m, nil

	case key.Matches(msg, m.keys.CycleColour):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		next := m.container.AppConfig.Palette.Next(task.Colour)
		return m, m.editTask(usecase.EditTaskInput{TaskID: task.ID, Colour: &next})

	case key.Matches(msg, m.keys.ClearDep):
		task := m.SelectedTask()
		if task == nil || !task.HasDependency() {
			return m, nil
		}
		return m, m.editTask(usecase.EditTaskInput{TaskID: task.ID, ClearDependency: true})

	case key.Matches(msg, m.keys.Resolve):
		return m, m.resolveSchedule()

	case key.Matches(msg, m.keys.Chart):
		m.mode = ModeChart
		m.viewport.SetContent("Rendering...")
		return m, m.renderChart(m.contentWidth())

	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// handleEditMode handles keys while a cell is being edited.
func (m *Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.exitEdit()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		task := m.SelectedTask()
		value := m.input.Value()
		m.exitEdit()
		if task == nil {
			return m, nil
		}
		in, err := m.editInput(task, value)
		if err != nil {
			m.err = err
			return m, nil
		}
		return m, m.editTask(in)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) exitEdit() {
	m.input.Blur()
	m.input.Reset()
	m.mode = ModeNormal
}

// handleChartMode handles keys while the chart is shown.
func (m *Model) handleChartMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Chart):
		m.mode = ModeNormal
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleConfirmMode handles keys in confirm mode.
// Any key other than confirm cancels.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.confirmAction
	m.mode = ModeNormal
	m.confirmAction = ConfirmNone

	if !key.Matches(msg, m.keys.Confirm) {
		return m, nil
	}

	switch action {
	case ConfirmRemove:
		if task := m.SelectedTask(); task != nil {
			return m, m.removeTask(task.ID)
		}
	case ConfirmNone:
	}
	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
	}
	return m, nil
}
