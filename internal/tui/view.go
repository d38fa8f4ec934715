package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/gantt/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeChart:
		content = m.viewChart()
	case ModeNormal, ModeEdit, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the task grid.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.DialogPrompt.Render("No tasks. Press a to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(m.viewDetail())
		b.WriteString("\n")
	}

	switch m.mode {
	case ModeNormal, ModeHelp, ModeChart:
		// No overlay for these modes
	case ModeEdit:
		b.WriteString("\n")
		b.WriteString(m.styles.InputPrompt.Render("Edit ") + m.input.View())
		b.WriteString("\n")
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
		b.WriteString("\n")
	}

	b.WriteString(m.viewFooter())
	return b.String()
}

// viewHeader renders the title with the task count and active column.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Gantt")

	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(
		fmt.Sprintf("%d tasks · editing %s", len(m.tasks), m.styles.ActiveCell.Render(m.ActiveColumn())))

	headerWidth := max(m.contentWidth(), 40)
	spacing := max(headerWidth-lipgloss.Width(title)-lipgloss.Width(rightText), 1)

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewDetail summarizes the selected task's dependency.
func (m *Model) viewDetail() string {
	task := m.SelectedTask()
	if task == nil {
		return ""
	}
	if !task.HasDependency() {
		return m.styles.DepUnresolved.Render(task.ID + " has no dependency")
	}

	i := m.table.Cursor()
	state := domain.DependencyUnresolved
	if i < len(m.states) {
		state = m.states[i]
	}

	var text string
	switch state {
	case domain.DependencySatisfied:
		text = fmt.Sprintf("%s starts when %s ends", task.ID, task.Dependency)
	case domain.DependencyPending:
		text = fmt.Sprintf("%s is not aligned with %s (press r to resolve)", task.ID, task.Dependency)
	case domain.DependencyUnresolved:
		text = fmt.Sprintf("%s depends on %s, which names no task", task.ID, task.Dependency)
	}
	return m.styles.DependencyStyle(state).Render(text)
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	task := m.SelectedTask()
	if task == nil {
		return ""
	}
	var title string
	switch m.confirmAction {
	case ConfirmRemove:
		title = fmt.Sprintf("Remove %s %q?", task.ID, task.Name)
	case ConfirmNone:
		return ""
	}
	return m.styles.Dialog.Render(
		m.styles.DialogTitle.Render(title) + "\n" +
			m.styles.DialogPrompt.Render("y to confirm, any other key to cancel"))
}

// viewChart renders the chart viewport.
func (m *Model) viewChart() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(m.styles.HeaderText.Render("Chart")))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(fmt.Sprintf("%3.0f%% · ↑/↓ scroll · v/esc back", m.viewport.ScrollPercent()*100)))
	return b.String()
}

// viewFooter renders the status line and short help.
func (m *Model) viewFooter() string {
	var lines []string
	if m.err != nil {
		lines = append(lines, m.styles.ErrorMsg.Render("Error: "+m.err.Error()))
	} else if m.status != "" {
		lines = append(lines, m.styles.Status.Render(m.status))
	}
	lines = append(lines, m.help.ShortHelpView(m.keys.ShortHelp()))
	return m.styles.Footer.Render(strings.Join(lines, "\n"))
}

// viewHelp renders the full key help.
func (m *Model) viewHelp() string {
	return m.styles.Help.Render(
		m.styles.HeaderText.Render("Keys") + "\n\n" +
			m.help.FullHelpView(m.keys.FullHelp()))
}
