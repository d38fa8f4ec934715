package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/runoshun/gantt/internal/domain"
)

const (
	defaultNameWidth = 24
	minNameWidth     = 10
	stateColumnTitle = "State"
)

// fixedColumnWidths are the widths of every column except Task Name.
var fixedColumnWidths = map[string]int{
	domain.ColumnID:         7,
	domain.ColumnDuration:   8,
	domain.ColumnStartDate:  10,
	domain.ColumnEndDate:    10,
	domain.ColumnColour:     12,
	domain.ColumnDependency: 10,
	stateColumnTitle:        9,
}

// columns returns the grid columns with the given name width.
func columns(nameWidth int) []table.Column {
	cols := make([]table.Column, 0, len(domain.TableColumns)+1)
	for _, title := range domain.TableColumns {
		w, ok := fixedColumnWidths[title]
		if !ok {
			w = nameWidth
		}
		cols = append(cols, table.Column{Title: title, Width: w})
	}
	return append(cols, table.Column{Title: stateColumnTitle, Width: fixedColumnWidths[stateColumnTitle]})
}

// nameWidthFor gives the Task Name column whatever the terminal has left.
func nameWidthFor(totalWidth int) int {
	used := 0
	for _, w := range fixedColumnWidths {
		used += w
	}
	// Cell padding is one space either side of every column.
	used += 2 * (len(fixedColumnWidths) + 1)
	w := totalWidth - used
	if w < minNameWidth {
		return minNameWidth
	}
	if w > 2*defaultNameWidth {
		return 2 * defaultNameWidth
	}
	return w
}

// rows projects tasks into grid rows.
func rows(tasks []*domain.Task, states []domain.DependencyState) []table.Row {
	out := make([]table.Row, 0, len(tasks))
	for i, row := range domain.ToTable(tasks) {
		var state domain.DependencyState
		if i < len(states) {
			state = states[i]
		}
		out = append(out, append(table.Row(row.Values()), stateLabel(tasks[i], state)))
	}
	return out
}

// stateLabel describes how the task's dependency stands.
func stateLabel(task *domain.Task, state domain.DependencyState) string {
	if !task.HasDependency() {
		return ""
	}
	switch state {
	case domain.DependencySatisfied:
		return "✓"
	case domain.DependencyPending:
		return "pending"
	case domain.DependencyUnresolved:
		return "missing"
	}
	return ""
}
