package domain

import (
	"strconv"
	"strings"
)

// Tabular column headers, in display order.
const (
	ColumnID         = "ID"
	ColumnName       = "Task Name"
	ColumnDuration   = "Duration"
	ColumnStartDate  = "Start Date"
	ColumnEndDate    = "End Date"
	ColumnColour     = "Colour"
	ColumnDependency = "Dependency"
)

// TableColumns lists the tabular headers in order.
var TableColumns = []string{
	ColumnID,
	ColumnName,
	ColumnDuration,
	ColumnStartDate,
	ColumnEndDate,
	ColumnColour,
	ColumnDependency,
}

// Row is the display/edit form of a task. Every field is text.
// EndDate is display-only and never read back.
type Row struct {
	ID         string
	Name       string
	Duration   string
	StartDate  string
	EndDate    string
	Colour     string
	Dependency string
	Line       int // Source line when decoded from a file, 0 otherwise
}

// Table is an ordered list of rows.
type Table []Row

// Values returns the row as a slice ordered like TableColumns.
func (r Row) Values() []string {
	return []string{r.ID, r.Name, r.Duration, r.StartDate, r.EndDate, r.Colour, r.Dependency}
}

// RowFromValues builds a row from values ordered like TableColumns.
// Missing trailing values are left empty.
func RowFromValues(values []string) Row {
	get := func(i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}
	return Row{
		ID:         get(0),
		Name:       get(1),
		Duration:   get(2),
		StartDate:  get(3),
		EndDate:    get(4),
		Colour:     get(5),
		Dependency: get(6),
	}
}

// ToTable projects tasks into rows, preserving order.
func ToTable(tasks []*Task) Table {
	table := make(Table, 0, len(tasks))
	for _, t := range tasks {
		table = append(table, Row{
			ID:         t.ID,
			Name:       t.Name,
			Duration:   strconv.Itoa(t.Duration),
			StartDate:  FormatDate(t.StartDate),
			EndDate:    FormatDate(t.EndDate),
			Colour:     t.Colour,
			Dependency: t.Dependency,
		})
	}
	return table
}

// FromTable converts rows back into tasks.
// The conversion is atomic: the first malformed row fails the whole batch
// with a *ValidationError and no tasks are returned.
func FromTable(table Table) ([]*Task, error) {
	tasks := make([]*Task, 0, len(table))
	for i, row := range table {
		t, err := rowToTask(i+1, row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func rowToTask(n int, row Row) (*Task, error) {
	invalid := func(field, value string, err error) error {
		return &ValidationError{Row: n, Line: row.Line, Field: field, Value: value, Err: err}
	}

	id := strings.TrimSpace(row.ID)
	if id == "" {
		return nil, invalid(ColumnID, row.ID, ErrEmptyID)
	}

	duration, err := ParseDuration(row.Duration)
	if err != nil {
		return nil, invalid(ColumnDuration, row.Duration, err)
	}

	start, err := ParseDate(strings.TrimSpace(row.StartDate))
	if err != nil {
		return nil, invalid(ColumnStartDate, row.StartDate, err)
	}

	t := &Task{
		ID:         id,
		Name:       row.Name,
		Duration:   duration,
		Colour:     strings.TrimSpace(row.Colour),
		Dependency: strings.TrimSpace(row.Dependency),
	}
	t.SetStart(start)
	return t, nil
}

// ParseDuration parses a non-negative day count.
func ParseDuration(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, ErrInvalidDuration
	}
	return n, nil
}
