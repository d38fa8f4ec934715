// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"
)

// DateLayout is the canonical text form of a calendar date.
const DateLayout = "2006-01-02"

// Task represents a unit of schedulable work in a project.
// Fields are ordered to minimize memory padding.
type Task struct {
	StartDate  time.Time `json:"startDate" yaml:"start_date"`                       // First day of work
	EndDate    time.Time `json:"endDate" yaml:"end_date"`                           // Derived from StartDate and Duration
	ID         string    `json:"id" yaml:"id"`                                      // Stable identifier (e.g. T-001)
	Name       string    `json:"name" yaml:"name"`                                  // Free-text label
	Colour     string    `json:"colour" yaml:"colour"`                              // Palette key
	Dependency string    `json:"dependency,omitempty" yaml:"dependency,omitempty"` // Predecessor ID (empty = none)
	Duration   int       `json:"duration" yaml:"duration"`                          // Days (0 = milestone)
}

// IsMilestone returns true if the task has zero duration.
func (t *Task) IsMilestone() bool {
	return t.Duration == 0
}

// HasDependency returns true if the task names a predecessor.
// Whether the predecessor exists is decided at resolution time.
func (t *Task) HasDependency() bool {
	return t.Dependency != ""
}

// RecalcEnd re-derives EndDate from StartDate and Duration.
// A milestone ends on its start date.
func (t *Task) RecalcEnd() {
	t.StartDate = Day(t.StartDate)
	t.EndDate = EndFor(t.StartDate, t.Duration)
}

// SetStart moves the task to start and re-derives its end.
func (t *Task) SetStart(start time.Time) {
	t.StartDate = Day(start)
	t.EndDate = EndFor(t.StartDate, t.Duration)
}

// Clone returns a copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// String returns a short human-readable form of the task.
func (t *Task) String() string {
	return fmt.Sprintf("%s %q %s..%s", t.ID, t.Name, FormatDate(t.StartDate), FormatDate(t.EndDate))
}

// EndFor returns the end date of a task starting at start with the given duration.
func EndFor(start time.Time, duration int) time.Time {
	start = Day(start)
	if duration == 0 {
		return start
	}
	return start.AddDate(0, 0, duration)
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a date in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a date in DateLayout, falling back to RFC 3339.
// The result is truncated to the day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q (want %s)", ErrInvalidDate, s, DateLayout)
	}
	return Day(t), nil
}

// CloneTasks returns a deep copy of tasks.
func CloneTasks(tasks []*Task) []*Task {
	out := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	return out
}

// FindTask returns the first task with the given ID, or nil.
func FindTask(tasks []*Task, id string) *Task {
	for _, t := range tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
