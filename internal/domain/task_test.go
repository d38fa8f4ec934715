package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEndFor(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		want     time.Time
		duration int
	}{
		{name: "milestone ends on start", start: date(2024, 3, 1), duration: 0, want: date(2024, 3, 1)},
		{name: "one day", start: date(2024, 3, 1), duration: 1, want: date(2024, 3, 2)},
		{name: "crosses month", start: date(2024, 1, 28), duration: 5, want: date(2024, 2, 2)},
		{name: "leap day", start: date(2024, 2, 28), duration: 1, want: date(2024, 2, 29)},
		{name: "time of day dropped", start: time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC), duration: 2, want: date(2024, 3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EndFor(tt.start, tt.duration))
		})
	}
}

func TestTask_RecalcEnd(t *testing.T) {
	task := &Task{ID: "T-001", Duration: 3, StartDate: date(2024, 5, 10), EndDate: date(2030, 1, 1)}
	task.RecalcEnd()
	assert.Equal(t, date(2024, 5, 13), task.EndDate)

	task.Duration = 0
	task.RecalcEnd()
	assert.Equal(t, task.StartDate, task.EndDate)
	assert.True(t, task.IsMilestone())
}

func TestTask_SetStart(t *testing.T) {
	task := &Task{ID: "T-001", Duration: 4}
	task.SetStart(date(2024, 12, 30))
	assert.Equal(t, date(2024, 12, 30), task.StartDate)
	assert.Equal(t, date(2025, 1, 3), task.EndDate)
}

func TestTask_HasDependency(t *testing.T) {
	assert.False(t, (&Task{}).HasDependency())
	assert.True(t, (&Task{Dependency: "T-002"}).HasDependency())
}

func TestTask_Clone(t *testing.T) {
	orig := &Task{ID: "T-001", Name: "Design"}
	c := orig.Clone()
	c.Name = "Build"
	assert.Equal(t, "Design", orig.Name)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-07-04")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 7, 4), got)

	got, err = ParseDate("2024-07-04T18:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 7, 4), got)

	_, err = ParseDate("04/07/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestFindTask(t *testing.T) {
	tasks := []*Task{{ID: "T-001"}, {ID: "T-002"}}
	assert.Same(t, tasks[1], FindTask(tasks, "T-002"))
	assert.Nil(t, FindTask(tasks, "T-999"))
}
