package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TaskIDPrefix is the prefix of generated task IDs.
const TaskIDPrefix = "T-"

// MaxDurationDays is the largest duration accepted by task edits.
const MaxDurationDays = 3650

// ProjectDefaults holds the values applied to newly created tasks.
type ProjectDefaults struct {
	Colour      string // Palette key
	Duration    int    // Days
	StartOffset int    // Days from the reference date
}

// DefaultProjectDefaults returns the built-in task defaults.
func DefaultProjectDefaults() ProjectDefaults {
	return ProjectDefaults{
		Duration:    10,
		StartOffset: 5,
		Colour:      "Dark Blue",
	}
}

// TaskID formats the sequential ID for a 1-based index.
func TaskID(index int) string {
	return fmt.Sprintf("%s%03d", TaskIDPrefix, index)
}

// MakeDefaultTask returns the index-th default task (1-based) relative to reference.
func MakeDefaultTask(index int, reference time.Time, defaults ProjectDefaults) *Task {
	t := &Task{
		ID:       TaskID(index),
		Name:     fmt.Sprintf("Task %d", index),
		Duration: defaults.Duration,
		Colour:   defaults.Colour,
	}
	t.SetStart(Day(reference).AddDate(0, 0, defaults.StartOffset))
	return t
}

// CreateProject returns taskCount default tasks with sequential IDs.
// The reference date is passed by the caller so the result is deterministic.
// A non-positive count yields an empty list.
func CreateProject(taskCount int, reference time.Time, defaults ProjectDefaults) []*Task {
	if taskCount <= 0 {
		return []*Task{}
	}
	tasks := make([]*Task, 0, taskCount)
	for i := 1; i <= taskCount; i++ {
		tasks = append(tasks, MakeDefaultTask(i, reference, defaults))
	}
	return tasks
}

// NextTaskIndex returns one past the highest generated index used in tasks.
// IDs that do not follow the T-NNN form are ignored.
func NextTaskIndex(tasks []*Task) int {
	highest := 0
	for _, t := range tasks {
		if !strings.HasPrefix(t.ID, TaskIDPrefix) {
			continue
		}
		n, err := strconv.Atoi(t.ID[len(TaskIDPrefix):])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1
}
