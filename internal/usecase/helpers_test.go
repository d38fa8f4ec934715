package usecase

import (
	"time"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/testutil"
)

var today = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return domain.Day(today).AddDate(0, 0, offset)
}

func fixedClock() *testutil.MockClock {
	return &testutil.MockClock{NowTime: today}
}

func makeTask(id string, start, duration int, dep string) *domain.Task {
	t := &domain.Task{ID: id, Name: "Task " + id, Duration: duration, Dependency: dep, Colour: "Teal"}
	t.SetStart(day(start))
	return t
}

// chainProject returns A -> B -> C stored back to front, so nothing is resolved yet.
func chainProject() *testutil.MockProjectRepository {
	return testutil.NewMockProjectRepository([]*domain.Task{
		makeTask("T-003", 0, 2, "T-002"),
		makeTask("T-002", 0, 3, "T-001"),
		makeTask("T-001", 0, 5, ""),
	})
}

func ptr[T any](v T) *T {
	return &v
}
