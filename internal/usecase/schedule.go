// Package usecase contains application use cases.
package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/gantt/internal/domain"
)

// scheduleResult summarizes a resolution run over a task list.
type scheduleResult struct {
	Moved  []string // IDs whose start date changed
	Report domain.ResolveReport
}

// resolveSchedule runs the resolver over tasks in place and logs what moved.
// A run that hits the pass bound is logged as a warning naming the pending tasks.
func resolveSchedule(tasks []*domain.Task, logger domain.Logger) scheduleResult {
	before := make([]time.Time, len(tasks))
	for i, t := range tasks {
		before[i] = t.StartDate
	}

	report := domain.Resolve(tasks)

	var moved []string
	for i, t := range tasks {
		if t.StartDate.Equal(before[i]) {
			continue
		}
		moved = append(moved, t.ID)
		logger.Info(t.ID, "resolve", fmt.Sprintf("start %s -> %s (after %s)",
			domain.FormatDate(before[i]), domain.FormatDate(t.StartDate), t.Dependency))
	}

	if report.Truncated() {
		logger.Warn("", "resolve", fmt.Sprintf("stopped after %d passes without settling; dependency cycle among: %s",
			report.Passes, strings.Join(report.Pending, ", ")))
	}
	return scheduleResult{Moved: moved, Report: report}
}
