package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/gantt/internal/domain"
)

// ResolveScheduleInput contains the parameters for resolving a schedule.
type ResolveScheduleInput struct {
	DryRun bool // Report moves without saving
}

// ResolveScheduleOutput contains the result of resolving a schedule.
type ResolveScheduleOutput struct {
	Tasks  []*domain.Task       // Tasks after resolution
	Moved  []string             // IDs whose start date changed
	Report domain.ResolveReport // Passes and pending tasks
}

// ResolveSchedule is the use case for pinning every dependent task to its
// predecessor's end date.
type ResolveSchedule struct {
	project domain.ProjectRepository
	logger  domain.Logger
}

// NewResolveSchedule creates a new ResolveSchedule use case.
func NewResolveSchedule(project domain.ProjectRepository, logger domain.Logger) *ResolveSchedule {
	return &ResolveSchedule{project: project, logger: logger}
}

// Execute loads, resolves and saves the project. Nothing is written when
// no task moved.
func (uc *ResolveSchedule) Execute(_ context.Context, in ResolveScheduleInput) (*ResolveScheduleOutput, error) {
	tasks, err := uc.project.Load()
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}

	result := resolveSchedule(tasks, uc.logger)

	if !in.DryRun && len(result.Moved) > 0 {
		if err := uc.project.Save(tasks); err != nil {
			return nil, fmt.Errorf("save project: %w", err)
		}
	}

	return &ResolveScheduleOutput{Tasks: tasks, Moved: result.Moved, Report: result.Report}, nil
}
