package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/gantt/internal/domain"
)

// EditTaskInput contains the parameters for editing a task.
// All fields except TaskID are optional. Only non-nil fields will be updated.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	StartDate       *time.Time // New start date
	Name            *string    // New name
	Duration        *int       // New duration in days (0 = milestone)
	Colour          *string    // New palette colour
	Dependency      *string    // New predecessor ID (empty = clear)
	TaskID          string     // Task ID to edit (required)
	ClearDependency bool       // Remove the dependency
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task   *domain.Task         // The updated task
	Moved  []string             // Tasks whose start changed during resolution
	Report domain.ResolveReport // Resolution run after the edit
}

// EditTask is the use case for editing a task.
// Every edit re-derives the end date and re-resolves the whole schedule.
type EditTask struct {
	project domain.ProjectRepository
	config  *domain.Config
	logger  domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(project domain.ProjectRepository, config *domain.Config, logger domain.Logger) *EditTask {
	return &EditTask{
		project: project,
		config:  config,
		logger:  logger,
	}
}

// Execute validates and applies the edit, then resolves and saves.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}

	tasks, err := uc.project.Load()
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}

	task := domain.FindTask(tasks, in.TaskID)
	if task == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, in.TaskID)
	}

	var changes []string
	if in.Name != nil {
		task.Name = *in.Name
		changes = append(changes, fmt.Sprintf("name=%q", task.Name))
	}
	if in.Duration != nil {
		task.Duration = *in.Duration
		changes = append(changes, fmt.Sprintf("duration=%d", task.Duration))
	}
	if in.StartDate != nil {
		task.StartDate = *in.StartDate
		changes = append(changes, "start="+domain.FormatDate(*in.StartDate))
	}
	if in.Colour != nil {
		task.Colour = *in.Colour
		changes = append(changes, fmt.Sprintf("colour=%q", task.Colour))
	}
	if in.ClearDependency {
		task.Dependency = ""
		changes = append(changes, "dependency cleared")
	} else if in.Dependency != nil {
		task.Dependency = strings.TrimSpace(*in.Dependency)
		changes = append(changes, fmt.Sprintf("dependency=%q", task.Dependency))
	}
	task.RecalcEnd()

	uc.logger.Info(task.ID, "edit", strings.Join(changes, " "))
	if task.HasDependency() && domain.FindTask(tasks, task.Dependency) == nil {
		uc.logger.Warn(task.ID, "edit", fmt.Sprintf("dependency %s names no task", task.Dependency))
	}

	result := resolveSchedule(tasks, uc.logger)

	if err := uc.project.Save(tasks); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	return &EditTaskOutput{Task: task, Moved: result.Moved, Report: result.Report}, nil
}

func (uc *EditTask) validate(in EditTaskInput) error {
	if in.Name == nil && in.Duration == nil && in.StartDate == nil && in.Colour == nil &&
		in.Dependency == nil && !in.ClearDependency {
		return domain.ErrNoFieldsToUpdate
	}
	if in.Duration != nil {
		if *in.Duration < 0 {
			return domain.ErrInvalidDuration
		}
		if *in.Duration > domain.MaxDurationDays {
			return domain.ErrDurationTooLong
		}
	}
	if in.Colour != nil && !uc.config.Palette.Has(*in.Colour) {
		return fmt.Errorf("%w: %q (choose from %s)", domain.ErrUnknownColour, *in.Colour,
			strings.Join(uc.config.Palette.Names(), ", "))
	}
	if !in.ClearDependency && in.Dependency != nil && strings.TrimSpace(*in.Dependency) == in.TaskID {
		return domain.ErrSelfDependency
	}
	return nil
}
