package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/gantt/internal/domain"
)

// RemoveTaskInput contains the parameters for removing a task.
type RemoveTaskInput struct {
	TaskID string
}

// RemoveTaskOutput contains the result of removing a task.
type RemoveTaskOutput struct {
	Task       *domain.Task // The removed task
	Dependents []string     // Tasks whose dependency now names no task
}

// RemoveTask is the use case for deleting a task.
// References to the removed task are kept and no longer move anything.
type RemoveTask struct {
	project domain.ProjectRepository
	logger  domain.Logger
}

// NewRemoveTask creates a new RemoveTask use case.
func NewRemoveTask(project domain.ProjectRepository, logger domain.Logger) *RemoveTask {
	return &RemoveTask{project: project, logger: logger}
}

// Execute removes the first task with the given ID.
func (uc *RemoveTask) Execute(_ context.Context, in RemoveTaskInput) (*RemoveTaskOutput, error) {
	tasks, err := uc.project.Load()
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}

	pos := -1
	for i, t := range tasks {
		if t.ID == in.TaskID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, in.TaskID)
	}

	removed := tasks[pos]
	tasks = append(tasks[:pos], tasks[pos+1:]...)

	var dependents []string
	if domain.FindTask(tasks, removed.ID) == nil {
		for _, t := range tasks {
			if t.Dependency == removed.ID {
				dependents = append(dependents, t.ID)
			}
		}
	}

	if err := uc.project.Save(tasks); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	uc.logger.Info(removed.ID, "task", fmt.Sprintf("removed %q", removed.Name))
	if len(dependents) > 0 {
		uc.logger.Warn("", "task", fmt.Sprintf("dependency %s now dangling for: %s", removed.ID, strings.Join(dependents, ", ")))
	}
	return &RemoveTaskOutput{Task: removed, Dependents: dependents}, nil
}
