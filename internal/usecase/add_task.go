package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/gantt/internal/domain"
)

// AddTaskInput contains the parameters for appending a task.
type AddTaskInput struct {
	Name       string // Task name (optional, default "Task N")
	Dependency string // Predecessor ID (optional)
}

// AddTaskOutput contains the result of appending a task.
type AddTaskOutput struct {
	Task *domain.Task
}

// AddTask is the use case for appending a default task to the project.
type AddTask struct {
	project domain.ProjectRepository
	config  *domain.Config
	clock   domain.Clock
	logger  domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(project domain.ProjectRepository, config *domain.Config, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		project: project,
		config:  config,
		clock:   clock,
		logger:  logger,
	}
}

// Execute appends the task, resolves the schedule and saves it.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	tasks, err := uc.project.Load()
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}

	task := domain.MakeDefaultTask(domain.NextTaskIndex(tasks), uc.clock.Now(), uc.config.ProjectDefaults())
	if name := strings.TrimSpace(in.Name); name != "" {
		task.Name = name
	}
	task.Dependency = strings.TrimSpace(in.Dependency)
	if task.Dependency == task.ID {
		return nil, domain.ErrSelfDependency
	}
	if task.HasDependency() && domain.FindTask(tasks, task.Dependency) == nil {
		uc.logger.Warn(task.ID, "task", fmt.Sprintf("dependency %s names no task", task.Dependency))
	}

	tasks = append(tasks, task)
	resolveSchedule(tasks, uc.logger)

	if err := uc.project.Save(tasks); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	uc.logger.Info(task.ID, "task", fmt.Sprintf("added %q", task.Name))
	return &AddTaskOutput{Task: task}, nil
}
