package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/gantt/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the tasks in project order and their dependency
// state, aligned by index.
type ListTasksOutput struct {
	Tasks  []*domain.Task
	States []domain.DependencyState
}

// ListTasks is the use case for listing a project's tasks.
type ListTasks struct {
	project domain.ProjectRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(project domain.ProjectRepository) *ListTasks {
	return &ListTasks{project: project}
}

// Execute returns the stored tasks without resolving them.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.project.Load()
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	return &ListTasksOutput{
		Tasks:  tasks,
		States: domain.DependencyStates(tasks),
	}, nil
}
