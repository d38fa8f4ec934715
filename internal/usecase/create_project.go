package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/gantt/internal/domain"
)

// CreateProjectInput contains the parameters for creating a project.
// TaskCount takes precedence over Complexity; with neither, the first preset is used.
type CreateProjectInput struct {
	TaskCount  *int   // Explicit number of tasks (optional)
	Complexity string // Preset label or its first word (optional)
	Force      bool   // Overwrite an existing project
}

// CreateProjectOutput contains the result of creating a project.
type CreateProjectOutput struct {
	Preset string         // Label of the preset used (empty for an explicit count)
	Tasks  []*domain.Task // The created tasks
}

// CreateProject is the use case for starting a new project of default tasks.
type CreateProject struct {
	project domain.ProjectRepository
	config  *domain.Config
	clock   domain.Clock
	logger  domain.Logger
}

// NewCreateProject creates a new CreateProject use case.
func NewCreateProject(project domain.ProjectRepository, config *domain.Config, clock domain.Clock, logger domain.Logger) *CreateProject {
	return &CreateProject{
		project: project,
		config:  config,
		clock:   clock,
		logger:  logger,
	}
}

// Execute creates and saves a new project.
func (uc *CreateProject) Execute(_ context.Context, in CreateProjectInput) (*CreateProjectOutput, error) {
	count, preset, err := uc.taskCount(in)
	if err != nil {
		return nil, err
	}

	if uc.project.Exists() && !in.Force {
		return nil, domain.ErrProjectExists
	}

	tasks := domain.CreateProject(count, uc.clock.Now(), uc.config.ProjectDefaults())
	if err := uc.project.Save(tasks); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	uc.logger.Info("", "project", fmt.Sprintf("created project with %d tasks", len(tasks)))
	return &CreateProjectOutput{Tasks: tasks, Preset: preset}, nil
}

func (uc *CreateProject) taskCount(in CreateProjectInput) (int, string, error) {
	if in.TaskCount != nil {
		if *in.TaskCount < 0 {
			return 0, "", domain.ErrNegativeTaskCount
		}
		return *in.TaskCount, "", nil
	}

	if in.Complexity == "" {
		if len(uc.config.Complexities) == 0 {
			return 0, "", domain.ErrUnknownComplexity
		}
		c := uc.config.Complexities[0]
		return c.TaskCount, c.Label, nil
	}

	c, err := domain.FindComplexity(uc.config.Complexities, in.Complexity)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q", err, in.Complexity)
	}
	return c.TaskCount, c.Label, nil
}
