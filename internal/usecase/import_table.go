package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/runoshun/gantt/internal/domain"
)

// ImportTableInput contains the parameters for importing the task table.
type ImportTableInput struct {
	Reader io.Reader // Source (required)
}

// ImportTableOutput contains the result of importing the task table.
type ImportTableOutput struct {
	Tasks  []*domain.Task       // Imported tasks after resolution
	Moved  []string             // IDs moved by resolution
	Report domain.ResolveReport // Resolution run after the import
}

// ImportTable is the use case for replacing the project from edited rows.
// The import is atomic: a malformed row leaves the stored project untouched.
type ImportTable struct {
	project domain.ProjectRepository
	codec   domain.TableCodec
	config  *domain.Config
	logger  domain.Logger
}

// NewImportTable creates a new ImportTable use case.
func NewImportTable(project domain.ProjectRepository, codec domain.TableCodec, config *domain.Config, logger domain.Logger) *ImportTable {
	return &ImportTable{
		project: project,
		codec:   codec,
		config:  config,
		logger:  logger,
	}
}

// Execute decodes, converts, resolves and saves the rows.
func (uc *ImportTable) Execute(_ context.Context, in ImportTableInput) (*ImportTableOutput, error) {
	table, err := uc.codec.Decode(in.Reader)
	if err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}

	tasks, err := domain.FromTable(table)
	if err != nil {
		return nil, err
	}

	for _, t := range tasks {
		if !uc.config.Palette.Has(t.Colour) {
			uc.logger.Warn(t.ID, "import", fmt.Sprintf("colour %q is not in the palette", t.Colour))
		}
	}

	result := resolveSchedule(tasks, uc.logger)

	if err := uc.project.Save(tasks); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	uc.logger.Info("", "import", fmt.Sprintf("imported %d tasks", len(tasks)))
	return &ImportTableOutput{Tasks: tasks, Moved: result.Moved, Report: result.Report}, nil
}
