package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/runoshun/gantt/internal/domain"
)

// ExportTableInput contains the parameters for exporting the task table.
type ExportTableInput struct {
	Writer io.Writer // Destination (required)
}

// ExportTableOutput contains the result of exporting the task table.
type ExportTableOutput struct {
	Rows int
}

// ExportTable is the use case for writing the tabular edit surface.
type ExportTable struct {
	project domain.ProjectRepository
	codec   domain.TableCodec
}

// NewExportTable creates a new ExportTable use case.
func NewExportTable(project domain.ProjectRepository, codec domain.TableCodec) *ExportTable {
	return &ExportTable{project: project, codec: codec}
}

// Execute writes every task as one row, in project order.
func (uc *ExportTable) Execute(_ context.Context, in ExportTableInput) (*ExportTableOutput, error) {
	tasks, err := uc.project.Load()
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}

	table := domain.ToTable(tasks)
	if err := uc.codec.Encode(in.Writer, table); err != nil {
		return nil, fmt.Errorf("encode table: %w", err)
	}
	return &ExportTableOutput{Rows: len(table)}, nil
}
