package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/render"
)

// ShowChartInput contains the parameters for rendering the chart.
type ShowChartInput struct {
	Width   int  // Output width in cells (0 = default)
	NoColor bool // Plain text output
}

// ShowChartOutput contains the rendered chart.
type ShowChartOutput struct {
	Chart *render.Chart
	Text  string
}

// ShowChart is the use case for drawing the project as a Gantt chart.
// The stored schedule is drawn as is; run ResolveSchedule first to pin dependents.
type ShowChart struct {
	project domain.ProjectRepository
	config  *domain.Config
	clock   domain.Clock
}

// NewShowChart creates a new ShowChart use case.
func NewShowChart(project domain.ProjectRepository, config *domain.Config, clock domain.Clock) *ShowChart {
	return &ShowChart{
		project: project,
		config:  config,
		clock:   clock,
	}
}

// Execute builds and renders the chart.
func (uc *ShowChart) Execute(_ context.Context, in ShowChartInput) (*ShowChartOutput, error) {
	tasks, err := uc.project.Load()
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}

	chart := render.Build(tasks, uc.config.Palette, uc.clock.Now())
	return &ShowChartOutput{
		Chart: chart,
		Text:  chart.Render(render.Options{Width: in.Width, NoColor: in.NoColor}),
	}, nil
}
