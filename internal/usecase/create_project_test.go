package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProject_Execute_Complexity(t *testing.T) {
	// Setup
	repo := testutil.NewMockProjectRepository(nil)
	uc := NewCreateProject(repo, domain.NewDefaultConfig(), fixedClock(), &testutil.MockLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), CreateProjectInput{Complexity: "medium"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Medium Project (10 tasks)", out.Preset)
	require.Len(t, repo.Tasks, 10)
	first := repo.Tasks[0]
	assert.Equal(t, "T-001", first.ID)
	assert.Equal(t, "Task 1", first.Name)
	assert.Equal(t, day(5), first.StartDate)
	assert.Equal(t, day(15), first.EndDate)
	assert.Equal(t, "Dark Blue", first.Colour)
	assert.Equal(t, "T-010", repo.Tasks[9].ID)
}

func TestCreateProject_Execute_DefaultPreset(t *testing.T) {
	repo := testutil.NewMockProjectRepository(nil)
	uc := NewCreateProject(repo, domain.NewDefaultConfig(), fixedClock(), &testutil.MockLogger{})

	out, err := uc.Execute(context.Background(), CreateProjectInput{})

	require.NoError(t, err)
	assert.Equal(t, "Quick Win (3 tasks)", out.Preset)
	assert.Len(t, out.Tasks, 3)
}

func TestCreateProject_Execute_ExplicitCount(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantLen int
		wantErr error
	}{
		{name: "positive", count: 7, wantLen: 7},
		{name: "zero yields empty project", count: 0, wantLen: 0},
		{name: "negative", count: -1, wantErr: domain.ErrNegativeTaskCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testutil.NewMockProjectRepository(nil)
			uc := NewCreateProject(repo, domain.NewDefaultConfig(), fixedClock(), &testutil.MockLogger{})

			out, err := uc.Execute(context.Background(), CreateProjectInput{TaskCount: ptr(tt.count), Complexity: "large"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.SaveCount)
				return
			}
			require.NoError(t, err)
			assert.Len(t, out.Tasks, tt.wantLen)
			assert.True(t, repo.Exists())
		})
	}
}

func TestCreateProject_Execute_ConfiguredDefaults(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Project.DefaultDuration = 2
	cfg.Project.StartOffset = 0
	cfg.Project.DefaultColour = "Charcoal"
	repo := testutil.NewMockProjectRepository(nil)
	uc := NewCreateProject(repo, cfg, fixedClock(), &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), CreateProjectInput{TaskCount: ptr(1)})

	require.NoError(t, err)
	assert.Equal(t, day(0), repo.Tasks[0].StartDate)
	assert.Equal(t, day(2), repo.Tasks[0].EndDate)
	assert.Equal(t, "Charcoal", repo.Tasks[0].Colour)
}

func TestCreateProject_Execute_Exists(t *testing.T) {
	repo := testutil.NewMockProjectRepository([]*domain.Task{makeTask("T-001", 0, 1, "")})
	uc := NewCreateProject(repo, domain.NewDefaultConfig(), fixedClock(), &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), CreateProjectInput{})
	assert.ErrorIs(t, err, domain.ErrProjectExists)

	out, err := uc.Execute(context.Background(), CreateProjectInput{Force: true, Complexity: "small"})
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 5)
	assert.Len(t, repo.Tasks, 5)
}

func TestCreateProject_Execute_UnknownComplexity(t *testing.T) {
	repo := testutil.NewMockProjectRepository(nil)
	uc := NewCreateProject(repo, domain.NewDefaultConfig(), fixedClock(), &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), CreateProjectInput{Complexity: "gigantic"})

	assert.ErrorIs(t, err, domain.ErrUnknownComplexity)
}
