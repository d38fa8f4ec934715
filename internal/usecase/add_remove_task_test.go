package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTask_Execute(t *testing.T) {
	// Setup
	repo := chainProject()
	uc := NewAddTask(repo, domain.NewDefaultConfig(), fixedClock(), &testutil.MockLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), AddTaskInput{Name: "  Review  ", Dependency: "T-003"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "T-004", out.Task.ID)
	assert.Equal(t, "Review", out.Task.Name)
	require.Len(t, repo.Tasks, 4)
	added := repo.Tasks[3]
	// The whole chain is resolved: A ends day 5, B day 8, C day 10.
	assert.Equal(t, day(10), added.StartDate)
	assert.Equal(t, day(20), added.EndDate)
}

func TestAddTask_Execute_DefaultName(t *testing.T) {
	repo := testutil.NewMockProjectRepository([]*domain.Task{makeTask("T-007", 0, 1, ""), makeTask("custom", 0, 1, "")})
	uc := NewAddTask(repo, domain.NewDefaultConfig(), fixedClock(), &testutil.MockLogger{})

	out, err := uc.Execute(context.Background(), AddTaskInput{})

	require.NoError(t, err)
	assert.Equal(t, "T-008", out.Task.ID)
	assert.Equal(t, "Task 8", out.Task.Name)
	assert.Equal(t, day(5), out.Task.StartDate)
	assert.False(t, out.Task.HasDependency())
}

func TestAddTask_Execute_SelfDependency(t *testing.T) {
	repo := chainProject()
	uc := NewAddTask(repo, domain.NewDefaultConfig(), fixedClock(), &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), AddTaskInput{Dependency: "T-004"})

	assert.ErrorIs(t, err, domain.ErrSelfDependency)
	assert.Zero(t, repo.SaveCount)
}

func TestAddTask_Execute_DanglingDependency(t *testing.T) {
	repo := chainProject()
	logger := &testutil.MockLogger{}
	uc := NewAddTask(repo, domain.NewDefaultConfig(), fixedClock(), logger)

	out, err := uc.Execute(context.Background(), AddTaskInput{Dependency: "T-404"})

	require.NoError(t, err)
	assert.Equal(t, "T-404", out.Task.Dependency)
	assert.Equal(t, day(5), out.Task.StartDate, "dangling reference leaves default start")
	require.Equal(t, 1, logger.Count("warn"))
	for _, e := range logger.Entries {
		if e.Level == "warn" {
			assert.Equal(t, "T-004", e.TaskID)
			assert.Contains(t, e.Msg, "T-404")
		}
	}
}

func TestRemoveTask_Execute(t *testing.T) {
	repo := chainProject()
	logger := &testutil.MockLogger{}
	uc := NewRemoveTask(repo, logger)

	out, err := uc.Execute(context.Background(), RemoveTaskInput{TaskID: "T-001"})

	require.NoError(t, err)
	assert.Equal(t, "T-001", out.Task.ID)
	assert.Equal(t, []string{"T-002"}, out.Dependents)
	require.Len(t, repo.Tasks, 2)
	assert.Equal(t, "T-001", repo.Tasks[1].Dependency, "reference kept and now dangles")
	assert.Equal(t, 1, logger.Count("warn"))
}

func TestRemoveTask_Execute_NotFound(t *testing.T) {
	repo := chainProject()

	_, err := NewRemoveTask(repo, &testutil.MockLogger{}).Execute(context.Background(), RemoveTaskInput{TaskID: "T-999"})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Zero(t, repo.SaveCount)
}
