package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand(t *testing.T) {
	t.Run("explicit count", func(t *testing.T) {
		env := newTestEnv(nil)

		stdout, _, err := env.run(t, "new", "--tasks", "3")

		require.NoError(t, err)
		assert.Equal(t, "Created project with 3 tasks: /test/.gantt/project.json\n", stdout)
		require.Len(t, env.repo.Tasks, 3)
		assert.Equal(t, day(5), env.repo.Tasks[0].StartDate)
	})

	t.Run("first preset by default", func(t *testing.T) {
		env := newTestEnv(nil)

		stdout, _, err := env.run(t, "new")

		require.NoError(t, err)
		assert.Contains(t, stdout, "(Quick Win (3 tasks))")
		assert.Len(t, env.repo.Tasks, 3)
	})

	t.Run("existing project needs force", func(t *testing.T) {
		env := newTestEnv(chainTasks())

		_, _, err := env.run(t, "new", "--tasks", "1")
		assert.ErrorIs(t, err, domain.ErrProjectExists)

		_, _, err = env.run(t, "new", "--tasks", "1", "--force")
		require.NoError(t, err)
		assert.Len(t, env.repo.Tasks, 1)
	})

	t.Run("unknown complexity", func(t *testing.T) {
		env := newTestEnv(nil)

		_, _, err := env.run(t, "new", "--complexity", "Galactic")

		assert.ErrorIs(t, err, domain.ErrUnknownComplexity)
	})
}

func TestListCommand(t *testing.T) {
	env := newTestEnv(chainTasks())

	stdout, _, err := env.run(t, "list")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "T-003")
	assert.Contains(t, lines[1], "pending")
	assert.Contains(t, lines[3], "5d")
	assert.Contains(t, lines[3], "unresolved")
}

func TestListCommand_Empty(t *testing.T) {
	env := newTestEnv([]*domain.Task{})

	stdout, _, err := env.run(t, "list")

	require.NoError(t, err)
	assert.Equal(t, "No tasks\n", stdout)
}

func TestListCommand_NotInitialized(t *testing.T) {
	env := newTestEnv(nil)

	_, _, err := env.run(t, "list")

	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestListCommand_JSON(t *testing.T) {
	env := newTestEnv(chainTasks())

	stdout, _, err := env.run(t, "list", "--json")

	require.NoError(t, err)
	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "T-003", items[0]["id"])
	assert.Equal(t, "T-002", items[0]["dependency"])
	assert.Equal(t, "pending", items[0]["state"])
	assert.InDelta(t, 5, items[2]["duration"], 0)
}

func TestAddCommand(t *testing.T) {
	env := newTestEnv(chainTasks())

	stdout, _, err := env.run(t, "add", "--name", "Review", "--dep", "T-001")

	require.NoError(t, err)
	assert.Contains(t, stdout, `Added T-004 "Review"`)
	require.Len(t, env.repo.Tasks, 4)
	added := env.repo.Tasks[3]
	assert.Equal(t, "T-001", added.Dependency)
	assert.Equal(t, domain.FindTask(env.repo.Tasks, "T-001").EndDate, added.StartDate)
}

func TestRmCommand(t *testing.T) {
	env := newTestEnv(chainTasks())

	stdout, stderr, err := env.run(t, "rm", "T-002")

	require.NoError(t, err)
	assert.Equal(t, "Removed T-002 \"Task T-002\"\n", stdout)
	assert.Contains(t, stderr, "Warning: T-003 still depend on T-002")
	assert.Len(t, env.repo.Tasks, 2)
}

func TestRmCommand_NotFound(t *testing.T) {
	env := newTestEnv(chainTasks())

	_, _, err := env.run(t, "rm", "T-404")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestRmCommand_RequiresID(t *testing.T) {
	env := newTestEnv(chainTasks())

	_, _, err := env.run(t, "rm")

	assert.Error(t, err)
}

func TestEditCommand(t *testing.T) {
	env := newTestEnv(chainTasks())

	stdout, _, err := env.run(t, "edit", "T-001", "--duration", "7", "--name", "Design")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Updated T-001 (2024-03-01 → 2024-03-08)")
	assert.Contains(t, stdout, "Moved")
	assert.Contains(t, stdout, "T-002")
	t1 := domain.FindTask(env.repo.Tasks, "T-001")
	assert.Equal(t, "Design", t1.Name)
	assert.Equal(t, day(7), domain.FindTask(env.repo.Tasks, "T-002").StartDate)
	assert.Equal(t, day(10), domain.FindTask(env.repo.Tasks, "T-003").StartDate)
}

func TestEditCommand_StartAndDependency(t *testing.T) {
	env := newTestEnv(chainTasks())

	_, _, err := env.run(t, "edit", "T-003", "--start", "2024-05-01", "--no-dep")

	require.NoError(t, err)
	t3 := domain.FindTask(env.repo.Tasks, "T-003")
	assert.False(t, t3.HasDependency())
	assert.Equal(t, "2024-05-01", domain.FormatDate(t3.StartDate))
	assert.Equal(t, "2024-05-03", domain.FormatDate(t3.EndDate))
}

func TestEditCommand_Errors(t *testing.T) {
	tests := []struct {
		target error
		name   string
		args   []string
	}{
		{name: "no fields", args: []string{"edit", "T-001"}, target: domain.ErrNoFieldsToUpdate},
		{name: "negative duration", args: []string{"edit", "T-001", "--duration", "-1"}, target: domain.ErrInvalidDuration},
		{name: "unknown colour", args: []string{"edit", "T-001", "--colour", "Magenta"}, target: domain.ErrUnknownColour},
		{name: "self dependency", args: []string{"edit", "T-001", "--dep", "T-001"}, target: domain.ErrSelfDependency},
		{name: "unknown task", args: []string{"edit", "T-404", "--name", "x"}, target: domain.ErrTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(chainTasks())

			_, _, err := env.run(t, tt.args...)

			assert.ErrorIs(t, err, tt.target)
			assert.Zero(t, env.repo.SaveCount)
		})
	}
}

func TestEditCommand_BadFlags(t *testing.T) {
	env := newTestEnv(chainTasks())

	_, _, err := env.run(t, "edit", "T-001", "--start", "01/03/2024")
	assert.Error(t, err)

	_, _, err = env.run(t, "edit", "T-003", "--dep", "T-001", "--no-dep")
	assert.Error(t, err)
	assert.Zero(t, env.repo.SaveCount)
}

func TestResolveCommand(t *testing.T) {
	env := newTestEnv(chainTasks())

	stdout, _, err := env.run(t, "resolve")

	require.NoError(t, err)
	assert.Contains(t, stdout, "T-002")
	assert.Contains(t, stdout, "2024-03-06")
	assert.Contains(t, stdout, "T-003")
	assert.Equal(t, 1, env.repo.SaveCount)

	stdout, _, err = env.run(t, "resolve")
	require.NoError(t, err)
	assert.Equal(t, "Schedule already resolved\n", stdout)
}

func TestResolveCommand_DryRun(t *testing.T) {
	env := newTestEnv(chainTasks())

	stdout, _, err := env.run(t, "resolve", "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, stdout, "(dry run, not saved)")
	assert.Zero(t, env.repo.SaveCount)
}

func TestResolveCommand_Cycle(t *testing.T) {
	env := newTestEnv([]*domain.Task{
		makeTask("T-001", 0, 2, "T-002"),
		makeTask("T-002", 0, 3, "T-001"),
	})

	_, stderr, err := env.run(t, "resolve")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: stopped after 2 passes; dependency cycle among:")
}

func TestPresetsCommand(t *testing.T) {
	env := newTestEnv(nil)

	stdout, _, err := env.run(t, "presets")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Quick Win (3 tasks)")
	assert.Contains(t, stdout, "Dark Blue")
	assert.Contains(t, stdout, "#1B3A6B")
}

func TestChartCommand(t *testing.T) {
	env := newTestEnv(chainTasks())

	stdout, _, err := env.run(t, "chart", "--no-color", "--width", "100")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Project Gantt Chart")
	assert.Contains(t, stdout, "T-001 → T-002")
	assert.True(t, strings.HasSuffix(stdout, "\n"))
}

func TestChartCommand_Empty(t *testing.T) {
	env := newTestEnv([]*domain.Task{})

	stdout, _, err := env.run(t, "chart", "--no-color")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No tasks to display")
}

func TestExportCommand(t *testing.T) {
	env := newTestEnv(chainTasks())

	stdout, _, err := env.run(t, "export")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID,Task Name,Duration,Start Date,End Date,Colour,Dependency", lines[0])
	assert.Equal(t, "T-003,Task T-003,2,2024-03-01,2024-03-03,Teal,T-002", lines[1])
}

func TestExportCommand_ToFile(t *testing.T) {
	env := newTestEnv(chainTasks())
	file := filepath.Join(t.TempDir(), "tasks.csv")

	stdout, _, err := env.run(t, "export", "-o", file)

	require.NoError(t, err)
	assert.Equal(t, "Exported 3 tasks to "+file+"\n", stdout)
	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "ID,Task Name"))
}

func TestImportCommand(t *testing.T) {
	env := newTestEnv(chainTasks())
	file := filepath.Join(t.TempDir(), "tasks.csv")
	csv := "ID,Task Name,Duration,Start Date,End Date,Colour,Dependency\n" +
		"T-001,Design,5,2024-03-01,,Teal,\n" +
		"T-002,Build,3,2024-03-01,,Teal,T-001\n"
	require.NoError(t, os.WriteFile(file, []byte(csv), 0o600))

	stdout, _, err := env.run(t, "import", file)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported 2 tasks")
	assert.Contains(t, stdout, "Moved T-002")
	require.Len(t, env.repo.Tasks, 2)
	assert.Equal(t, day(5), env.repo.Tasks[1].StartDate)
}

func TestImportCommand_Malformed(t *testing.T) {
	env := newTestEnv(chainTasks())
	file := filepath.Join(t.TempDir(), "tasks.csv")
	csv := "ID,Task Name,Duration,Start Date\n" +
		"T-001,Design,five,2024-03-01\n"
	require.NoError(t, os.WriteFile(file, []byte(csv), 0o600))

	_, _, err := env.run(t, "import", file)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, env.repo.SaveCount)
	assert.Len(t, env.repo.Tasks, 3)
}

func TestImportCommand_MissingFile(t *testing.T) {
	env := newTestEnv(chainTasks())

	_, _, err := env.run(t, "import", filepath.Join(t.TempDir(), "nope.csv"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCalendarSyncCommand(t *testing.T) {
	env := newTestEnv(chainTasks())

	stdout, _, err := env.run(t, "calendar", "sync", "--calendar", "team@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Synced 3 tasks to team@example.com: 3 created, 0 updated, 0 unchanged\n", stdout)
	assert.Equal(t, "team@example.com", env.calendar.CalendarID)
	assert.Equal(t, day(5), domain.FindTask(env.calendar.Tasks, "T-002").StartDate, "resolved schedule published")
	assert.Zero(t, env.repo.SaveCount)
}

func TestCalendarSyncCommand_NotConfigured(t *testing.T) {
	env := newTestEnv(chainTasks())

	_, _, err := env.run(t, "calendar", "sync")

	assert.ErrorIs(t, err, domain.ErrCalendarNotConfigured)
	assert.False(t, env.calendar.Called)
}

func TestConfigShowCommand(t *testing.T) {
	env := newTestEnv(nil)

	stdout, _, err := env.run(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[Loaded from]")
	assert.Contains(t, stdout, "- /home/test/.config/gantt/config.toml (not found)")
	assert.Contains(t, stdout, "- /test/.gantt/config.toml (not found)")
	assert.Contains(t, stdout, "[Effective Config]")
	assert.Contains(t, stdout, "[project]")
	assert.Contains(t, stdout, "default_duration = 10")
	assert.Contains(t, stdout, "[[palette]]")
}

func TestConfigInitCommand(t *testing.T) {
	env := newTestEnv(nil)

	stdout, _, err := env.run(t, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "Created config file: /test/.gantt/config.toml\n", stdout)
	assert.True(t, env.manager.InitProjectCalled)

	stdout, _, err = env.run(t, "config", "init", "--global")
	require.NoError(t, err)
	assert.Equal(t, "Created config file: /home/test/.config/gantt/config.toml\n", stdout)
	assert.True(t, env.manager.InitGlobalCalled)
}

func TestConfigInitCommand_Exists(t *testing.T) {
	env := newTestEnv(nil)
	env.manager.InitProjectErr = domain.ErrConfigExists

	_, _, err := env.run(t, "config", "init")

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
