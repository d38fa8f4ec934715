package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CreateAndList(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"new", "--tasks", "2"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Created project with 2 tasks")

	stdout.Reset()
	require.NoError(t, run([]string{"edit", "T-002", "--dep", "T-001"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Updated T-002")

	stdout.Reset()
	require.NoError(t, run([]string{"list"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "T-001")
	assert.Contains(t, stdout.String(), "satisfied")

	_, err := os.Stat(filepath.Join(dir, ".gantt", "project.json"))
	assert.NoError(t, err)
	_, err = os.Stat(domain.TaskLogPath(filepath.Join(dir, ".gantt"), "T-002"))
	assert.NoError(t, err, "per-task log written")
}

func TestRun_NoProject(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	err := run([]string{"list"}, &stdout, &stderr)

	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestRun_Version(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--version"}, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "dev")
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (unavailable before Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
