package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func newFixedLogger(t *testing.T, level slog.Level) (*Logger, string) {
	t.Helper()
	appDir := t.TempDir()
	logger := New(appDir, level)
	logger.now = func() time.Time { return time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC) }
	t.Cleanup(func() { _ = logger.Close() })
	return logger, appDir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestLogger_TaskLine(t *testing.T) {
	// Setup
	logger, appDir := newFixedLogger(t, slog.LevelInfo)

	// Execute
	logger.Info("T-001", "edit", "duration 10 -> 4")

	// Assert
	want := "[2025-12-30 09:32:51] [INFO] [T-001] [edit] duration 10 -> 4\n"
	assert.Equal(t, want, readFile(t, domain.GlobalLogPath(appDir)))
	assert.Equal(t, want, readFile(t, domain.TaskLogPath(appDir, "T-001")))
}

func TestLogger_GlobalOnly(t *testing.T) {
	logger, appDir := newFixedLogger(t, slog.LevelInfo)

	logger.Warn("", "resolve", "pass bound reached")

	assert.Contains(t, readFile(t, domain.GlobalLogPath(appDir)), "[WARN] [global] [resolve] pass bound reached")
	entries, err := os.ReadDir(filepath.Join(appDir, "logs"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLogger_LevelFilter(t *testing.T) {
	logger, appDir := newFixedLogger(t, slog.LevelWarn)

	logger.Debug("", "x", "debug line")
	logger.Info("", "x", "info line")
	logger.Error("", "x", "error line")

	content := readFile(t, domain.GlobalLogPath(appDir))
	assert.NotContains(t, content, "debug line")
	assert.NotContains(t, content, "info line")
	assert.Contains(t, content, "[ERROR]")
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", slog.LevelDebug)
	logger.Info("T-001", "edit", "dropped")
	assert.NoError(t, logger.Close())
}

func TestLogger_UnsafeTaskID(t *testing.T) {
	logger, appDir := newFixedLogger(t, slog.LevelInfo)

	logger.Info("../escape", "edit", "contained")

	assert.FileExists(t, domain.TaskLogPath(appDir, ".._escape"))
	assert.NoFileExists(t, filepath.Join(appDir, "escape.log"))
}

func TestFileKey(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{id: "T-001", want: "T-001"},
		{id: "a/b", want: "a_b"},
		{id: "a\\b", want: "a_b"},
		{id: "a\x00b", want: "a_b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fileKey(tt.id), tt.id)
	}
}

func TestLogger_Concurrent(t *testing.T) {
	logger, appDir := newFixedLogger(t, slog.LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("T-002", "resolve", "moved")
		}()
	}
	wg.Wait()

	content := readFile(t, domain.TaskLogPath(appDir, "T-002"))
	assert.Equal(t, 20, countLines(content))
}

func countLines(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}

func TestLogger_OpenFailureReportedOnce(t *testing.T) {
	// A regular file where the .gantt directory should be makes every open fail.
	appDir := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(appDir, nil, 0o600))

	var buf bytes.Buffer
	logger := New(appDir, slog.LevelInfo).WithFallback(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { _ = logger.Close() })

	logger.Info("T-001", "edit", "first")
	logger.Info("", "resolve", "second")

	assert.Equal(t, 1, strings.Count(buf.String(), "file logging disabled"))
	assert.Contains(t, buf.String(), "create logs directory")
}

func TestLogger_NoFallback(t *testing.T) {
	appDir := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(appDir, nil, 0o600))

	logger := New(appDir, slog.LevelInfo)

	assert.NotPanics(t, func() { logger.Warn("", "resolve", "dropped") })
}
