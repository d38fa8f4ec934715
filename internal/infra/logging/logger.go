// Package logging provides file-based logging for gantt.
// Lines go to the project log (.gantt/logs/gantt.log) and, when a task ID is
// given, also to that task's log (.gantt/logs/<id>.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/gantt/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger appends formatted lines to log files under the project directory.
// Fields are ordered to minimize memory padding.
type Logger struct {
	globalFile *os.File
	taskFiles  map[string]*os.File
	now        func() time.Time
	fallback   *slog.Logger
	appDir     string
	mu         sync.Mutex
	level      slog.Level
	openFailed bool
}

// New creates a new Logger that writes below appDir/logs.
// If appDir is empty, logging is disabled.
func New(appDir string, level slog.Level) *Logger {
	return &Logger{
		appDir:    appDir,
		level:     level,
		now:       time.Now,
		taskFiles: make(map[string]*os.File),
	}
}

// WithFallback sets the logger that reports log files which cannot be opened.
// The first failure is reported; later ones are dropped.
func (l *Logger) WithFallback(fallback *slog.Logger) *Logger {
	l.fallback = fallback
	return l
}

// reportOpenFailure must be called with l.mu held.
func (l *Logger) reportOpenFailure(err error) {
	if l.fallback == nil || l.openFailed {
		return
	}
	l.openFailed = true
	l.fallback.Warn("file logging disabled", "dir", l.appDir, "error", err)
}

// ParseLevel parses a log level string into slog.Level.
// Unknown values fall back to info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fileKey maps a task ID to a safe log file base name.
// Task IDs are user-editable, so path separators are replaced.
func fileKey(taskID string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, taskID)
}

func (l *Logger) openLocked(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// write appends entry to the global log and, for a task, to its own log.
func (l *Logger) write(taskID, entry string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.globalFile == nil {
		f, err := l.openLocked(domain.GlobalLogPath(l.appDir))
		if err != nil {
			l.reportOpenFailure(err)
			return
		}
		l.globalFile = f
	}
	_, _ = io.WriteString(l.globalFile, entry)

	if taskID == "" {
		return
	}
	key := fileKey(taskID)
	f, ok := l.taskFiles[key]
	if !ok {
		var err error
		f, err = l.openLocked(domain.TaskLogPath(l.appDir, key))
		if err != nil {
			l.reportOpenFailure(err)
			return
		}
		l.taskFiles[key] = f
	}
	_, _ = io.WriteString(f, entry)
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
	}
	for key, f := range l.taskFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.taskFiles, key)
	}
	return lastErr
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [T-001] [edit] message
func formatLog(t time.Time, level slog.Level, taskID, category, msg string) string {
	scope := taskID
	if scope == "" {
		scope = "global"
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		scope,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, taskID, category, msg string) {
	if l.appDir == "" || level < l.level {
		return
	}
	l.write(taskID, formatLog(l.now(), level, taskID, category, msg))
}

// Info logs an info message.
func (l *Logger) Info(taskID, category, msg string) {
	l.log(slog.LevelInfo, taskID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(taskID, category, msg string) {
	l.log(slog.LevelDebug, taskID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(taskID, category, msg string) {
	l.log(slog.LevelWarn, taskID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(taskID, category, msg string) {
	l.log(slog.LevelError, taskID, category, msg)
}
