package domain

import (
	"context"
	"io"
	"time"
)

// ProjectRepository manages project persistence.
// The task list is stored and returned in order.
type ProjectRepository interface {
	// Load returns the project's tasks. Returns ErrNotInitialized if no project exists.
	Load() ([]*Task, error)

	// Save replaces the stored tasks.
	Save(tasks []*Task) error

	// Exists reports whether a project has been saved.
	Exists() bool
}

// TableCodec reads and writes the tabular edit surface.
type TableCodec interface {
	// Encode writes table to w, header first.
	Encode(w io.Writer, table Table) error

	// Decode reads a table from r.
	Decode(r io.Reader) (Table, error)
}

// CalendarPublisher publishes a schedule to an external calendar.
type CalendarPublisher interface {
	// Publish creates or updates one event per task.
	Publish(ctx context.Context, calendarID string, tasks []*Task) (*PublishResult, error)
}

// PublishResult summarizes a calendar publish.
type PublishResult struct {
	Created   []string // Task IDs with new events
	Updated   []string // Task IDs whose events were updated
	Unchanged []string // Task IDs whose events already matched
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (project + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadProject returns only the project configuration.
	LoadProject() (*Config, error)
}

// ConfigInfo holds information about a config file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetProjectConfigInfo returns information about the project config.
	GetProjectConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config.
	GetGlobalConfigInfo() ConfigInfo

	// InitProjectConfig creates a project config file with the default template.
	InitProjectConfig() error

	// InitGlobalConfig creates a global config file with the default template.
	InitGlobalConfig() error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger writes operational log lines.
// taskID is empty for project-wide messages.
type Logger interface {
	Info(taskID, category, msg string)
	Debug(taskID, category, msg string)
	Warn(taskID, category, msg string)
	Error(taskID, category, msg string)
}

// NopLogger discards all log lines.
type NopLogger struct{}

func (NopLogger) Info(_, _, _ string)  {}
func (NopLogger) Debug(_, _, _ string) {}
func (NopLogger) Warn(_, _, _ string)  {}
func (NopLogger) Error(_, _, _ string) {}
