// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"io"
	"time"

	"github.com/runoshun/gantt/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockProjectRepository is a test double for domain.ProjectRepository.
// Load and Save copy tasks so tests observe only what was persisted.
// Fields are ordered to minimize memory padding.
type MockProjectRepository struct {
	Tasks       []*domain.Task
	LoadErr     error
	SaveErr     error
	SaveCount   int
	Initialized bool
}

// NewMockProjectRepository creates a repository holding tasks.
// A nil tasks slice yields an uninitialized repository.
func NewMockProjectRepository(tasks []*domain.Task) *MockProjectRepository {
	return &MockProjectRepository{
		Tasks:       domain.CloneTasks(tasks),
		Initialized: tasks != nil,
	}
}

// Ensure MockProjectRepository implements domain.ProjectRepository interface.
var _ domain.ProjectRepository = (*MockProjectRepository)(nil)

// Load returns a copy of the stored tasks.
func (m *MockProjectRepository) Load() ([]*domain.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if !m.Initialized {
		return nil, domain.ErrNotInitialized
	}
	return domain.CloneTasks(m.Tasks), nil
}

// Save stores a copy of tasks.
func (m *MockProjectRepository) Save(tasks []*domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = domain.CloneTasks(tasks)
	m.Initialized = true
	m.SaveCount++
	return nil
}

// Exists reports whether a project was seeded or saved.
func (m *MockProjectRepository) Exists() bool {
	return m.Initialized
}

// MockTableCodec is a test double for domain.TableCodec.
type MockTableCodec struct {
	Encoded   domain.Table
	Table     domain.Table
	EncodeErr error
	DecodeErr error
}

// Ensure MockTableCodec implements domain.TableCodec interface.
var _ domain.TableCodec = (*MockTableCodec)(nil)

// Encode records the table.
func (m *MockTableCodec) Encode(_ io.Writer, table domain.Table) error {
	if m.EncodeErr != nil {
		return m.EncodeErr
	}
	m.Encoded = table
	return nil
}

// Decode returns the configured table.
func (m *MockTableCodec) Decode(_ io.Reader) (domain.Table, error) {
	if m.DecodeErr != nil {
		return nil, m.DecodeErr
	}
	return m.Table, nil
}

// MockCalendarPublisher is a test double for domain.CalendarPublisher.
// Fields are ordered to minimize memory padding.
type MockCalendarPublisher struct {
	Result     *domain.PublishResult
	Err        error
	CalendarID string
	Tasks      []*domain.Task
	Called     bool
}

// Ensure MockCalendarPublisher implements domain.CalendarPublisher interface.
var _ domain.CalendarPublisher = (*MockCalendarPublisher)(nil)

// Publish records its arguments. Without a configured Result every task is
// reported as created.
func (m *MockCalendarPublisher) Publish(_ context.Context, calendarID string, tasks []*domain.Task) (*domain.PublishResult, error) {
	m.Called = true
	m.CalendarID = calendarID
	m.Tasks = domain.CloneTasks(tasks)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result != nil {
		return m.Result, nil
	}
	result := &domain.PublishResult{}
	for _, t := range tasks {
		result.Created = append(result.Created, t.ID)
	}
	return result, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
// Fields are ordered to minimize memory padding.
type MockConfigLoader struct {
	Config        *domain.Config
	GlobalConfig  *domain.Config
	ProjectConfig *domain.Config
	LoadErr       error
	GlobalErr     error
	ProjectErr    error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured global config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	if m.GlobalConfig != nil {
		return m.GlobalConfig, nil
	}
	return m.Config, nil
}

// LoadProject returns the configured project config or error.
func (m *MockConfigLoader) LoadProject() (*domain.Config, error) {
	if m.ProjectErr != nil {
		return nil, m.ProjectErr
	}
	if m.ProjectConfig != nil {
		return m.ProjectConfig, nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitProjectErr    error
	InitGlobalErr     error
	ProjectConfigInfo domain.ConfigInfo
	GlobalConfigInfo  domain.ConfigInfo
	InitProjectCalled bool
	InitGlobalCalled  bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		ProjectConfigInfo: domain.ConfigInfo{
			Path:   "/test/.gantt/config.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/gantt/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetProjectConfigInfo returns the configured project config info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitProjectConfig records the call and returns configured error.
func (m *MockConfigManager) InitProjectConfig() error {
	m.InitProjectCalled = true
	return m.InitProjectErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig() error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// LogEntry is one line captured by MockLogger.
type LogEntry struct {
	Level    string
	TaskID   string
	Category string
	Msg      string
}

// MockLogger records log lines.
type MockLogger struct {
	Entries []LogEntry
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) add(level, taskID, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Info records an info line.
func (m *MockLogger) Info(taskID, category, msg string) { m.add("info", taskID, category, msg) }

// Debug records a debug line.
func (m *MockLogger) Debug(taskID, category, msg string) { m.add("debug", taskID, category, msg) }

// Warn records a warn line.
func (m *MockLogger) Warn(taskID, category, msg string) { m.add("warn", taskID, category, msg) }

// Error records an error line.
func (m *MockLogger) Error(taskID, category, msg string) { m.add("error", taskID, category, msg) }

// Count returns the number of entries at level.
func (m *MockLogger) Count(level string) int {
	n := 0
	for _, e := range m.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}
