// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/infra/config"
	"github.com/runoshun/gantt/internal/infra/gcal"
	"github.com/runoshun/gantt/internal/infra/logging"
	"github.com/runoshun/gantt/internal/infra/projectstore"
	"github.com/runoshun/gantt/internal/infra/tablecsv"
	"github.com/runoshun/gantt/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	ProjectRoot string // Directory containing .gantt
	AppDir      string // Path to the .gantt directory
	StorePath   string // Path to the project file
}

// newConfig resolves paths for root. A non-empty projectFile overrides the
// store path chosen by the configured format.
func newConfig(root, projectFile, storeFormat string) Config {
	appDir := domain.ProjectDir(root)
	storePath := domain.ProjectStorePath(appDir, storeFormat)
	if projectFile != "" {
		storePath = projectFile
	}
	return Config{
		ProjectRoot: root,
		AppDir:      appDir,
		StorePath:   storePath,
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Project       domain.ProjectRepository
	Codec         domain.TableCodec
	Calendar      domain.CalendarPublisher
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	FileLogger    domain.Logger

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config
	closer    io.Closer

	// Configuration
	Config Config
}

// New creates a new Container rooted at dir.
// projectFile optionally points at a project file outside .gantt.
// out receives interactive output such as the calendar authorization prompt.
func New(dir, projectFile string, out io.Writer) (*Container, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if projectFile != "" {
		if projectFile, err = filepath.Abs(projectFile); err != nil {
			return nil, err
		}
	}

	appDir := domain.ProjectDir(root)
	configLoader := config.NewLoader(appDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	cfg := newConfig(root, projectFile, appConfig.Project.StoreFormat)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	fileLogger := logging.New(cfg.AppDir, logging.ParseLevel(appConfig.Log.Level)).WithFallback(logger)

	return &Container{
		Project:       projectstore.New(cfg.StorePath),
		Codec:         tablecsv.New(),
		Calendar:      gcal.NewPublisher(appConfig.Calendar, out),
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.AppDir),
		FileLogger:    fileLogger,
		Logger:        logger,
		AppConfig:     appConfig,
		closer:        fileLogger,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, project domain.ProjectRepository, clock domain.Clock, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Project:    project,
		Codec:      tablecsv.New(),
		Clock:      clock,
		FileLogger: domain.NopLogger{},
		Logger:     logger,
		AppConfig:  appConfig,
		Config:     cfg,
	}
}

// UseProjectFile points the project repository at path.
func (c *Container) UseProjectFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	c.Config.StorePath = abs
	c.Project = projectstore.New(abs)
	return nil
}

// Close releases open log files.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// UseCase factory methods

// CreateProjectUseCase returns a new CreateProject use case.
func (c *Container) CreateProjectUseCase() *usecase.CreateProject {
	return usecase.NewCreateProject(c.Project, c.AppConfig, c.Clock, c.FileLogger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Project)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Project, c.AppConfig, c.Clock, c.FileLogger)
}

// RemoveTaskUseCase returns a new RemoveTask use case.
func (c *Container) RemoveTaskUseCase() *usecase.RemoveTask {
	return usecase.NewRemoveTask(c.Project, c.FileLogger)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Project, c.AppConfig, c.FileLogger)
}

// ResolveScheduleUseCase returns a new ResolveSchedule use case.
func (c *Container) ResolveScheduleUseCase() *usecase.ResolveSchedule {
	return usecase.NewResolveSchedule(c.Project, c.FileLogger)
}

// ShowChartUseCase returns a new ShowChart use case.
func (c *Container) ShowChartUseCase() *usecase.ShowChart {
	return usecase.NewShowChart(c.Project, c.AppConfig, c.Clock)
}

// ExportTableUseCase returns a new ExportTable use case.
func (c *Container) ExportTableUseCase() *usecase.ExportTable {
	return usecase.NewExportTable(c.Project, c.Codec)
}

// ImportTableUseCase returns a new ImportTable use case.
func (c *Container) ImportTableUseCase() *usecase.ImportTable {
	return usecase.NewImportTable(c.Project, c.Codec, c.AppConfig, c.FileLogger)
}

// SyncCalendarUseCase returns a new SyncCalendar use case.
func (c *Container) SyncCalendarUseCase() *usecase.SyncCalendar {
	return usecase.NewSyncCalendar(c.Project, c.Calendar, c.AppConfig, c.FileLogger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
