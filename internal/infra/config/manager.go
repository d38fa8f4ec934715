package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/gantt/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	appDir        string // Path to the project's .gantt directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/gantt)
}

// NewManager creates a new Manager.
func NewManager(appDir string) *Manager {
	return &Manager{
		appDir:        appDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(appDir, globalConfDir string) *Manager {
	return &Manager{
		appDir:        appDir,
		globalConfDir: globalConfDir,
	}
}

// GetProjectConfigInfo returns information about the project config file.
func (m *Manager) GetProjectConfigInfo() domain.ConfigInfo {
	return getConfigInfo(filepath.Join(m.appDir, domain.ConfigFileName))
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{Path: path}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitProjectConfig creates a project config file with the default template.
func (m *Manager) InitProjectConfig() error {
	return initConfig(m.appDir)
}

// InitGlobalConfig creates a global config file with the default template.
func (m *Manager) InitGlobalConfig() error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}
	return initConfig(m.globalConfDir)
}

// initConfig writes the template into dir unless a config already exists.
func initConfig(dir string) error {
	path := filepath.Join(dir, domain.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(domain.ConfigTemplate()), 0o600)
}
