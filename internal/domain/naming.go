package domain

import "path/filepath"

// File and directory names.
const (
	AppDirName     = ".gantt"
	ConfigFileName = "config.toml"
	AppName        = "gantt"
)

// ProjectDir returns the .gantt directory under root.
func ProjectDir(root string) string {
	return filepath.Join(root, AppDirName)
}

// GlobalConfigDir returns the global config directory under configHome
// (usually $XDG_CONFIG_HOME).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// ProjectStorePath returns the project file path for the given format.
func ProjectStorePath(appDir, format string) string {
	if format == "yaml" {
		return filepath.Join(appDir, "project.yaml")
	}
	return filepath.Join(appDir, "project.json")
}

// TaskLogPath returns the path to the task log file.
func TaskLogPath(appDir, taskID string) string {
	return filepath.Join(appDir, "logs", taskID+".log")
}

// GlobalLogPath returns the path to the global log file.
func GlobalLogPath(appDir string) string {
	return filepath.Join(appDir, "logs", "gantt.log")
}
