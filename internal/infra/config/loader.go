// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/gantt/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	appDir        string // Path to the project's .gantt directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/gantt)
}

// NewLoader creates a new Loader.
func NewLoader(appDir string) *Loader {
	return &Loader{
		appDir:        appDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(appDir, globalConfDir string) *Loader {
	return &Loader{
		appDir:        appDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (project + global).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	project, err := l.LoadProject()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global == nil && project == nil {
		return base, nil
	}

	// Merge: default <- global <- project (later takes precedence)
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}

	if len(base.Palette) > 0 && !base.Palette.Has(base.Project.DefaultColour) {
		base.Warnings = append(base.Warnings,
			fmt.Sprintf("default_colour %q is not in the palette", base.Project.DefaultColour))
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	return l.loadFile(filepath.Join(l.appDir, domain.ConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "project":
			m, ok := value.(map[string]any)
			if !ok {
				warnings = append(warnings, "[project] must be a table")
				continue
			}
			for k, v := range m {
				switch k {
				case "default_duration":
					if n, ok := toInt(v); ok {
						res.Project.DefaultDuration = n
					}
				case "start_offset":
					if n, ok := toInt(v); ok {
						res.Project.StartOffset = n
					}
				case "default_colour":
					if s, ok := v.(string); ok {
						res.Project.DefaultColour = s
					}
				case "store_format":
					if s, ok := v.(string); ok {
						if s != "json" && s != "yaml" {
							warnings = append(warnings, fmt.Sprintf("unsupported store_format in [project]: %s", s))
							continue
						}
						res.Project.StoreFormat = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [project]: %s", k))
				}
			}
		case "calendar":
			m, ok := value.(map[string]any)
			if !ok {
				continue
			}
			for k, v := range m {
				s, _ := v.(string)
				switch k {
				case "calendar_id":
					res.Calendar.CalendarID = s
				case "credentials_file":
					res.Calendar.CredentialsFile = s
				case "token_file":
					res.Calendar.TokenFile = s
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [calendar]: %s", k))
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.Log.Level = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		case "palette":
			for _, entry := range tables(value) {
				name, _ := entry["name"].(string)
				hex, _ := entry["hex"].(string)
				if name == "" || hex == "" {
					warnings = append(warnings, "[[palette]] entries need name and hex")
					continue
				}
				res.Palette = append(res.Palette, domain.Colour{Name: name, Hex: hex})
			}
		case "complexity":
			for _, entry := range tables(value) {
				label, _ := entry["label"].(string)
				count, ok := toInt(entry["task_count"])
				if label == "" || !ok || count < 0 {
					warnings = append(warnings, "[[complexity]] entries need label and a non-negative task_count")
					continue
				}
				res.Complexities = append(res.Complexities, domain.Complexity{Label: label, TaskCount: count})
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// tables returns the entries of a TOML array of tables.
func tables(v any) []map[string]any {
	switch arr := v.(type) {
	case []map[string]any:
		return arr
	case []any:
		out := make([]map[string]any, 0, len(arr))
		for _, item := range arr {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

// toInt converts TOML integers (decoded as int64) to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

// mergeConfigs merges two configs, with override taking precedence.
// Palette and complexity lists replace the base list when non-empty.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Palette:      base.Palette,
		Complexities: base.Complexities,
		Project:      base.Project,
		Calendar:     base.Calendar,
		Log:          base.Log,
		Warnings:     append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	if len(override.Palette) > 0 {
		result.Palette = override.Palette
	}
	if len(override.Complexities) > 0 {
		result.Complexities = override.Complexities
	}
	if override.Project.DefaultDuration != 0 {
		result.Project.DefaultDuration = override.Project.DefaultDuration
	}
	if override.Project.StartOffset != 0 {
		result.Project.StartOffset = override.Project.StartOffset
	}
	if override.Project.DefaultColour != "" {
		result.Project.DefaultColour = override.Project.DefaultColour
	}
	if override.Project.StoreFormat != "" {
		result.Project.StoreFormat = override.Project.StoreFormat
	}
	if override.Calendar.CalendarID != "" {
		result.Calendar.CalendarID = override.Calendar.CalendarID
	}
	if override.Calendar.CredentialsFile != "" {
		result.Calendar.CredentialsFile = override.Calendar.CredentialsFile
	}
	if override.Calendar.TokenFile != "" {
		result.Calendar.TokenFile = override.Calendar.TokenFile
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}
