package domain

import (
	_ "embed"
)

//go:embed config_template.toml
var configTemplateContent string

// ConfigTemplate returns the commented template written by 'gantt config init'.
func ConfigTemplate() string {
	return configTemplateContent
}

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Palette      Palette        `toml:"palette"`
	Complexities []Complexity   `toml:"complexity"`
	Warnings     []string       `toml:"-"`
	Project      ProjectConfig  `toml:"project"`
	Calendar     CalendarConfig `toml:"calendar"`
	Log          LogConfig      `toml:"log"`
}

// ProjectConfig holds task defaults from the [project] section.
type ProjectConfig struct {
	DefaultColour   string `toml:"default_colour,omitempty"`   // Palette key for new tasks
	StoreFormat     string `toml:"store_format,omitempty"`     // "json" (default) or "yaml"
	DefaultDuration int    `toml:"default_duration,omitempty"` // Days
	StartOffset     int    `toml:"start_offset,omitempty"`     // Days after today
}

// CalendarConfig holds Google Calendar settings from the [calendar] section.
type CalendarConfig struct {
	CalendarID      string `toml:"calendar_id,omitempty"`      // Target calendar
	CredentialsFile string `toml:"credentials_file,omitempty"` // OAuth client secrets (credentials.json)
	TokenFile       string `toml:"token_file,omitempty"`       // Cached OAuth token
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Default configuration values.
const (
	DefaultLogLevel    = "info"
	DefaultStoreFormat = "json"
)

// NewDefaultConfig returns the built-in configuration.
func NewDefaultConfig() *Config {
	d := DefaultProjectDefaults()
	return &Config{
		Palette:      DefaultPalette(),
		Complexities: DefaultComplexities(),
		Project: ProjectConfig{
			DefaultDuration: d.Duration,
			StartOffset:     d.StartOffset,
			DefaultColour:   d.Colour,
			StoreFormat:     DefaultStoreFormat,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// ProjectDefaults returns the task defaults described by the config.
func (c *Config) ProjectDefaults() ProjectDefaults {
	return ProjectDefaults{
		Duration:    c.Project.DefaultDuration,
		StartOffset: c.Project.StartOffset,
		Colour:      c.Project.DefaultColour,
	}
}
