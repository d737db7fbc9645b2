package config

import "github.com/mvp-joe/project-atlas/internal/document"

// Config represents the complete atlas configuration.
// It can be loaded from .atlas/config.yml with environment variable overrides.
type Config struct {
	Paths    PathsConfig    `yaml:"paths" mapstructure:"paths"`
	Document DocumentConfig `yaml:"document" mapstructure:"document"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// PathsConfig defines which directory entries a scan skips.
type PathsConfig struct {
	IgnoreDirs  []string `yaml:"ignore_dirs" mapstructure:"ignore_dirs"`   // directory names or glob patterns over names
	IgnoreFiles []string `yaml:"ignore_files" mapstructure:"ignore_files"` // file names or glob patterns over names
}

// DocumentConfig defines the output document and its generated region.
type DocumentConfig struct {
	Path        string `yaml:"path" mapstructure:"path"`                 // relative to the scanned root unless absolute
	StartMarker string `yaml:"start_marker" mapstructure:"start_marker"` // line opening the generated region
	EndMarker   string `yaml:"end_marker" mapstructure:"end_marker"`     // line closing the generated region
}

// LogConfig configures diagnostic output on stderr.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // "debug", "info", "warn" or "error"
	Format string `yaml:"format" mapstructure:"format"` // "text" or "json"
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			IgnoreDirs: []string{
				"node_modules",
				"__pycache__",
			},
			IgnoreFiles: []string{},
		},
		Document: DocumentConfig{
			Path:        document.DefaultTitle,
			StartMarker: document.StartMarker,
			EndMarker:   document.EndMarker,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Markers returns the configured sentinel lines.
func (c *Config) Markers() document.Markers {
	return document.Markers{Start: c.Document.StartMarker, End: c.Document.EndMarker}
}
