package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys.
const EnvPrefix = "ATLAS"

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// LoaderOption customises a Loader.
type LoaderOption func(*loader)

// WithConfigFile reads the given file instead of searching .atlas/.
// A missing explicit file is an error.
func WithConfigFile(path string) LoaderOption {
	return func(l *loader) {
		l.configFile = path
	}
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string, opts ...LoaderOption) Loader {
	l := &loader{
		rootDir: rootDir,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (ATLAS_*)
// 2. Config file (.atlas/config.yml or .atlas/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	// Configure viper
	v := viper.New()

	// Set up config file search
	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(l.rootDir, ".atlas"))
	}

	// Enable environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., ATLAS_DOCUMENT_PATH)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind environment variables to config keys
	v.BindEnv("paths.ignore_dirs")
	v.BindEnv("paths.ignore_files")
	v.BindEnv("document.path")
	v.BindEnv("document.start_marker")
	v.BindEnv("document.end_marker")
	v.BindEnv("log.level")
	v.BindEnv("log.format")

	// Set defaults in viper
	setDefaults(v)

	// Try to read config file
	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Some other error occurred while reading the config file
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate the configuration
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("paths.ignore_dirs", defaults.Paths.IgnoreDirs)
	v.SetDefault("paths.ignore_files", defaults.Paths.IgnoreFiles)

	v.SetDefault("document.path", defaults.Document.Path)
	v.SetDefault("document.start_marker", defaults.Document.StartMarker)
	v.SetDefault("document.end_marker", defaults.Document.EndMarker)

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
}

// DocumentPath returns the output document path, resolved against rootDir
// when relative.
func (c *Config) DocumentPath(rootDir string) string {
	if filepath.IsAbs(c.Document.Path) {
		return c.Document.Path
	}
	return filepath.Join(rootDir, c.Document.Path)
}
