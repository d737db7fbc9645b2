package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyDocumentPath indicates a missing output document path
	ErrEmptyDocumentPath = errors.New("empty document path")

	// ErrInvalidMarker indicates an empty, multi-line or duplicated sentinel marker
	ErrInvalidMarker = errors.New("invalid marker")

	// ErrInvalidLogLevel indicates an unsupported log level
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidLogFormat indicates an unsupported log format
	ErrInvalidLogFormat = errors.New("invalid log format")

	// ErrInvalidIgnoreEntry indicates an ignore entry that can never match a name
	ErrInvalidIgnoreEntry = errors.New("invalid ignore entry")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validatePaths(&cfg.Paths); err != nil {
		errs = append(errs, err)
	}

	if err := validateDocument(&cfg.Document); err != nil {
		errs = append(errs, err)
	}

	if err := validateLog(&cfg.Log); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validatePaths(cfg *PathsConfig) error {
	var errs []error

	// Entries are matched against a single name, never a path
	for _, entry := range append(append([]string{}, cfg.IgnoreDirs...), cfg.IgnoreFiles...) {
		if strings.Contains(entry, "/") {
			errs = append(errs, fmt.Errorf("%w: %q must be a name, not a path", ErrInvalidIgnoreEntry, entry))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateDocument(cfg *DocumentConfig) error {
	var errs []error

	if strings.TrimSpace(cfg.Path) == "" {
		errs = append(errs, fmt.Errorf("%w: document.path is required", ErrEmptyDocumentPath))
	}

	markers := []struct{ name, value string }{
		{"start_marker", cfg.StartMarker},
		{"end_marker", cfg.EndMarker},
	}
	for _, m := range markers {
		name, marker := m.name, m.value
		if strings.TrimSpace(marker) == "" {
			errs = append(errs, fmt.Errorf("%w: %s is required", ErrInvalidMarker, name))
		} else if strings.ContainsAny(marker, "\r\n") {
			errs = append(errs, fmt.Errorf("%w: %s must be a single line", ErrInvalidMarker, name))
		} else if marker != strings.TrimSpace(marker) {
			errs = append(errs, fmt.Errorf("%w: %s must not have surrounding whitespace", ErrInvalidMarker, name))
		}
	}

	if cfg.StartMarker != "" && cfg.StartMarker == cfg.EndMarker {
		errs = append(errs, fmt.Errorf("%w: start_marker and end_marker must differ", ErrInvalidMarker))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateLog(cfg *LogConfig) error {
	var errs []error

	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: must be 'debug', 'info', 'warn' or 'error', got '%s'", ErrInvalidLogLevel, cfg.Level))
	}

	switch strings.ToLower(cfg.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: must be 'text' or 'json', got '%s'", ErrInvalidLogFormat, cfg.Format))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	// Each error stays reachable through errors.Is
	args := make([]any, len(errs))
	for i, err := range errs {
		args[i] = err
	}

	return fmt.Errorf("validation failed:"+strings.Repeat("\n  - %w", len(errs)), args...)
}
