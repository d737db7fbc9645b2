// Package logging provides the structured logger used by every command.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger with the run identifier attached.
type Logger struct {
	*slog.Logger
	RunID string
}

// New creates a logger writing to w with the specified level and format
// ("json" or anything else for text). Every record carries a run_id
// attribute unique to this logger.
func New(level, format string, w io.Writer) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	runID := uuid.NewString()
	return &Logger{
		Logger: slog.New(handler).With("run_id", runID),
		RunID:  runID,
	}
}

// WithCommand returns a logger tagged with the running command name.
func (l *Logger) WithCommand(name string) *Logger {
	return &Logger{
		Logger: l.With("command", name),
		RunID:  l.RunID,
	}
}

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return New("error", "text", io.Discard)
}
