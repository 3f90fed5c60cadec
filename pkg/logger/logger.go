// Package logger wraps charmbracelet/log with a process-wide default
// logger and key-value helpers used across all pagebot commands.
package logger

import (
	"os"

	charm "github.com/charmbracelet/log"
)

// Logger is a thin wrapper around a charmbracelet logger.
type Logger struct {
	*charm.Logger
}

// NewLogger wraps a charm logger.
func NewLogger(l *charm.Logger) *Logger {
	return &Logger{Logger: l}
}

// New creates a new Logger writing to stderr with default settings.
func New() *Logger {
	return NewLogger(charm.New(os.Stderr))
}

// ParseLevel parses a textual log level ("debug", "info", "warn",
// "error"). An empty string means Info.
func ParseLevel(level string) (charm.Level, error) {
	if level == "" {
		return charm.InfoLevel, nil
	}
	return charm.ParseLevel(level)
}

// SetLevel sets the level on the default logger.
func SetLevel(level charm.Level) {
	Default().SetLevel(level)
}
