// Package logutil constructs the slog loggers used across docmark.
package logutil

import (
	"io"
	"log/slog"
)

// New creates a logger writing text records to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewDiscard creates a logger that drops everything. Useful for tests and
// for components that were given no logger.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LevelFromVerbosity maps CLI verbosity flags to a level:
// quiet suppresses all output, 0 is warn, 1 is info, 2 and above is debug.
func LevelFromVerbosity(verbosity int, quiet bool) slog.Level {
	if quiet {
		return slog.Level(100)
	}
	switch verbosity {
	case 0:
		return slog.LevelWarn
	case 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
