// Package logging provides structured logging configuration using log/slog.
//
// Each CLI invocation gets a run-scoped logger carrying a run_id, so log
// entries from one run can be correlated when output from several runs is
// collected in the same place.
package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Log entries go to stderr: stdout is reserved for table output so it
// stays pipeable.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewRun returns a logger for one pipeline invocation, enriched with a
// fresh run_id and the tool name.
//
// Usage:
//
//	logger := logging.NewRun("convert")
//	logger.Info("input file opened", "path", path)
func NewRun(tool string) *slog.Logger {
	return slog.Default().With("run_id", uuid.NewString(), "tool", tool)
}
