// Package obs provides the logging setup shared by both harvestcx
// front-ends. The logging subsystem uses Go's stdlib log/slog exclusively.
// All log output is directed to os.Stderr to keep os.Stdout clean for the
// context dump itself.
package obs

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetupLogging configures the global slog default logger with the given log
// level and format. format should be "json" for JSON output or anything
// else (including empty string) for human-readable text output.
//
// Safe to call multiple times; each call replaces the previous global
// logger configuration.
func SetupLogging(level slog.Level, format string) {
	SetupLoggingWithWriter(level, format, os.Stderr)
}

// SetupLoggingWithWriter is SetupLogging with an explicit writer, for tests
// that want to capture log output in a buffer instead of os.Stderr.
func SetupLoggingWithWriter(level slog.Level, format string, w io.Writer) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// ResolveLogLevel determines the slog.Level from CLI flags and environment.
// Priority (highest to lowest):
//  1. HARVESTCX_DEBUG=1 -> slog.LevelDebug
//  2. verbose -> slog.LevelDebug
//  3. quiet -> slog.LevelError
//  4. default -> slog.LevelInfo
func ResolveLogLevel(verbose, quiet bool) slog.Level {
	if os.Getenv("HARVESTCX_DEBUG") == "1" {
		return slog.LevelDebug
	}
	if verbose {
		return slog.LevelDebug
	}
	if quiet {
		return slog.LevelError
	}
	return slog.LevelInfo
}

// ResolveLogFormat reads HARVESTCX_LOG_FORMAT and returns "json" when set
// to that value (case-insensitive), else "text".
func ResolveLogFormat() string {
	if strings.EqualFold(os.Getenv("HARVESTCX_LOG_FORMAT"), "json") {
		return "json"
	}
	return "text"
}

// NewLogger returns a child logger derived from the global default logger
// with a "component" attribute, so output can be filtered by subsystem.
func NewLogger(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
