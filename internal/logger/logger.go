// Package logger provides structured logging using log/slog.
package logger

import (
	"io"
	"log/slog"

	"github.com/zapponejosh/swedish-holidays/internal/config"
)

// Setup initializes the global logger based on configuration and returns it.
// Logs go to w so that command output on stdout stays clean.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	level := parseLevel(cfg.Log.Level)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug, // Add source file info in debug mode
	}

	// Choose handler based on format
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
