// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns the default log file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".limitwarden", "limitwarden.log")
}

// Setup configures the global slog logger with a text handler writing the
// same line to stderr and to the log file at path (DefaultPath when empty).
// If the file cannot be opened, logging degrades to stderr only.
func Setup(level, path string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	var w io.Writer = os.Stderr
	var openErr error
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			openErr = err
		} else if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600); err != nil {
			openErr = err
		} else {
			w = io.MultiWriter(os.Stderr, f)
		}
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})
	slog.SetDefault(slog.New(handler))

	if openErr != nil {
		slog.Warn("log file unavailable, logging to stderr only", "path", path, "error", openErr)
	}
}
