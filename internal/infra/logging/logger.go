// Package logging provides file-based logging for the workasana client.
// Logs go to a file under the config directory rather than the terminal so
// they never interleave with CLI output or the TUI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// LogFileName is the name of the log file inside the config directory.
const LogFileName = "workasana.log"

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
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

// New creates a slog.Logger writing to the log file in confDir. If the file
// cannot be opened (or confDir is empty) logging is disabled rather than
// failing the command.
func New(confDir string, level slog.Level) *slog.Logger {
	w, err := openLogFile(confDir)
	if err != nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func openLogFile(confDir string) (io.Writer, error) {
	if confDir == "" {
		return nil, fmt.Errorf("no config directory")
	}
	if err := os.MkdirAll(confDir, 0o700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}
	path := filepath.Join(confDir, LogFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
