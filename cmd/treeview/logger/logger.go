// Package logger writes the viewer's debug log. The TUI owns the
// terminal, so log output goes to a file instead of stderr.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// L is the process-wide logger. It discards everything until Init is
// called with Enabled set.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

var logPath string

// Options configures Init.
type Options struct {
	Enabled bool       // when false all output is discarded
	Path    string     // log file, default ~/.treeview/debug.log
	Level   slog.Level // minimum level, default LevelInfo
}

// Init points L at the configured log file. The viewer is a single
// interactive session, so each run truncates the previous log rather
// than accumulating dated files. Call before any logging.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		logPath = ""
		return nil
	}

	path := opts.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".treeview", "debug.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	L = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	logPath = path
	return nil
}

// Path returns the active log file, or "" when logging is disabled.
func Path() string { return logPath }

// Debug logs at debug level with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at info level with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at warn level with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at error level with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
