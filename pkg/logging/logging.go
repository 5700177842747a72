// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where and how verbosely diagnostics are written.
type Options struct {
	Level string
	// Path writes JSON lines to a rotating file. Empty means Stderr.
	Path   string
	Stderr io.Writer
}

// Level maps a textual level onto slog, defaulting to warn.
func Level(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New builds a logger for o.
func New(o Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: Level(o.Level)}
	if o.Path != "" {
		_ = os.MkdirAll(filepath.Dir(o.Path), 0o755)
		writer := &lumberjack.Logger{
			Filename:   o.Path,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		return slog.New(slog.NewJSONHandler(writer, handlerOpts))
	}
	w := o.Stderr
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// Setup installs a logger for o as the slog default and returns it.
func Setup(o Options) *slog.Logger {
	l := New(o)
	slog.SetDefault(l)
	return l
}
