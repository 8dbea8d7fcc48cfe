// Package logging configures the default structured logger. Records go to a
// rotated file since the terminal is owned by the timer interface.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// Setup installs a JSON slog handler writing to the file at path and returns
// the writer so the caller can close it on exit.
func Setup(path string, debug bool) io.WriteCloser {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	slog.SetDefault(New(w, debug))

	return w
}

// New returns a logger writing JSON records to w.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
