// Package logger holds the process-wide structured logger. Diagnostics meant
// for the user are printed by the commands themselves; this logger carries
// debug traces and is silent below Info unless --verbose is set.
package logger

import (
	"io"
	"log/slog"
	"os"
)

var (
	Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	Debug  = Logger.Debug
)

// Configure replaces the process logger. Debug records are emitted only when
// verbose is set.
func Configure(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	Debug = Logger.Debug
}
