// Package logging holds the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is safe to use before Init; it starts out as slog.Default().
var Logger = slog.Default()

// Init points Logger at stderr, at debug level with source locations when
// debug is set, and makes it the slog default so log.* goes through it too.
func Init(debug bool) {
	InitTo(os.Stderr, debug)
}

func InitTo(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	Logger = slog.New(h)
	slog.SetDefault(Logger)
}
