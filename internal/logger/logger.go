// File: internal/logger/logger.go
package logger

import (
	"io"
	"log/slog"
)

// Builds the application logger. Output goes to w (stderr in the CLI) so that stdout only carries tables.
func NewLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)
	return logger
}
