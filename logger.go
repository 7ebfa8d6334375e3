package lazyvec

import (
	"context"
	"log/slog"
	"os"
)

// discardHandler discards all log records. It is equivalent to
// discardHandler{}, which is unavailable before Go 1.24.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Logger wraps slog.Logger with lazyvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, all output is discarded; a container should be silent
// unless the caller opts in.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = discardHandler{}
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(discardHandler{}),
	}
}

// WithIndex adds an index field to the logger (useful for tagging operations).
func (l *Logger) WithIndex(i int) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", i),
	}
}

// LogGrow logs an index-table growth event.
func (l *Logger) LogGrow(index, fromCap, toCap int) {
	l.Debug("index table grown",
		"index", index,
		"from_cap", fromCap,
		"to_cap", toCap,
	)
}
