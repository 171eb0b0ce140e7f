package vector

import (
	"errors"
	"log/slog"
	"os"
)

// noopLogger is shared by every vector created without WithLogger.
var noopLogger = NoopLogger()

// Logger wraps slog.Logger with vector-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithName adds a name field to the logger (useful for telling vectors apart).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("vector", name),
	}
}

// WithElementType adds the element type name to the logger.
func (l *Logger) WithElementType(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("element_type", name),
	}
}

// LogReallocation logs the adoption of a replacement block.
func (l *Logger) LogReallocation(op string, oldCap, newCap, length int, strategy Strategy) {
	l.Debug("block reallocated",
		"op", op,
		"old_capacity", oldCap,
		"new_capacity", newCap,
		"length", length,
		"strategy", strategy.String(),
	)
}

// LogRollback logs an operation that undid its partial work.
func (l *Logger) LogRollback(op string, length, capacity int, err error) {
	if errors.Is(err, ErrContentsLost) {
		l.Error("rollback incomplete, contents destroyed",
			"op", op,
			"error", err,
		)
		return
	}
	l.Warn("operation rolled back",
		"op", op,
		"length", length,
		"capacity", capacity,
		"error", err,
	)
}
