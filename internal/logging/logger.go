// Package logging wraps log/slog with the field names used across waypath.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with pathfinding-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler writing to stderr at info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithSession tags every record with a search session id.
func (l *Logger) WithSession(id uint64) *Logger {
	return &Logger{Logger: l.Logger.With("session", id)}
}

// WithQuery tags every record with the query index inside a batch.
func (l *Logger) WithQuery(index int) *Logger {
	return &Logger{Logger: l.Logger.With("query", index)}
}

// LogSearch logs the outcome of one search. Partial paths are reported at
// info level since the caller asked for a fallback route.
func (l *Logger) LogSearch(ctx context.Context, expanded int, cost float64, partial bool, err error) {
	switch {
	case err != nil:
		l.DebugContext(ctx, "search failed",
			"expanded", expanded,
			"error", err,
		)
	case partial:
		l.InfoContext(ctx, "search returned partial path",
			"expanded", expanded,
			"cost", cost,
		)
	default:
		l.DebugContext(ctx, "search completed",
			"expanded", expanded,
			"cost", cost,
		)
	}
}

// LogBatch logs the outcome of a batch of searches.
func (l *Logger) LogBatch(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.InfoContext(ctx, "batch completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
		return
	}
	l.DebugContext(ctx, "batch completed", "count", count)
}
