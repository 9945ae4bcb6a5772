package kdtree

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kdtree-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogBuild logs a bulk build.
func (l *Logger) LogBuild(count, height int, err error) {
	if err != nil {
		l.Error("build failed",
			"count", count,
			"error", err,
		)
	} else {
		l.Debug("build completed",
			"count", count,
			"height", height,
		)
	}
}

// LogInsert logs an insert operation. inserted is false for duplicates.
func (l *Logger) LogInsert(point any, inserted bool, err error) {
	if err != nil {
		l.Error("insert failed",
			"point", point,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"point", point,
			"inserted", inserted,
		)
	}
}

// LogDelete logs a delete operation. deleted is false for missing points.
func (l *Logger) LogDelete(point any, deleted bool, err error) {
	if err != nil {
		l.Error("delete failed",
			"point", point,
			"error", err,
		)
	} else {
		l.Debug("delete completed",
			"point", point,
			"deleted", deleted,
		)
	}
}

// LogSearch logs a nearest-neighbor search.
func (l *Logger) LogSearch(n, resultsFound int, err error) {
	if err != nil {
		l.Error("search failed",
			"n", n,
			"error", err,
		)
	} else {
		l.Debug("search completed",
			"n", n,
			"results", resultsFound,
		)
	}
}
