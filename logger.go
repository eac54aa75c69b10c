package spacesearch

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with search-specific helpers.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithStrategy adds the strategy field to the logger.
func (l *Logger) WithStrategy(st Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", st.String()),
	}
}

// LogSeed logs the start of a search.
func (l *Logger) LogSeed() {
	l.Debug("search seeded")
}

// LogSolution logs a yielded solution.
func (l *Logger) LogSolution(depth int, st Stats) {
	l.Debug("solution found",
		"depth", depth,
		"solutions", st.Solutions,
		"expanded", st.Expanded,
		"frontier", st.FrontierLen,
	)
}

// LogExhausted logs the end of a search.
func (l *Logger) LogExhausted(st Stats) {
	if st.Solutions == 0 {
		l.Debug("search exhausted without solution",
			"expanded", st.Expanded,
			"duplicates", st.Duplicates,
		)
		return
	}
	l.Debug("search exhausted",
		"solutions", st.Solutions,
		"expanded", st.Expanded,
		"duplicates", st.Duplicates,
	)
}
