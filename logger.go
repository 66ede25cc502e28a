package seqdb

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with seqdb-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler writing to stderr at Info is used.
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

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// LogRehashStart logs the allocation of a new active table.
func (l *Logger) LogRehashStart(fromCap, toCap, liveToMove int) {
	l.Info("rehash started",
		"from_capacity", fromCap,
		"to_capacity", toCap,
		"live_to_move", liveToMove,
	)
}

// LogRehashStep logs one migration batch.
func (l *Logger) LogRehashStep(phase Phase, moved, remaining int) {
	l.Debug("rehash step",
		"phase", phase.String(),
		"moved", moved,
		"remaining", remaining,
	)
}

// LogRehashDone logs the release of the retiring table.
func (l *Logger) LogRehashDone(capacity, live int) {
	l.Info("rehash completed",
		"capacity", capacity,
		"live", live,
	)
}
