// Package log provides structured logging for classifier operations.
//
// The package defines a minimal, slog-compatible Logger interface backed by
// zerolog. Loggers carry contextual fields through With, and the predefined
// attribute keys in attributes.go keep field names consistent across the
// library so that training runs can be filtered and analyzed from logs.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("classify").With(
//	    log.ModelNameKey, "SGD",
//	)
//	logger.Info("training finished",
//	    log.IterationKey, 12,
//	    log.LossKey, 0.031,
//	)
package log

import "context"

// Logger is a structured logging interface compatible with Go's log/slog
// field conventions: variadic key-value pairs following the message.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If a field value is an error, its stack trace (when present) is
	// attached to the event.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated on
	// every subsequent event.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip expensive field construction for suppressed levels.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level. Values are compatible with slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
