package log

import (
	"context"
	"os"
	"sync"

	cerrors "github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// zeroLogger adapts a zerolog.Logger to the Logger interface.
type zeroLogger struct {
	zl zerolog.Logger
}

func newZeroLogger(zl zerolog.Logger) *zeroLogger {
	return &zeroLogger{zl: zl}
}

func (l *zeroLogger) Debug(msg string, fields ...any) {
	l.emit(l.zl.Debug(), msg, fields)
}

func (l *zeroLogger) Info(msg string, fields ...any) {
	l.emit(l.zl.Info(), msg, fields)
}

func (l *zeroLogger) Warn(msg string, fields ...any) {
	l.emit(l.zl.Warn(), msg, fields)
}

func (l *zeroLogger) Error(msg string, fields ...any) {
	ev := l.zl.Error()
	// A leading bare error is attached with its stack trace, matching the
	// logger.Error("msg", err, ...) call convention.
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			ev = withError(ev, "error", err)
			fields = fields[1:]
		}
	}
	l.emit(ev, msg, fields)
}

func (l *zeroLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return newZeroLogger(ctx.Logger())
}

func (l *zeroLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= l.zl.GetLevel() &&
		toZerologLevel(level) >= zerolog.GlobalLevel()
}

func (l *zeroLogger) emit(ev *zerolog.Event, msg string, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		if err, isErr := fields[i+1].(error); isErr {
			ev = withError(ev, key, err)
			continue
		}
		ev = ev.Interface(key, fields[i+1])
	}
	ev.Msg(msg)
}

// withError attaches an error and, when cockroachdb/errors recorded one, its
// stack trace to the event.
func withError(ev *zerolog.Event, key string, err error) *zerolog.Event {
	ev = ev.AnErr(key, err)
	if st := extractStacktrace(err); st != "" {
		ev = ev.Str("error.stacktrace", st)
	}
	return ev
}

func extractStacktrace(err error) string {
	safeDetails := cerrors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

var (
	loggerMutex   sync.RWMutex
	defaultLogger Logger = newZeroLogger(
		zerolog.New(os.Stderr).With().Timestamp().Logger(),
	)
)

// GetLogger returns the default logger instance.
func GetLogger() Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	return defaultLogger
}

// GetLoggerWithName returns a logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With(ComponentKey, name)
}

// SetLogger replaces the default logger. Intended for tests and for
// applications that route library logs into their own logger.
func SetLogger(logger Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	defaultLogger = logger
}

// SetLevel sets the minimum level emitted by zerolog-backed loggers.
func SetLevel(level Level) {
	zerolog.SetGlobalLevel(toZerologLevel(level))
}
