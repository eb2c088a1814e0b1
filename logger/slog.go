package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/phsym/console-slog"
)

// SlogLogger is a Logger implementation backed by the standard library's log/slog package.
type SlogLogger struct {
	mu     sync.Mutex
	logger *slog.Logger
	level  *slog.LevelVar
	output io.Writer
}

// NewSlog creates a slog-backed Logger instance.
//
// When the ENV environment variable is set to "development" it renders human-readable
// console output via console-slog; otherwise it emits JSON records.
func NewSlog(level Level, addSource bool) Logger {
	return newSlog(level, addSource)
}

func newSlog(level Level, addSource bool) *SlogLogger {
	inst := &SlogLogger{
		output: os.Stderr,
	}

	inst.level = &slog.LevelVar{}
	inst.level.Set(toSlogLevel(level))

	var handler slog.Handler
	if os.Getenv("ENV") == "development" {
		opts := &console.HandlerOptions{
			AddSource: true,
			Level:     inst.level,
		}
		handler = console.NewHandler(inst.output, opts)
	} else {
		opts := &slog.HandlerOptions{
			AddSource: addSource,
			Level:     inst.level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					a.Key = "ts"
				}
				return a
			},
		}
		handler = slog.NewJSONHandler(inst.output, opts)
	}
	inst.logger = slog.New(handler)

	return inst
}

func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.log(context.Background(), slog.LevelDebug, msg, keysAndValues...)
}

func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.log(context.Background(), slog.LevelInfo, msg, keysAndValues...)
}

func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.log(context.Background(), slog.LevelWarn, msg, keysAndValues...)
}

func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.log(context.Background(), slog.LevelError, msg, keysAndValues...)
}

func (l *SlogLogger) Fatal(msg string, keysAndValues ...any) {
	l.log(context.Background(), slog.LevelError, msg, keysAndValues...)
	os.Exit(1)
}

func (l *SlogLogger) With(keyValues ...any) Logger {
	return &SlogLogger{
		logger: l.logger.With(keyValues...),
		level:  l.level,
		output: l.output,
	}
}

func (l *SlogLogger) Level() Level {
	switch l.level.Level() {
	case slog.LevelDebug:
		return DebugLevel
	case slog.LevelInfo:
		return InfoLevel
	case slog.LevelWarn:
		return WarnLevel
	default:
		return ErrorLevel
	}
}

func (l *SlogLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level.Set(toSlogLevel(level))
}

// log is the low-level logging method for methods that take ...any.
// It must always be called directly by an exported logging method
// or function, because it uses a fixed call depth to obtain the pc.
func (l *SlogLogger) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if !l.logger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	// skip [runtime.Callers, this function, this function's caller]
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.logger.Handler().Handle(ctx, r)
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
