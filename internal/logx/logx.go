// Package logx provides structured logging for scte using zap.
package logx

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with action-engine-specific helpers.
type Logger struct {
	*zap.Logger

	mu       sync.Mutex
	lastWarn map[string]time.Time
}

var (
	// L is the global logger instance.
	L    *Logger
	once sync.Once
)

// Init initializes the global logger. Safe to call multiple times; only the
// first call takes effect.
func Init(debug bool) {
	once.Do(func() {
		L = New(debug)
	})
}

// New creates a new Logger.
func New(debug bool) *Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &Logger{Logger: logger, lastWarn: make(map[string]time.Time)}
}

// NewNop creates a no-op logger for tests.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop(), lastWarn: make(map[string]time.Time)}
}

// RateLimitedWarn emits a Warn log for key at most once per interval. Used by
// dispatch-table default handlers (an action invoked through a slot it never
// filled in) so a stuck binding does not flood the log every tick.
func (l *Logger) RateLimitedWarn(key string, interval time.Duration, msg string, fields ...zap.Field) {
	l.mu.Lock()
	last, ok := l.lastWarn[key]
	now := time.Now()
	if ok && now.Sub(last) < interval {
		l.mu.Unlock()
		return
	}
	l.lastWarn[key] = now
	l.mu.Unlock()
	l.Warn(msg, fields...)
}

// WithComponent returns a logger with the component field preset.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:   l.Logger.With(zap.String("component", component)),
		lastWarn: l.lastWarn,
	}
}

// Keyword creates a keyword field, used whenever a log line concerns a
// specific action kind.
func Keyword(kw string) zap.Field {
	return zap.String("keyword", kw)
}
