package zaplogging

import (
	"github.com/core-tools/hsu-procdesc-go/pkg/errors"
	"github.com/core-tools/hsu-procdesc-go/pkg/logging"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger adapts a zap sugared logger to logging.Logger
type Logger struct {
	sugar *zap.SugaredLogger
}

var _ logging.Logger = (*Logger)(nil)

// NewLogger builds a console zap logger writing to stderr at the named level
// ("debug", "info", "warn" or "error").
func NewLogger(level string) (*Logger, error) {
	parsed, err := logging.ParseLevel(level)
	if err != nil {
		return nil, errors.NewValidationError("invalid log level", err).WithContext("log_level", level)
	}

	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.Level = zap.NewAtomicLevelAt(toZapLevel(parsed))
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.DisableStacktrace = true
	config.Sampling = nil
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, errors.NewInternalError("failed to build zap logger", err)
	}

	return NewFromZap(zapLogger), nil
}

// NewFromZap wraps an existing zap logger
func NewFromZap(zapLogger *zap.Logger) *Logger {
	return &Logger{sugar: zapLogger.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// Named returns a child logger whose entries carry name as the logger name
func (l *Logger) Named(name string) *Logger {
	return &Logger{sugar: l.sugar.Named(name)}
}

func (l *Logger) LogLevelf(level int, format string, args ...interface{}) {
	switch level {
	case logging.DebugLevel:
		l.sugar.Debugf(format, args...)
	case logging.InfoLevel:
		l.sugar.Infof(format, args...)
	case logging.WarnLevel:
		l.sugar.Warnf(format, args...)
	default:
		l.sugar.Errorf(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

func toZapLevel(level int) zapcore.Level {
	switch level {
	case logging.DebugLevel:
		return zapcore.DebugLevel
	case logging.InfoLevel:
		return zapcore.InfoLevel
	case logging.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
