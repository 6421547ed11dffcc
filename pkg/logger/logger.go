package logger

import (
	"banter/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a sugared zap logger. The zero value is a no-op logger,
// so tests can pass logger.Logger{} without wiring anything.
type Logger struct {
	sugar *zap.SugaredLogger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	var zcfg zap.Config
	if cfg != nil && cfg.LoggerMode.Prod {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	if cfg != nil && cfg.LoggerMode.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.LoggerMode.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	z, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: z.Sugar()}, nil
}

func (l *Logger) s() *zap.SugaredLogger {
	if l == nil || l.sugar == nil {
		return zap.NewNop().Sugar()
	}
	return l.sugar
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.s().Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.s().Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.s().Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.s().Errorw(msg, keysAndValues...)
}

func (l *Logger) Debugf(template string, args ...interface{}) {
	l.s().Debugf(template, args...)
}

func (l *Logger) Infof(template string, args ...interface{}) {
	l.s().Infof(template, args...)
}

func (l *Logger) Warnf(template string, args ...interface{}) {
	l.s().Warnf(template, args...)
}

func (l *Logger) Errorf(template string, args ...interface{}) {
	l.s().Errorf(template, args...)
}

func (l *Logger) Sync() error {
	if l == nil || l.sugar == nil {
		return nil
	}
	return l.sugar.Sync()
}
