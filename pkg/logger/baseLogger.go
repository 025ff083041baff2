package logger

import (
	"go.uber.org/zap"
)

// BaseLogger adapts a zap logger to the Logger interface.
type BaseLogger struct {
	sugar *zap.SugaredLogger
}

func NewLogger(log *zap.Logger, prefix string) *BaseLogger {
	if log == nil {
		log = zap.NewNop()
	}
	if prefix != "" {
		log = log.Named(prefix)
	}
	return &BaseLogger{sugar: log.Sugar()}
}

func (l *BaseLogger) Log(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *BaseLogger) WithPrefix(extraPrefix string) *BaseLogger {
	return &BaseLogger{sugar: l.sugar.Named(extraPrefix)}
}
