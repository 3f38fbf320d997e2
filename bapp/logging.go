package bapp

import (
	"github.com/advdv/bhttpd"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a JSON zap logger at the level from the environment.
func NewLogger(env Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogUnhandledHandlerError(err error) {
	l.Logger.Error("unhandled handler error", zap.Error(err))
}

// LogSourceError is logged at debug: a missing file is the normal way requests reach the router.
func (l zapLogger) LogSourceError(path string, err error) {
	l.Logger.Debug("file not served", zap.String("path", path), zap.Error(err))
}

func (l zapLogger) LogWriteError(err error) {
	l.Logger.Error("error while writing response", zap.Error(err))
}

// NewBHTTPDLogger adapts a zap logger to the dispatch core's [bhttpd.Logger].
func NewBHTTPDLogger(l *zap.Logger) bhttpd.Logger {
	return zapLogger{l.Named("bhttpd")}
}
