package logger

import (
	"fmt"

	"resource-directory/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.Logger
}

// New creates a zap logger configured by environment. LOG_LEVEL overrides the
// environment's default level; an unparsable level keeps the default.
func New(cfg *config.Config) *Logger {
	if cfg.Environment == "test" {
		return &Logger{zap.NewNop()}
	}

	zapCfg := buildConfig(cfg)

	l, err := zapCfg.Build()
	if err != nil {
		panic(fmt.Sprintf("build logger: %v", err))
	}

	return &Logger{l.Named("resource-directory")}
}

func buildConfig(cfg *config.Config) zap.Config {
	var zapCfg zap.Config

	if cfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if cfg.LogLevel != "" {
		if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
			zapCfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	return zapCfg
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() {
	_ = l.Logger.Sync() // stderr sync fails on some terminals
}
