package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"resource-directory/internal/config"
)

func TestBuildConfigLevels(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want zapcore.Level
	}{
		{"development default", config.Config{Environment: "development"}, zapcore.DebugLevel},
		{"production default", config.Config{Environment: "production"}, zapcore.InfoLevel},
		{"override", config.Config{Environment: "production", LogLevel: "error"}, zapcore.ErrorLevel},
		{"bad override ignored", config.Config{Environment: "production", LogLevel: "loud"}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildConfig(&tt.cfg).Level.Level())
		})
	}
}

func TestProductionUsesJSON(t *testing.T) {
	assert.Equal(t, "json", buildConfig(&config.Config{Environment: "production"}).Encoding)
	assert.Equal(t, "console", buildConfig(&config.Config{Environment: "development"}).Encoding)
}

func TestNewTestEnvironmentIsQuiet(t *testing.T) {
	l := New(&config.Config{Environment: "test"})
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))

	dev := New(&config.Config{Environment: "development", LogLevel: "warn"})
	assert.False(t, dev.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, dev.Core().Enabled(zapcore.WarnLevel))
}
