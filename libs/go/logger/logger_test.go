package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"nonsense", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestInitLoggerWithConfig(t *testing.T) {
	previous := Log
	t.Cleanup(func() { Log = previous })

	InitLoggerWithConfig(LoggerConfig{Level: "debug", Stage: "local", EnableColor: true})
	require.NotNil(t, Log)
	assert.True(t, Log.Core().Enabled(zapcore.DebugLevel))

	InitLoggerWithConfig(LoggerConfig{Level: "warn", Stage: "prod", EnableJSON: true})
	require.NotNil(t, Log)
	assert.False(t, Log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Log.Core().Enabled(zapcore.WarnLevel))
}

func TestForComponent(t *testing.T) {
	previous := Log
	t.Cleanup(func() { Log = previous })

	Log = nil
	assert.NotNil(t, ForComponent(ComponentGrant))

	InitLogger("test")
	assert.NotNil(t, ForComponent(ComponentGrant))
}
