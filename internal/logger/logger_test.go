package logger

import (
	"testing"

	"github.com/flexprice/shipdiscount/internal/config"
	"github.com/flexprice/shipdiscount/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelFromConfig(t *testing.T) {
	tests := []struct {
		level types.LogLevel
		want  zapcore.Level
	}{
		{level: types.LogLevelTrace, want: TraceLevel},
		{level: types.LogLevelDebug, want: zapcore.DebugLevel},
		{level: "INFO", want: zapcore.InfoLevel},
		{level: types.LogLevelWarn, want: zapcore.WarnLevel},
		{level: types.LogLevelError, want: zapcore.ErrorLevel},
		{level: "", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			cfg := &config.Configuration{Logging: config.LoggingConfig{Level: tt.level}}
			assert.Equal(t, tt.want, levelFromConfig(cfg))
		})
	}
	assert.Equal(t, zapcore.InfoLevel, levelFromConfig(nil))
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(config.GetDefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Named("test").Infow("logger ready")
}

func TestTracew(t *testing.T) {
	core, logs := observer.New(TraceLevel)
	log := NewWithCore(core).Named("rules")

	log.Tracew("rule not applied", "rule", "EveryNShipmentIsFreeXTimesInAMonth(n=3)")
	log.Debugw("ignored by level filter? no")

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, TraceLevel, entry.Level)
	assert.Equal(t, "rules", entry.LoggerName)
	assert.Equal(t, "EveryNShipmentIsFreeXTimesInAMonth(n=3)", entry.ContextMap()["rule"])
}
