package bapp

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	for _, lvl := range []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel} {
		t.Run(lvl.String(), func(t *testing.T) {
			logger, err := NewLogger(BaseEnvironment{LogLevel: lvl})
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(lvl))

			if lvl > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(lvl-1))
			}
		})
	}
}

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewBHTTPDLogger(zap.New(core))

	l.LogUnhandledHandlerError(errors.New("boom"))
	l.LogSourceError("/missing.css", errors.New("not found"))
	l.LogWriteError(errors.New("broken pipe"))

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "bhttpd", entries[0].LoggerName)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])

	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, "/missing.css", entries[1].ContextMap()["path"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "error while writing response", entries[2].Message)
}

func TestZapLoggerSourceErrorsHiddenAtInfo(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	NewBHTTPDLogger(zap.New(core)).LogSourceError("/x", errors.New("not found"))
	assert.Equal(t, 0, logs.Len())
}
