package bapp_test

import (
	"os"
	"testing"
	"time"

	"github.com/advdv/bhttpd/bapp"
	"github.com/advdv/bhttpd/bapp/bapptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type TestEnv struct {
	bapp.BaseEnvironment
	Greeting string `env:"GREETING" envDefault:"hello"`
}

// unsetenv removes the variables for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseEnvDefaults(t *testing.T) {
	bapptest.SetBaseEnv(t, 18090)
	unsetenv(t, "BHTTPD_LOG_LEVEL", "BHTTPD_OTEL_EXPORTER")

	e, err := bapp.ParseEnv[TestEnv]()()
	require.NoError(t, err)

	assert.Equal(t, 18090, e.Port)
	assert.Equal(t, "test", e.ServiceName)
	assert.Equal(t, "/health", e.HealthPath)
	assert.Equal(t, "/", e.StaticPrefix)
	assert.Equal(t, 30*time.Second, e.FetchTimeout)
	assert.Equal(t, zapcore.InfoLevel, e.LogLevel)
	assert.Equal(t, "stdout", e.OtelExporter)
	assert.False(t, e.LegacyRangeStatus)
	assert.Equal(t, "hello", e.Greeting)
}

func TestParseEnvOverrides(t *testing.T) {
	bapptest.SetBaseEnv(t, 18091).
		DebugURL("http://localhost:9000/debug").
		StaticPrefix("/static").
		FetchTimeout("2s").
		LegacyRangeStatus()

	e, err := bapp.ParseEnv[TestEnv]()()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/debug", e.DebugURL)
	assert.Equal(t, "/static", e.StaticPrefix)
	assert.Equal(t, 2*time.Second, e.FetchTimeout)
	assert.True(t, e.LegacyRangeStatus)
	assert.Equal(t, zapcore.ErrorLevel, e.LogLevel)
}

func TestParseEnvInvalid(t *testing.T) {
	for _, tt := range []struct {
		name  string
		setup func(t *testing.T)
		msg   string
	}{
		{"missing service name", func(t *testing.T) {
			bapptest.SetBaseEnv(t, 18092).ServiceName("")
		}, "ServiceName"},
		{"static dir and debug url", func(t *testing.T) {
			bapptest.SetBaseEnv(t, 18092).StaticDir(t.TempDir()).DebugURL("http://localhost:9000")
		}, "StaticDir"},
		{"relative debug url", func(t *testing.T) {
			bapptest.SetBaseEnv(t, 18092).DebugURL("not a url")
		}, "DebugURL"},
		{"zero fetch timeout", func(t *testing.T) {
			bapptest.SetBaseEnv(t, 18092).FetchTimeout("0s")
		}, "FetchTimeout"},
		{"unknown exporter", func(t *testing.T) {
			bapptest.SetBaseEnv(t, 18092)
			t.Setenv("BHTTPD_OTEL_EXPORTER", "xrayudp")
		}, "OtelExporter"},
		{"health path without slash", func(t *testing.T) {
			bapptest.SetBaseEnv(t, 18092).HealthPath("health")
		}, "HealthPath"},
		{"port out of range", func(t *testing.T) {
			bapptest.SetBaseEnv(t, 70000)
		}, "Port"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			_, err := bapp.ParseEnv[TestEnv]()()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseEnvBadLevel(t *testing.T) {
	bapptest.SetBaseEnv(t, 18093)
	t.Setenv("BHTTPD_LOG_LEVEL", "loud")

	_, err := bapp.ParseEnv[TestEnv]()()
	require.ErrorContains(t, err, "failed to parse environment")
}
