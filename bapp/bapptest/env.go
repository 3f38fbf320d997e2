package bapptest

import (
	"strconv"
	"testing"
)

// Env provides a chainable builder for setting [bapp.BaseEnvironment] env vars via t.Setenv. Create one
// with [SetBaseEnv].
type Env struct {
	t testing.TB
}

// SetBaseEnv sets the [bapp.BaseEnvironment] env vars to test defaults. Port is required because each
// test must use a unique port to avoid collisions.
//
// Defaults:
//   - BHTTPD_SERVICE_NAME: "test"
//   - BHTTPD_HEALTH_PATH: "/health"
//   - BHTTPD_OTEL_EXPORTER: "none"
//   - BHTTPD_LOG_LEVEL: "error"
//
// Use the returned [Env] to override individual values:
//
//	bapptest.SetBaseEnv(t, 18085).DebugURL(srv.URL).FetchTimeout("1s")
func SetBaseEnv(t testing.TB, port int) *Env {
	t.Helper()
	t.Setenv("BHTTPD_PORT", strconv.Itoa(port))
	t.Setenv("BHTTPD_SERVICE_NAME", "test")
	t.Setenv("BHTTPD_HEALTH_PATH", "/health")
	t.Setenv("BHTTPD_OTEL_EXPORTER", "none")
	t.Setenv("BHTTPD_LOG_LEVEL", "error")
	return &Env{t: t}
}

// ServiceName overrides BHTTPD_SERVICE_NAME.
func (e *Env) ServiceName(name string) *Env {
	e.t.Helper()
	e.t.Setenv("BHTTPD_SERVICE_NAME", name)
	return e
}

// HealthPath overrides BHTTPD_HEALTH_PATH.
func (e *Env) HealthPath(path string) *Env {
	e.t.Helper()
	e.t.Setenv("BHTTPD_HEALTH_PATH", path)
	return e
}

// StaticDir sets BHTTPD_STATIC_DIR.
func (e *Env) StaticDir(dir string) *Env {
	e.t.Helper()
	e.t.Setenv("BHTTPD_STATIC_DIR", dir)
	return e
}

// StaticPrefix sets BHTTPD_STATIC_PREFIX.
func (e *Env) StaticPrefix(prefix string) *Env {
	e.t.Helper()
	e.t.Setenv("BHTTPD_STATIC_PREFIX", prefix)
	return e
}

// DebugURL sets BHTTPD_DEBUG_URL.
func (e *Env) DebugURL(u string) *Env {
	e.t.Helper()
	e.t.Setenv("BHTTPD_DEBUG_URL", u)
	return e
}

// FetchTimeout overrides BHTTPD_FETCH_TIMEOUT.
func (e *Env) FetchTimeout(d string) *Env {
	e.t.Helper()
	e.t.Setenv("BHTTPD_FETCH_TIMEOUT", d)
	return e
}

// LegacyRangeStatus sets BHTTPD_LEGACY_RANGE_STATUS.
func (e *Env) LegacyRangeStatus() *Env {
	e.t.Helper()
	e.t.Setenv("BHTTPD_LEGACY_RANGE_STATUS", "true")
	return e
}
