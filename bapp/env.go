package bapp

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must implement.
// Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	port() int
	serviceName() string
	healthPath() string
	staticDir() string
	staticPrefix() string
	debugURL() string
	fetchTimeout() time.Duration
	legacyRangeStatus() bool
	logLevel() zapcore.Level
	otelExporter() string
}

// BaseEnvironment contains the environment variables every server reads. StaticDir and DebugURL select
// the file serving backend, at most one of them may be set.
type BaseEnvironment struct {
	Port              int           `env:"BHTTPD_PORT" envDefault:"8888" validate:"min=1,max=65535"`
	ServiceName       string        `env:"BHTTPD_SERVICE_NAME,required" validate:"required"`
	HealthPath        string        `env:"BHTTPD_HEALTH_PATH" envDefault:"/health" validate:"required,startswith=/"`
	StaticDir         string        `env:"BHTTPD_STATIC_DIR" validate:"excluded_with=DebugURL"`
	StaticPrefix      string        `env:"BHTTPD_STATIC_PREFIX" envDefault:"/" validate:"startswith=/"`
	DebugURL          string        `env:"BHTTPD_DEBUG_URL" validate:"omitempty,url"`
	FetchTimeout      time.Duration `env:"BHTTPD_FETCH_TIMEOUT" envDefault:"30s" validate:"gt=0"`
	LegacyRangeStatus bool          `env:"BHTTPD_LEGACY_RANGE_STATUS"`
	LogLevel          zapcore.Level `env:"BHTTPD_LOG_LEVEL" envDefault:"info"`
	OtelExporter      string        `env:"BHTTPD_OTEL_EXPORTER" envDefault:"stdout" validate:"oneof=stdout none"`
}

func (e BaseEnvironment) port() int                   { return e.Port }
func (e BaseEnvironment) serviceName() string         { return e.ServiceName }
func (e BaseEnvironment) healthPath() string          { return e.HealthPath }
func (e BaseEnvironment) staticDir() string           { return e.StaticDir }
func (e BaseEnvironment) staticPrefix() string        { return e.StaticPrefix }
func (e BaseEnvironment) debugURL() string            { return e.DebugURL }
func (e BaseEnvironment) fetchTimeout() time.Duration { return e.FetchTimeout }
func (e BaseEnvironment) legacyRangeStatus() bool     { return e.LegacyRangeStatus }
func (e BaseEnvironment) logLevel() zapcore.Level     { return e.LogLevel }
func (e BaseEnvironment) otelExporter() string        { return e.OtelExporter }

var _ Environment = BaseEnvironment{}

// ParseEnv parses and validates environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}

		if err := validator.New().Struct(&e); err != nil {
			return e, errors.Wrap(err, "failed to validate environment")
		}

		return e, nil
	}
}
