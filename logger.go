package bhttpd

import (
	"log"
	"sync/atomic"
	"testing"
)

// Logger can be implemented to get informed about important states.
type Logger interface {
	LogUnhandledHandlerError(err error)
	LogSourceError(path string, err error)
	LogWriteError(err error)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogUnhandledHandlerError(err error) {
	l.Logger.Printf("bhttpd: unhandled handler error: %s", err)
}

func (l stdLogger) LogSourceError(path string, err error) {
	l.Logger.Printf("bhttpd: passing through %s: %s", path, err)
}

func (l stdLogger) LogWriteError(err error) {
	l.Logger.Printf("bhttpd: error while writing response: %s", err)
}

func NewStdLogger(l *log.Logger) Logger {
	if l == nil {
		l = log.Default()
	}

	return stdLogger{l}
}

type TestLogger struct {
	tb testing.TB

	NumLogUnhandledHandlerError int64
	NumLogSourceError           int64
	NumLogWriteError            int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogUnhandledHandlerError(err error) {
	atomic.AddInt64(&l.NumLogUnhandledHandlerError, 1)
	l.tb.Logf("bhttpd: unhandled handler error: %s", err)
}

func (l *TestLogger) LogSourceError(path string, err error) {
	atomic.AddInt64(&l.NumLogSourceError, 1)
	l.tb.Logf("bhttpd: passing through %s: %s", path, err)
}

func (l *TestLogger) LogWriteError(err error) {
	atomic.AddInt64(&l.NumLogWriteError, 1)
	l.tb.Logf("bhttpd: error while writing response: %s", err)
}

var _ Logger = &TestLogger{}
