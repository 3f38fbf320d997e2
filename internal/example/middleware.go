// Package example implements example middleware in an outside package.
package example

import (
	"context"
	"log/slog"

	"github.com/advdv/bhttpd"
)

// Middleware provides an example for middleware that logs every request and leaves the result alone.
func Middleware(logs *slog.Logger) bhttpd.Middleware {
	return bhttpd.MiddlewareFunc(func(ctx context.Context, res bhttpd.Result) bhttpd.Result {
		logs.InfoContext(ctx, "dispatch",
			slog.String("method", res.Request.Method()),
			slog.String("path", res.Request.Path()),
			slog.Bool("responded", res.Responded()))

		return res
	})
}

// Header sets a response header on results that already carry a response.
func Header(name, val string) bhttpd.Middleware {
	return bhttpd.MiddlewareFunc(func(_ context.Context, res bhttpd.Result) bhttpd.Result {
		if res.Responded() {
			res.Response.Header.Add(name, val)
		}

		return res
	})
}
