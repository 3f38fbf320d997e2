package bhttpd

import (
	"context"
	"strings"
)

// Mount runs m only for requests whose path is prefix or lies below it. The mounted middleware sees the
// path with the prefix stripped, later middleware see the original request again. A prefix of "/" or ""
// mounts m at the root.
func Mount(prefix string, m Middleware) Middleware {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return m
	}

	return MiddlewareFunc(func(ctx context.Context, res Result) Result {
		orig := res.Request

		p, ok := stripPrefix(prefix, orig.Path())
		if !ok {
			return res
		}

		res.Request = pathRequest{Request: orig, path: p}
		res = m.ServeMiddleware(ctx, res)
		res.Request = orig

		return res
	})
}

func stripPrefix(prefix, path string) (string, bool) {
	if path == prefix {
		return "/", true
	}

	if !strings.HasPrefix(path, prefix+"/") {
		return "", false
	}

	return strings.TrimPrefix(path, prefix), true
}
