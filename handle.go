package bhttpd

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
)

// RouteMatch holds the captures of a matched route pattern. Values of a name are in the order they
// occurred in the path.
type RouteMatch map[string][]string

// Get returns the first value captured under name.
func (m RouteMatch) Get(name string) string {
	if vals := m[name]; len(vals) > 0 {
		return vals[0]
	}

	return ""
}

// Values returns all values captured under name.
func (m RouteMatch) Values(name string) []string { return m[name] }

// Handler serves a request that matched a route. Returning an error makes the router formulate the
// response, see [ErrorResponse].
type Handler interface {
	ServeRoute(ctx context.Context, req Request, m RouteMatch) (*Response, error)
}

// HandlerFunc allow casting a function to implement [Handler].
type HandlerFunc func(context.Context, Request, RouteMatch) (*Response, error)

// ServeRoute implements the [Handler] interface.
func (f HandlerFunc) ServeRoute(ctx context.Context, req Request, m RouteMatch) (*Response, error) {
	return f(ctx, req, m)
}

// ToStd converts a chain into a standard library http.Handler. Panics while running the chain are
// recovered into a 500 response so the client always receives a well-formed response.
func ToStd(c *Chain, logs Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := run(r.Context(), c, FromStd(r), logs)
		if err := resp.Write(w); err != nil {
			logs.LogWriteError(err)
		}
	})
}

func run(ctx context.Context, c *Chain, req Request, logs Logger) (resp *Response) {
	defer func() {
		if e := recover(); e != nil {
			err := errors.Newf("recovered: %v", e)
			logs.LogUnhandledHandlerError(err)
			resp = ErrorResponse(err)
		}
	}()

	return c.Run(ctx, req)
}
