package bhttpd

import (
	"context"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/advdv/bhttpd/internal/routepattern"
)

type route struct {
	method  string
	pattern *routepattern.Pattern
	handler Handler
}

// Router dispatches requests to the first registered route whose method and pattern match. Routes are
// registered during setup, after the first request was handled the route table is read-only.
type Router struct {
	logs     Logger
	reverser *Reverser
	routes   []route
	serving  atomic.Bool
}

// NewRouter creates a new Router with default settings.
func NewRouter() *Router {
	return NewRouterWith(NewStdLogger(log.Default()), NewReverser())
}

// NewRouterWith creates a Router with custom settings.
func NewRouterWith(logger Logger, reverser *Reverser) *Router {
	return &Router{
		logs:     logger,
		reverser: reverser,
	}
}

// Reverse returns the url based on the name and capture values.
func (rt *Router) Reverse(name string, vals ...string) (string, error) {
	return rt.reverser.Reverse(name, vals...)
}

// Register adds a route. The pattern is compiled now and the call panics if it is invalid. An optional name
// makes the route reversible.
func (rt *Router) Register(method, pattern string, handler Handler, name ...string) {
	rt.ensureNoRegisterAfterServe()

	var pat *routepattern.Pattern
	if len(name) > 0 {
		pat = rt.reverser.Named(name[0], pattern)
	} else {
		var err error
		if pat, err = routepattern.Parse(pattern); err != nil {
			panic("bhttpd: failed to parse pattern: " + err.Error())
		}
	}

	rt.routes = append(rt.routes, route{method: method, pattern: pat, handler: handler})
}

// RegisterFunc adds a route using a function.
func (rt *Router) RegisterFunc(method, pattern string, handler HandlerFunc, name ...string) {
	rt.Register(method, pattern, handler, name...)
}

func (rt *Router) Get(pattern string, handler HandlerFunc, name ...string) {
	rt.Register(http.MethodGet, pattern, handler, name...)
}

func (rt *Router) Head(pattern string, handler HandlerFunc, name ...string) {
	rt.Register(http.MethodHead, pattern, handler, name...)
}

func (rt *Router) Post(pattern string, handler HandlerFunc, name ...string) {
	rt.Register(http.MethodPost, pattern, handler, name...)
}

func (rt *Router) Put(pattern string, handler HandlerFunc, name ...string) {
	rt.Register(http.MethodPut, pattern, handler, name...)
}

func (rt *Router) Patch(pattern string, handler HandlerFunc, name ...string) {
	rt.Register(http.MethodPatch, pattern, handler, name...)
}

func (rt *Router) Delete(pattern string, handler HandlerFunc, name ...string) {
	rt.Register(http.MethodDelete, pattern, handler, name...)
}

// Match returns the handler and captures of the first route matching the request.
func (rt *Router) Match(req Request) (Handler, RouteMatch, bool) {
	for _, r := range rt.routes {
		if r.method != req.Method() {
			continue
		}

		if captures, ok := r.pattern.Match(req.Path()); ok {
			return r.handler, captures, true
		}
	}

	return nil, nil, false
}

// Handle serves the request with the first matching route. It returns false when no route matched. Handler
// errors are turned into a response.
func (rt *Router) Handle(ctx context.Context, req Request) (*Response, bool) {
	rt.serving.Store(true)

	h, m, ok := rt.Match(req)
	if !ok {
		return nil, false
	}

	resp, err := h.ServeRoute(ctx, req, m)
	switch {
	case err != nil && CodeOf(err) == CodeUnknown:
		rt.logs.LogUnhandledHandlerError(err)
		return ErrorResponse(err), true
	case err != nil:
		return ErrorResponse(err), true
	case resp == nil:
		return NewResponse(http.StatusNoContent), true
	default:
		return resp, true
	}
}

// ServeMiddleware makes the router usable as a stage of a [Chain]. Requests that match no route, or that
// already have a response, are passed through.
func (rt *Router) ServeMiddleware(ctx context.Context, res Result) Result {
	if res.Responded() {
		return res
	}

	if resp, ok := rt.Handle(ctx, res.Request); ok {
		return res.Respond(resp)
	}

	return res
}

func (rt *Router) ensureNoRegisterAfterServe() {
	if rt.serving.Load() {
		panic("bhttpd: cannot call Register() after the router started serving")
	}
}
