package bhttpd

import (
	"context"
	"net/http"
)

// Result is what flows between middleware: the request and, once some middleware decided on it, the
// response. Middleware may replace the request seen by later middleware but never mutate it.
type Result struct {
	Request  Request
	Response *Response
}

// Responded reports whether a response has been decided on.
func (r Result) Responded() bool { return r.Response != nil }

// Respond returns a copy of the result carrying resp.
func (r Result) Respond(resp *Response) Result {
	r.Response = resp
	return r
}

// Middleware is a single stage of a [Chain]. It receives the current result and returns exactly one
// result: unchanged to pass through, or with a response to terminate. A middleware that receives a result
// that already carries a response decides whether to keep or overwrite it.
type Middleware interface {
	ServeMiddleware(ctx context.Context, res Result) Result
}

// MiddlewareFunc allows casting a function to implement [Middleware].
type MiddlewareFunc func(context.Context, Result) Result

// ServeMiddleware implements the [Middleware] interface.
func (f MiddlewareFunc) ServeMiddleware(ctx context.Context, res Result) Result {
	return f(ctx, res)
}

// Unanswered wraps m so that it only runs while no response has been decided on.
func Unanswered(m Middleware) Middleware {
	return MiddlewareFunc(func(ctx context.Context, res Result) Result {
		if res.Responded() {
			return res
		}

		return m.ServeMiddleware(ctx, res)
	})
}

// NotFound is the default terminal middleware, it answers 404 when nothing else responded.
func NotFound() Middleware {
	return Unanswered(MiddlewareFunc(func(_ context.Context, res Result) Result {
		return res.Respond(NewBodyResponse(http.StatusNotFound, "text/plain; charset=utf-8", []byte("404 page not found")))
	}))
}

// Chain runs middleware strictly in the order they were added. The chain is configured during setup and
// may then be run concurrently.
type Chain struct {
	middlewares []Middleware
	terminal    Middleware
}

// NewChain inits a chain with the given middleware and the [NotFound] terminal.
func NewChain(mws ...Middleware) *Chain {
	c := &Chain{terminal: NotFound()}
	return c.Use(mws...)
}

// Use appends middleware to the chain.
func (c *Chain) Use(mws ...Middleware) *Chain {
	for _, mw := range mws {
		if mw == nil {
			panic("bhttpd: nil middleware passed to Use")
		}
	}

	c.middlewares = append(c.middlewares, mws...)
	return c
}

// WithNotFound replaces the terminal middleware that runs after all others. It must produce a response
// when none was produced before it.
func (c *Chain) WithNotFound(m Middleware) *Chain {
	if m == nil {
		panic("bhttpd: nil middleware passed to WithNotFound")
	}

	c.terminal = m
	return c
}

// Run dispatches the request through the chain and returns the wire response.
func (c *Chain) Run(ctx context.Context, req Request) *Response {
	res := Result{Request: req}
	for _, mw := range c.middlewares {
		res = next(ctx, mw, res)
	}

	res = next(ctx, c.terminal, res)
	if !res.Responded() {
		res = next(ctx, NotFound(), res)
	}

	return res.Response
}

// next runs a single middleware, a middleware that drops the request keeps the previous one.
func next(ctx context.Context, mw Middleware, res Result) Result {
	out := mw.ServeMiddleware(ctx, res)
	if out.Request == nil {
		out.Request = res.Request
	}

	return out
}
