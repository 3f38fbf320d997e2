// Package bapp hosts the bhttpd dispatch core as a standalone HTTP service.
//
// # Overview
//
// bapp wires environment parsing, structured logging, OpenTelemetry tracing, static file serving and
// graceful shutdown around a [bhttpd.Chain]. A complete application is created in a single call:
//
//	bapp.NewApp[Env](func(r *bhttpd.Router, h *Handlers) {
//	    r.Get("/items", h.ListItems)
//	    r.Get("/items/(id)", h.GetItem, "get-item")
//	},
//	    bapp.WithFx(fx.Provide(NewHandlers)),
//	).Run()
//
// # Environment Configuration
//
// Define your environment by embedding [BaseEnvironment]:
//
//	type Env struct {
//	    bapp.BaseEnvironment
//	    Greeting string `env:"GREETING" envDefault:"hello"`
//	}
//
// BaseEnvironment provides the following environment variables:
//
//	| Variable                    | Required | Default | Description                                       |
//	|-----------------------------|----------|---------|---------------------------------------------------|
//	| BHTTPD_SERVICE_NAME         | Yes      | -       | Service name for logging and tracing              |
//	| BHTTPD_PORT                 | No       | 8888    | Port the HTTP server listens on                   |
//	| BHTTPD_HEALTH_PATH          | No       | /health | Path of the health route, never traced            |
//	| BHTTPD_STATIC_DIR           | No       | -       | Serve files from this directory                   |
//	| BHTTPD_DEBUG_URL            | No       | -       | Serve files fetched from this endpoint instead    |
//	| BHTTPD_STATIC_PREFIX        | No       | /       | Path prefix the files are served under            |
//	| BHTTPD_FETCH_TIMEOUT        | No       | 30s     | Bound on a single fetch from the debug endpoint   |
//	| BHTTPD_LEGACY_RANGE_STATUS  | No       | false   | Answer ranges with 200/418 instead of 206/416     |
//	| BHTTPD_LOG_LEVEL            | No       | info    | Log level (debug, info, warn, error)              |
//	| BHTTPD_OTEL_EXPORTER        | No       | stdout  | Trace exporter: "stdout" or "none"                |
//
// BHTTPD_STATIC_DIR and BHTTPD_DEBUG_URL are mutually exclusive. With neither set no files are served.
//
// # Request Pipeline
//
// Every request runs through the chain in this order:
//
//  1. the file server, mounted at BHTTPD_STATIC_PREFIX
//  2. the router, holding the health route and everything the routing function registered
//  3. an access log entry
//  4. a 404 when nothing responded
//
// Handlers can use [Log] for a logger that carries the request id and the trace and span ids, and
// [Span] for the active span. Fetches from the debug endpoint go through an instrumented transport
// and show up as child spans.
//
// # Testing
//
// The bapptest package builds the same graph with fxtest so DI errors fail the test directly.
package bapp
