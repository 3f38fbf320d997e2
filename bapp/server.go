package bapp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/advdv/bhttpd"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ServerConfig holds optional configuration for the HTTP server.
type ServerConfig struct {
	HealthHandler bhttpd.HandlerFunc
}

// NewRouter creates the router that the routing function registers on.
func NewRouter(logs bhttpd.Logger) *bhttpd.Router {
	return bhttpd.NewRouterWith(logs, bhttpd.NewReverser())
}

// FileServerParams holds the dependencies for creating the file server.
type FileServerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Env       Environment
	Logs      bhttpd.Logger
	Transport http.RoundTripper
}

// NewFileServer creates the file server selected by the environment: a local one when a static
// directory is configured, a proxying one when a debug url is configured. It returns nil when neither is.
func NewFileServer(params FileServerParams) (*bhttpd.FileServer, error) {
	opts := []bhttpd.FileServerOption{bhttpd.WithLogger(params.Logs)}
	if params.Env.legacyRangeStatus() {
		opts = append(opts, bhttpd.WithLegacyRangeStatus())
	}

	var (
		fs  *bhttpd.FileServer
		err error
	)

	switch {
	case params.Env.staticDir() != "":
		fs, err = bhttpd.NewLocalFileServer(params.Env.staticDir(), opts...)
	case params.Env.debugURL() != "":
		fs, err = bhttpd.NewProxyFileServer(params.Env.debugURL(), append(opts,
			bhttpd.WithTransport(params.Transport),
			bhttpd.WithFetchTimeout(params.Env.fetchTimeout()))...)
	default:
		return nil, nil
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to create file server")
	}

	params.Lifecycle.Append(fx.StopHook(fs.Close))

	return fs, nil
}

// ChainParams holds the dependencies for assembling the middleware chain.
type ChainParams struct {
	fx.In

	Env    Environment
	Router *bhttpd.Router
	Files  *bhttpd.FileServer `optional:"true"`
}

// NewChain assembles the chain: static files first, then the router, then a 404. The health route is
// registered on the router here so it precedes any application route.
func NewChain(params ChainParams, cfg ServerConfig) *bhttpd.Chain {
	health := cfg.HealthHandler
	if health == nil {
		health = defaultHealthHandler
	}

	params.Router.Get(params.Env.healthPath(), health)
	params.Router.Head(params.Env.healthPath(), health)

	chain := bhttpd.NewChain()
	if params.Files != nil {
		chain.Use(bhttpd.Mount(params.Env.staticPrefix(), params.Files))
	}

	return chain.Use(params.Router, accessLog())
}

// accessLog logs the outcome of every request with the request-scoped logger.
func accessLog() bhttpd.Middleware {
	return bhttpd.MiddlewareFunc(func(ctx context.Context, res bhttpd.Result) bhttpd.Result {
		code := http.StatusNotFound
		if res.Responded() {
			code = res.Response.Code
		}

		Log(ctx).Info("served request",
			zap.String("method", res.Request.Method()),
			zap.String("path", res.Request.Path()),
			zap.Int("status", code))

		return res
	})
}

// ServerParams holds the dependencies for creating an HTTP server.
type ServerParams struct {
	fx.In

	Env        Environment
	Chain      *bhttpd.Chain
	Logs       bhttpd.Logger
	Logger     *zap.Logger
	TracerProv trace.TracerProvider
	Propagator propagation.TextMapPropagator
}

// NewServer creates an HTTP server that runs the chain for every request.
func NewServer(params ServerParams) *http.Server {
	var handler http.Handler = bhttpd.ToStd(params.Chain, params.Logs)
	handler = withRequestDep(params.Logger)(handler)
	handler = withTracing(params.TracerProv, params.Propagator, params.Env.serviceName(), params.Env.healthPath())(handler)

	// the write timeout leaves room for a full proxy fetch
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", params.Env.port()),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      params.Env.fetchTimeout() + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// startServerHook registers lifecycle hooks for the HTTP server.
func startServerHook(lc fx.Lifecycle, server *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting server", zap.String("addr", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return server.Shutdown(ctx)
		},
	})
}

func defaultHealthHandler(context.Context, bhttpd.Request, bhttpd.RouteMatch) (*bhttpd.Response, error) {
	return bhttpd.NewBodyResponse(http.StatusOK, "text/plain; charset=utf-8", []byte("ok")), nil
}
