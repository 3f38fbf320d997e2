package bhttpd

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

// Status codes and reasons of the legacy range behaviour.
const (
	LegacyRangeNotSatisfiableCode   = http.StatusTeapot
	LegacyRangeNotSatisfiableReason = "Request Range Not Satisfiable"
)

// FileServer is a middleware that serves files, in full or by byte range, from either a local directory or a
// remote debug endpoint. When the file cannot be loaded the request is passed through so a later stage can
// answer it. Files are never modified.
type FileServer struct {
	src         source
	logs        Logger
	legacyRange bool
}

type fileServerConfig struct {
	logs         Logger
	transport    http.RoundTripper
	fetchTimeout time.Duration
	legacyRange  bool
}

// FileServerOption configures a [FileServer].
type FileServerOption func(*fileServerConfig)

// WithLogger sets the logger that is told why requests were passed through.
func WithLogger(l Logger) FileServerOption {
	return func(c *fileServerConfig) { c.logs = l }
}

// WithFetchTimeout bounds how long a request waits for the debug endpoint. It only applies in proxy mode.
func WithFetchTimeout(d time.Duration) FileServerOption {
	return func(c *fileServerConfig) { c.fetchTimeout = d }
}

// WithTransport sets the round tripper used to reach the debug endpoint. It only applies in proxy mode.
func WithTransport(rt http.RoundTripper) FileServerOption {
	return func(c *fileServerConfig) { c.transport = rt }
}

// WithLegacyRangeStatus answers satisfiable ranges with 200 instead of 206, and unsatisfiable ranges with
// 418 "Request Range Not Satisfiable" instead of 416. Only for clients that depend on the old behaviour.
func WithLegacyRangeStatus() FileServerOption {
	return func(c *fileServerConfig) { c.legacyRange = true }
}

func newFileServerConfig(opts []FileServerOption) fileServerConfig {
	cfg := fileServerConfig{
		logs:         NewStdLogger(log.Default()),
		transport:    http.DefaultTransport,
		fetchTimeout: DefaultFetchTimeout,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// NewLocalFileServer serves files below dir.
func NewLocalFileServer(dir string, opts ...FileServerOption) (*FileServer, error) {
	cfg := newFileServerConfig(opts)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "open base directory %q", dir)
	}

	return &FileServer{src: localSource{root: root}, logs: cfg.logs, legacyRange: cfg.legacyRange}, nil
}

// NewProxyFileServer serves files downloaded from the debug endpoint at debugURL.
func NewProxyFileServer(debugURL string, opts ...FileServerOption) (*FileServer, error) {
	cfg := newFileServerConfig(opts)

	base, err := url.Parse(debugURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse debug url %q", debugURL)
	}

	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Newf("debug url %q must be absolute", debugURL)
	}

	if cfg.fetchTimeout <= 0 {
		return nil, errors.Newf("fetch timeout must be positive, got %s", cfg.fetchTimeout)
	}

	return &FileServer{
		src:         proxySource{base: base, transport: cfg.transport, timeout: cfg.fetchTimeout},
		logs:        cfg.logs,
		legacyRange: cfg.legacyRange,
	}, nil
}

// Close releases the base directory of a local file server. It is a no-op in proxy mode.
func (fs *FileServer) Close() error {
	if src, ok := fs.src.(localSource); ok {
		return src.root.Close()
	}

	return nil
}

// ServeMiddleware implements [Middleware].
func (fs *FileServer) ServeMiddleware(ctx context.Context, res Result) Result {
	if res.Responded() {
		return res
	}

	if resp, ok := fs.Serve(ctx, res.Request); ok {
		return res.Respond(resp)
	}

	return res
}

// Serve produces the response for the file at the request's path. It returns false when the file could not
// be loaded.
func (fs *FileServer) Serve(ctx context.Context, req Request) (*Response, bool) {
	p := req.Path()

	body, hint, err := fs.src.load(ctx, p)
	if err != nil {
		fs.logs.LogSourceError(p, err)
		return nil, false
	}

	total := int64(len(body))

	header, ok := HeaderValue(req, "range")
	if !ok {
		ct := hint
		if ct == "" {
			ct = DetectContentType(p)
		}

		return withLength(NewBodyResponse(http.StatusOK, ct, body)), true
	}

	rng, err := ParseRange(header)
	if err != nil {
		return withLength(NewBodyResponse(http.StatusBadRequest, "text/plain; charset=utf-8",
			[]byte("Invalid Range Header"))), true
	}

	if rng, err = rng.Resolve(total); err != nil {
		return fs.unsatisfiable(total), true
	}

	code := http.StatusPartialContent
	if fs.legacyRange {
		code = http.StatusOK
	}

	resp := NewBodyResponse(code, DetectContentType(p), rng.Slice(body))
	resp.Header.Set("Content-Range", rng.ContentRange(total))

	return withLength(resp), true
}

func (fs *FileServer) unsatisfiable(total int64) *Response {
	if fs.legacyRange {
		resp := NewResponse(LegacyRangeNotSatisfiableCode)
		resp.Reason = LegacyRangeNotSatisfiableReason

		return withLength(resp)
	}

	resp := NewResponse(http.StatusRequestedRangeNotSatisfiable)
	resp.Header.Set("Content-Range", "bytes */"+strconv.FormatInt(total, 10))

	return withLength(resp)
}

func withLength(resp *Response) *Response {
	resp.Header.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	return resp
}
