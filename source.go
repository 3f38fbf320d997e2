package bhttpd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/cockroachdb/errors"
)

// DefaultFetchTimeout bounds the wait for the debug endpoint when no other timeout is configured.
const DefaultFetchTimeout = 30 * time.Second

// source loads the full content for a request path. A hint, when not empty, is the content type the
// source reported for it.
type source interface {
	load(ctx context.Context, p string) (body []byte, hint string, err error)
}

// localSource reads files below a directory. The root confines lookups so a path cannot escape it.
type localSource struct {
	root *os.Root
}

func (s localSource) load(ctx context.Context, p string) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	name := strings.TrimPrefix(p, "/")
	if name == "" {
		name = "."
	}

	f, err := s.root.Open(name)
	if err != nil {
		return nil, "", errors.Wrap(err, "open file")
	}
	defer func() { _ = f.Close() }()

	body, err := io.ReadAll(f)
	if err != nil {
		return nil, "", errors.Wrap(err, "read file")
	}

	return body, "", nil
}

// proxySource downloads files from a debug endpoint.
type proxySource struct {
	base      *url.URL
	transport http.RoundTripper
	timeout   time.Duration
}

func (s proxySource) load(ctx context.Context, p string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		body   bytes.Buffer
		header = http.Header{}
	)

	if err := requests.
		URL(s.base.JoinPath(p).String()).
		Transport(s.transport).
		Handle(requests.ChainHandlers(
			requests.CopyHeaders(header),
			requests.ToBytesBuffer(&body),
		)).
		Fetch(ctx); err != nil {
		return nil, "", errors.Wrapf(err, "fetch %s", p)
	}

	return body.Bytes(), header.Get("Content-Type"), nil
}
