package bhttpd

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// Request exposes exactly the parts of an inbound request that the dispatch core reads. Implementations
// must be immutable once received. Header names are lower-cased.
type Request interface {
	Method() string
	Path() string
	Query() url.Values
	Headers() map[string][]string
}

// BodyRequest is implemented by requests that carry body metadata. The core never reads the body, handlers
// may type-assert for it.
type BodyRequest interface {
	Request
	HasBody() bool
	ContentLength() int64
	ContentType() string
	Body() io.Reader
}

// HeaderValue performs a case-insensitive lookup and returns the first value of the named header.
func HeaderValue(r Request, name string) (string, bool) {
	vals := r.Headers()[strings.ToLower(name)]
	if len(vals) < 1 {
		return "", false
	}

	return vals[0], true
}

// MemRequest is an in-memory request. It is used by tests and by hosts that construct requests
// themselves rather than through [FromStd].
type MemRequest struct {
	method  string
	path    string
	query   url.Values
	headers map[string][]string
}

// NewRequest inits an in-memory request without query or headers.
func NewRequest(method, path string) MemRequest {
	return MemRequest{method: method, path: path, query: url.Values{}, headers: map[string][]string{}}
}

// WithQuery returns a copy with the query value appended.
func (r MemRequest) WithQuery(name, val string) MemRequest {
	r.query = copyValues(r.query)
	r.query[name] = append(r.query[name], val)

	return r
}

// WithHeader returns a copy with the header value appended under the lower-cased name.
func (r MemRequest) WithHeader(name, val string) MemRequest {
	r.headers = copyValues(r.headers)
	name = strings.ToLower(name)
	r.headers[name] = append(r.headers[name], val)

	return r
}

func (r MemRequest) Method() string               { return r.method }
func (r MemRequest) Path() string                 { return r.path }
func (r MemRequest) Query() url.Values            { return r.query }
func (r MemRequest) Headers() map[string][]string { return r.headers }

// stdRequest adapts a standard library request.
type stdRequest struct {
	req     *http.Request
	headers map[string][]string
}

// FromStd adapts a standard library request. The path is the already decoded URL path.
func FromStd(r *http.Request) BodyRequest {
	headers := make(map[string][]string, len(r.Header))
	for name, vals := range r.Header {
		name = strings.ToLower(name)
		headers[name] = append(headers[name], vals...)
	}

	return stdRequest{req: r, headers: headers}
}

func (r stdRequest) Method() string               { return r.req.Method }
func (r stdRequest) Query() url.Values            { return r.req.URL.Query() }
func (r stdRequest) Headers() map[string][]string { return r.headers }
func (r stdRequest) ContentLength() int64         { return r.req.ContentLength }
func (r stdRequest) ContentType() string          { return r.req.Header.Get("Content-Type") }
func (r stdRequest) Body() io.Reader              { return r.req.Body }

func (r stdRequest) HasBody() bool {
	return r.req.Body != nil && r.req.Body != http.NoBody
}

func (r stdRequest) Path() string {
	if r.req.URL.Path == "" {
		return "/"
	}

	return r.req.URL.Path
}

// pathRequest presents another request under a different path.
type pathRequest struct {
	Request
	path string
}

func (r pathRequest) Path() string { return r.path }

func copyValues(m map[string][]string) map[string][]string {
	return lo.MapValues(m, func(vals []string, _ string) []string {
		return append([]string(nil), vals...)
	})
}
