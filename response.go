package bhttpd

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Response is what the dispatch core produces for the write side. The reason phrase is kept for hosts
// that write their own status line, net/http always writes the standard text.
type Response struct {
	Code   int
	Reason string
	Header http.Header
	Body   []byte
}

// NewResponse inits a response with the standard reason phrase for the code.
func NewResponse(code int) *Response {
	return &Response{Code: code, Reason: http.StatusText(code), Header: http.Header{}}
}

// NewBodyResponse inits a response with the given content type and body.
func NewBodyResponse(code int, contentType string, body []byte) *Response {
	resp := NewResponse(code)
	resp.Header.Set("Content-Type", contentType)
	resp.Body = body

	return resp
}

// Write writes the response to w. The Content-Length always reflects the body.
func (r *Response) Write(w http.ResponseWriter) error {
	for name, vals := range r.Header {
		for _, val := range vals {
			w.Header().Add(name, val)
		}
	}

	w.Header().Set("Content-Length", strconv.Itoa(len(r.Body)))
	w.WriteHeader(r.Code)

	if len(r.Body) < 1 {
		return nil
	}

	if _, err := w.Write(r.Body); err != nil {
		return errors.Wrap(err, "write body")
	}

	return nil
}
