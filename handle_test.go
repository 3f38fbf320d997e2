package bhttpd_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/advdv/bhttpd"
	"github.com/stretchr/testify/require"
)

func TestToStdBasic(t *testing.T) {
	logs := bhttpd.NewTestLogger(t)
	rt := bhttpd.NewRouterWith(logs, bhttpd.NewReverser())
	rt.Get("/bar/(name)", func(_ context.Context, r bhttpd.Request, m bhttpd.RouteMatch) (*bhttpd.Response, error) {
		resp := bhttpd.NewBodyResponse(http.StatusCreated, "text/plain", []byte("hello "+m.Get("name")+" "+r.Query().Get("x")))
		resp.Header.Add("Is-Bar", "rab")
		resp.Header.Add("Is-Bar", "bar")
		return resp, nil
	})

	rec, req := httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bar/foo?x=1", nil)
	bhttpd.ToStd(bhttpd.NewChain(rt), logs).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, []string{"rab", "bar"}, rec.Header().Values("Is-Bar"))
	require.Equal(t, "11", rec.Header().Get("Content-Length"))
	require.Equal(t, `hello foo 1`, rec.Body.String())
}

func TestToStdNotFound(t *testing.T) {
	logs := bhttpd.NewTestLogger(t)

	rec, req := httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nothing", nil)
	bhttpd.ToStd(bhttpd.NewChain(), logs).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "404 page not found", rec.Body.String())
}

func TestToStdRecoversPanic(t *testing.T) {
	logs := bhttpd.NewTestLogger(t)
	chain := bhttpd.NewChain(bhttpd.MiddlewareFunc(func(context.Context, bhttpd.Result) bhttpd.Result {
		panic("some panic")
	}))

	rec, req := httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)
	bhttpd.ToStd(chain, logs).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Internal Server Error", rec.Body.String())
	require.Equal(t, int64(1), logs.NumLogUnhandledHandlerError)
}

func TestFromStd(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/a%20b/c?q=1&q=2", strings.NewReader("body"))
	req.Header.Add("X-Multi", "1")
	req.Header.Add("X-Multi", "2")
	req.Header.Set("Content-Type", "text/plain")

	r := bhttpd.FromStd(req)
	require.Equal(t, http.MethodPost, r.Method())
	require.Equal(t, "/a b/c", r.Path())
	require.Equal(t, []string{"1", "2"}, r.Query()["q"])
	require.Equal(t, []string{"1", "2"}, r.Headers()["x-multi"])
	require.True(t, r.HasBody())
	require.Equal(t, int64(4), r.ContentLength())
	require.Equal(t, "text/plain", r.ContentType())

	v, ok := bhttpd.HeaderValue(r, "X-MULTI")
	require.True(t, ok)
	require.Equal(t, "1", v)

	_, ok = bhttpd.HeaderValue(r, "range")
	require.False(t, ok)

	noBody := bhttpd.FromStd(httptest.NewRequest(http.MethodGet, "/", nil))
	require.False(t, noBody.HasBody())
}

func TestMemRequestIsImmutable(t *testing.T) {
	base := bhttpd.NewRequest(http.MethodGet, "/x").WithHeader("Accept", "a").WithQuery("q", "1")
	derived := base.WithHeader("Accept", "b").WithQuery("q", "2")

	require.Equal(t, []string{"a"}, base.Headers()["accept"])
	require.Equal(t, []string{"1"}, base.Query()["q"])
	require.Equal(t, []string{"a", "b"}, derived.Headers()["accept"])
	require.Equal(t, []string{"1", "2"}, derived.Query()["q"])
}
