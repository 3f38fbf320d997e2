package bhttpd_test

import (
	"net/http"
	"testing"

	"github.com/advdv/bhttpd"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	err1 := bhttpd.NewError(bhttpd.CodeBadRequest, errors.New("foo"))
	require.Equal(t, bhttpd.Code(400), err1.Code())
	require.Equal(t, bhttpd.CodeBadRequest, bhttpd.CodeOf(err1))
	require.Equal(t, "Bad Request: foo", err1.Error())

	require.Equal(t, bhttpd.CodeUnknown, bhttpd.CodeOf(errors.New("bar")))
	require.Equal(t, "Unknown: rab", bhttpd.NewError(900, errors.New("rab")).Error())

	sentinel := errors.New("sentinel")
	require.ErrorIs(t, bhttpd.NewError(bhttpd.CodeConflict, sentinel), sentinel)
}

func TestErrorResponse(t *testing.T) {
	resp := bhttpd.ErrorResponse(errors.Wrap(bhttpd.NewError(bhttpd.CodeForbidden, errors.New("nope")), "outer"))
	require.Equal(t, http.StatusForbidden, resp.Code)
	require.Equal(t, "Forbidden", resp.Reason)
	require.Equal(t, "nope", string(resp.Body))
	require.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))

	resp = bhttpd.ErrorResponse(errors.New("internal detail"))
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	require.Equal(t, "Internal Server Error", string(resp.Body))

	resp = bhttpd.ErrorResponse(bhttpd.NewError(900, errors.New("odd")))
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}
