// Package bhttpd provides the request-dispatch core of an embedded HTTP server: a pattern router, a
// middleware chain and a file-serving middleware with byte-range support.
//
// # Overview
//
// A request flows through a [Chain] of [Middleware] in registration order. Each middleware receives the
// current [Result] (the request plus the response decided on so far, if any) and returns the next one.
// When no middleware produced a response the chain answers 404. The 404 is never produced by an
// individual component, a [Router] that finds no route simply passes the request through.
//
// A minimal example:
//
//	rt := bhttpd.NewRouter()
//	rt.Get("/items/(id)", func(ctx context.Context, r bhttpd.Request, m bhttpd.RouteMatch) (*bhttpd.Response, error) {
//	    item, err := db.GetItem(ctx, m.Get("id"))
//	    if err != nil {
//	        return nil, bhttpd.NewError(bhttpd.CodeNotFound, err)
//	    }
//	    return bhttpd.NewBodyResponse(http.StatusOK, "application/json", item.JSON()), nil
//	}, "get-item")
//
//	files, err := bhttpd.NewLocalFileServer("./www")
//	if err != nil {
//	    return err
//	}
//
//	chain := bhttpd.NewChain(files, rt)
//	http.ListenAndServe(":8888", bhttpd.ToStd(chain, bhttpd.NewStdLogger(nil)))
//
// # Route Patterns
//
// Patterns are split on "/" after stripping one trailing slash, so "/hello" and "/hello/" are equivalent
// for both patterns and paths. Each segment is one of:
//
//   - a literal, matched with exact case-sensitive equality
//   - a capture "(name)", matching exactly one segment
//   - a wildcard capture "(name*)", only as the last segment, matching one or more segments joined by "/"
//
// A capture name may be used more than once, all values are collected in [RouteMatch] in the order they
// occurred. Patterns are compiled when a route is registered. No percent-decoding takes place.
//
// # Handlers and Errors
//
// A [Handler] returns a [*Response] or an error. Errors created with [NewError] carry an HTTP status code
// and become a response of that status with the error text as body. Any other error is reported to the
// [Logger] and becomes a 500 Internal Server Error.
//
// # File Serving
//
// [FileServer] serves files either from a local directory ([NewLocalFileServer]) or from a remote debug
// endpoint ([NewProxyFileServer]). Files that cannot be loaded are passed through. A request carrying a
// "Range: bytes=start-end" header receives only those bytes together with a Content-Range header.
// Malformed ranges are answered with 400, ranges beyond the end of the file with 416. Older clients that
// depend on 200 and 418 respectively can opt in with [WithLegacyRangeStatus].
//
// The remote fetch is bounded by a timeout ([WithFetchTimeout], 30 seconds by default). When it expires
// the fetch is cancelled and the request passes through, exactly as for any other fetch failure.
//
// # Concurrency
//
// Routers, chains and file servers are configured during setup and are read-only afterwards, they may be
// shared by any number of concurrent requests. Registering a route after the router served a request
// panics.
//
// # Converting to Standard Library
//
// [ToStd] turns a chain into an http.Handler and [FromStd] adapts an *http.Request into a [Request].
package bhttpd
