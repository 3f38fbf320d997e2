package bhttpd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMalformedRange is returned when a Range header is present but cannot be parsed.
	ErrMalformedRange = errors.New("malformed range")
	// ErrUnsatisfiableRange is returned when the range lies (partially) beyond the content.
	ErrUnsatisfiableRange = errors.New("range not satisfiable")
)

// ByteRange is an inclusive range of byte offsets.
type ByteRange struct {
	Start int64
	End   int64
}

// ParseRange parses a Range header value. Only the single, closed form "bytes=start-end" is supported.
func ParseRange(header string) (ByteRange, error) {
	val, ok := strings.CutPrefix(strings.TrimSpace(header), "bytes=")
	if !ok {
		return ByteRange{}, errors.Wrapf(ErrMalformedRange, "unsupported unit in %q", header)
	}

	startStr, endStr, ok := strings.Cut(val, "-")
	if !ok {
		return ByteRange{}, errors.Wrapf(ErrMalformedRange, "missing '-' in %q", header)
	}

	start, err := parseOffset(startStr)
	if err != nil {
		return ByteRange{}, errors.Wrapf(err, "start of %q", header)
	}

	end, err := parseOffset(endStr)
	if err != nil {
		return ByteRange{}, errors.Wrapf(err, "end of %q", header)
	}

	if start > end {
		return ByteRange{}, errors.Wrapf(ErrMalformedRange, "start after end in %q", header)
	}

	return ByteRange{Start: start, End: end}, nil
}

func parseOffset(s string) (int64, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, errors.Wrapf(ErrMalformedRange, "invalid offset %q", s)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "invalid offset %q", s), ErrMalformedRange)
	}

	return n, nil
}

// Len returns the number of bytes in the range.
func (r ByteRange) Len() int64 { return r.End - r.Start + 1 }

// Resolve validates the range against the total content length.
func (r ByteRange) Resolve(total int64) (ByteRange, error) {
	if r.End >= total {
		return ByteRange{}, errors.Wrapf(ErrUnsatisfiableRange, "bytes %d-%d of %d", r.Start, r.End, total)
	}

	return r, nil
}

// ContentRange formats the Content-Range header value for the range.
func (r ByteRange) ContentRange(total int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, total)
}

// Slice returns the bytes of body covered by a resolved range.
func (r ByteRange) Slice(body []byte) []byte {
	return body[r.Start : r.End+1]
}
