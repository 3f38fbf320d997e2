// Package routepattern compiles and matches route path patterns. A pattern is a slash separated list of
// segments where each segment is a literal, a capture "(name)" or a trailing wildcard capture "(name*)".
package routepattern

import (
	"strings"

	"github.com/cockroachdb/errors"
)

type segmentKind int

const (
	literal segmentKind = iota
	capture
	wildcard
)

type segment struct {
	kind  segmentKind
	value string // literal text or capture name
}

// Pattern is a compiled route pattern.
type Pattern struct {
	str      string
	segments []segment
}

// Parse compiles the pattern string.
func Parse(s string) (*Pattern, error) {
	if s == "" {
		return nil, errors.New("empty pattern")
	}

	if !strings.HasPrefix(s, "/") {
		return nil, errors.Newf("pattern %q must start with '/'", s)
	}

	parts := split(s)
	pat := &Pattern{str: s, segments: make([]segment, 0, len(parts))}

	for i, part := range parts {
		if !strings.HasPrefix(part, "(") || !strings.HasSuffix(part, ")") || len(part) < 2 {
			pat.segments = append(pat.segments, segment{kind: literal, value: part})
			continue
		}

		name, kind := part[1:len(part)-1], capture
		if strings.HasSuffix(name, "*") {
			name, kind = strings.TrimSuffix(name, "*"), wildcard
			if i != len(parts)-1 {
				return nil, errors.Newf("wildcard %q must be the last segment of %q", part, s)
			}
		}

		if name == "" {
			return nil, errors.Newf("empty capture name in %q", s)
		}

		pat.segments = append(pat.segments, segment{kind: kind, value: name})
	}

	return pat, nil
}

// String returns the pattern as it was parsed.
func (p *Pattern) String() string { return p.str }

// Match tests the path against the pattern. Captures are returned in left-to-right order, a name
// that occurs more than once accumulates all its values.
func (p *Pattern) Match(path string) (map[string][]string, bool) {
	parts := split(path)

	last := len(p.segments) - 1
	hasWildcard := p.segments[last].kind == wildcard

	switch {
	case hasWildcard && len(parts) < len(p.segments):
		return nil, false
	case !hasWildcard && len(parts) != len(p.segments):
		return nil, false
	}

	var captures map[string][]string
	bind := func(name, val string) {
		if captures == nil {
			captures = map[string][]string{}
		}
		captures[name] = append(captures[name], val)
	}

	for i, seg := range p.segments {
		switch seg.kind {
		case literal:
			if parts[i] != seg.value {
				return nil, false
			}
		case capture:
			bind(seg.value, parts[i])
		case wildcard:
			bind(seg.value, strings.Join(parts[i:], "/"))
		}
	}

	if captures == nil {
		captures = map[string][]string{}
	}

	return captures, true
}

// Build substitutes the capture values in positional order and returns the resulting path.
func Build(p *Pattern, vals ...string) (string, error) {
	parts := make([]string, 0, len(p.segments))

	var used int
	for _, seg := range p.segments {
		if seg.kind == literal {
			parts = append(parts, seg.value)
			continue
		}

		if used >= len(vals) {
			return "", errors.Newf("not enough values for %q: got %d", p.str, len(vals))
		}

		val := vals[used]
		used++

		if seg.kind == capture && strings.Contains(val, "/") {
			return "", errors.Newf("value %q for capture %q may not contain '/'", val, seg.value)
		}

		parts = append(parts, val)
	}

	if used != len(vals) {
		return "", errors.Newf("too many values for %q: got %d, want %d", p.str, len(vals), used)
	}

	res := strings.Join(parts, "/")
	if res == "" {
		return "/", nil
	}

	return res, nil
}

// split strips exactly one trailing slash and splits on '/'.
func split(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "/"), "/")
}
