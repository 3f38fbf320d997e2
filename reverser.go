package bhttpd

import (
	"fmt"

	"github.com/advdv/bhttpd/internal/routepattern"
	"github.com/samber/lo"
)

// Reverser keeps track of named patterns and  allows building URLS.
type Reverser struct {
	pats map[string]*routepattern.Pattern
}

// NewReverser inits the reverser.
func NewReverser() *Reverser {
	return &Reverser{make(map[string]*routepattern.Pattern)}
}

// Reverse reverses the named pattern into a url.
func (r Reverser) Reverse(name string, vals ...string) (string, error) {
	pat, ok := r.pats[name]
	if !ok {
		return "", fmt.Errorf("no pattern named: %q, got: %v", name, lo.Keys(r.pats)) //nolint:goerr113
	}

	res, err := routepattern.Build(pat, vals...)
	if err != nil {
		return "", fmt.Errorf("failed to build: %w", err)
	}

	return res, nil
}

// Named is a convenience method that panics if naming the pattern fails.
func (r Reverser) Named(name, str string) *routepattern.Pattern {
	pat, err := r.NamedPattern(name, str)
	if err != nil {
		panic("bhttpd: " + err.Error())
	}

	return pat
}

// NamedPattern will parse 's' as a route pattern while returning the compiled form as well.
func (r Reverser) NamedPattern(name, str string) (*routepattern.Pattern, error) {
	if _, exists := r.pats[name]; exists {
		return nil, fmt.Errorf("pattern with name %q already exists", name) //nolint:goerr113
	}

	pat, err := routepattern.Parse(str)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pattern: %w", err)
	}

	r.pats[name] = pat

	return pat, nil
}
