// Package explorers maps explorer names to their builders.
package explorers

import (
	"sort"
	"strings"

	"explorergen/internal/errors"
	"explorergen/internal/explorers/common"
	"explorergen/internal/explorers/distribution"
	"explorergen/internal/explorers/inequality"
	"explorergen/internal/explorers/lis"
	"explorergen/internal/explorers/poverty"
	"explorergen/internal/explorers/ppp"
	"explorergen/ports"
)

// Registry holds builders by name.
type Registry struct {
	builders map[string]ports.ExplorerBuilder
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]ports.ExplorerBuilder)}
}

// Default registers every published explorer with the given parameters.
func Default(p common.Params) *Registry {
	r := NewRegistry()
	r.Register(poverty.New(p))
	r.Register(ppp.New(p))
	r.Register(inequality.New(p))
	r.Register(lis.New(p))
	r.Register(distribution.New(p))
	return r
}

// Register adds b, replacing any builder of the same name.
func (r *Registry) Register(b ports.ExplorerBuilder) {
	r.builders[b.Name()] = b
}

// Get looks a builder up by name.
func (r *Registry) Get(name string) (ports.ExplorerBuilder, error) {
	b, ok := r.builders[strings.TrimSpace(name)]
	if !ok {
		return nil, errors.NotFound("explorer " + name)
	}
	return b, nil
}

// Names lists registered explorers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves names to builders. No names selects every builder.
func (r *Registry) Select(names ...string) ([]ports.ExplorerBuilder, error) {
	if len(names) == 0 {
		names = r.Names()
	}
	out := make([]ports.ExplorerBuilder, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		b, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		if seen[b.Name()] {
			continue
		}
		seen[b.Name()] = true
		out = append(out, b)
	}
	return out, nil
}
