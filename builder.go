package paramx

import (
	"fmt"
	"strings"
)

// Builder provides a fluent API for seeding a Params programmatically.
// Unlike FromMap, which tolerates arbitrary external mappings, Build rejects
// reserved names outright: in a programmatic API a ReservedPrefix key is a
// bug, not an input to be filtered.
type Builder struct {
	entries []entry
	init    InitFunc
	args    []any
}

type entry struct {
	key   string
	value string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Set records a parameter to store at Build time. Later Set calls for the
// same (case-insensitive) key win. Normalization and the empty-value-deletes
// rule are applied at Build, so Set(k, v) followed by Set(k, "") yields no
// parameter under k.
func (b *Builder) Set(key, value string) *Builder {
	b.entries = append(b.entries, entry{key: key, value: value})
	return b
}

// Init installs a post-construction hook to run after Build has populated
// the store, with the given args.
func (b *Builder) Init(init InitFunc, args ...any) *Builder {
	b.init = init
	b.args = args
	return b
}

// Build validates the recorded entries and constructs the Params.
// Returns an error if any recorded key carries the reserved prefix.
func (b *Builder) Build() (*Params, error) {
	for _, e := range b.entries {
		if strings.HasPrefix(e.key, ReservedPrefix) {
			return nil, fmt.Errorf("reserved parameter name %q", e.key)
		}
	}

	p := &Params{store: make(map[string]string, len(b.entries))}
	for _, e := range b.entries {
		p.Set(e.key, e.value)
	}

	if b.init != nil {
		b.init(p, b.args...)
	}
	return p, nil
}
