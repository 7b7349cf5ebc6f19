// Package paramx provides a case-insensitive, string-keyed parameter
// container intended as the common base object for descriptor-style domain
// objects that need loosely-typed attribute storage.
//
// Key normalization: every stored key is lower-cased on the way in, so
// Set("Foo", v) and Get("FOO") address the same parameter. A parameter never
// holds the empty string; writing an empty value removes the key instead, so
// "has no value" and "is absent" are the same observable state.
//
// The container performs no locking. Callers that share a Params across
// goroutines must serialize access externally.
package paramx

import (
	"sort"
	"strings"
)

// ReservedPrefix marks parameter names that are private to the mapping
// producer. FromMap drops such entries silently; Builder rejects them.
const ReservedPrefix = "_"

// InitFunc is a post-construction hook. It runs exactly once, after the store
// has been populated, with whatever extra arguments were passed to the
// constructor. A nil InitFunc is a no-op. Embedding types use it for
// subtype-specific setup.
type InitFunc func(p *Params, args ...any)

// Params is a case-insensitive string parameter container. It is mutated only
// through Set and is exclusively owned by whichever object embeds it.
type Params struct {
	store map[string]string
}

// New returns an empty Params, then runs init (if non-nil) with args.
func New(init InitFunc, args ...any) *Params {
	p := &Params{store: make(map[string]string)}
	if init != nil {
		init(p, args...)
	}
	return p
}

// FromMap returns a Params seeded from props. Raw keys are lower-cased on
// insertion; entries whose raw key starts with ReservedPrefix are silently
// dropped, and entries with an empty value yield no key at all (same rule as
// Set). Raw keys that collide after lowercasing are resolved
// deterministically: keys are visited in sorted order and the last write
// wins, so of "Foo" and "foo" the value under "foo" survives.
//
// init (if non-nil) runs with args after the store is populated.
func FromMap(props map[string]string, init InitFunc, args ...any) *Params {
	p := &Params{store: make(map[string]string, len(props))}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if strings.HasPrefix(k, ReservedPrefix) {
			continue
		}
		p.Set(k, props[k])
	}

	if init != nil {
		init(p, args...)
	}
	return p
}

//
// Public API
//

// Get returns the value stored under key (case-insensitive). ok is false when
// the parameter is absent; absence is the only unset sentinel.
func (p *Params) Get(key string) (value string, ok bool) {
	value, ok = p.store[normalize(key)]
	return value, ok
}

// GetDefault returns the value stored under key, or def unchanged when the
// parameter is absent.
func (p *Params) GetDefault(key, def string) string {
	if v, ok := p.store[normalize(key)]; ok {
		return v
	}
	return def
}

// Value returns the value stored under key, or "" when the parameter is
// absent. It is the empty-default twin of GetDefault and is kept distinct
// because callers rely on the empty-string fallback.
func (p *Params) Value(key string) string {
	return p.store[normalize(key)]
}

// Set stores value under key (case-insensitive), overwriting any existing
// value. An empty value removes the parameter instead; removing an absent
// parameter is a no-op.
func (p *Params) Set(key, value string) {
	k := normalize(key)
	if value == "" {
		delete(p.store, k)
		return
	}
	p.store[k] = value
}

// Has reports whether a parameter is stored under key (case-insensitive).
func (p *Params) Has(key string) bool {
	_, ok := p.store[normalize(key)]
	return ok
}

// Names returns a snapshot of all stored parameter names in their normalized
// (lowercase) form. Order is unspecified.
func (p *Params) Names() []string {
	names := make([]string, 0, len(p.store))
	for k := range p.store {
		names = append(names, k)
	}
	return names
}

// Len returns the number of stored parameters.
func (p *Params) Len() int {
	return len(p.store)
}

func normalize(key string) string {
	return strings.ToLower(key)
}
