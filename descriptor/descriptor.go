package descriptor

import (
	"github.com/comalice/paramx"
)

// Well-known parameter names.
const (
	NameParam    = "name"
	VersionParam = "version"
)

// Descriptor is a package descriptor: a paramx container plus identity
// accessors over two well-known parameters.
type Descriptor struct {
	*paramx.Params
}

// identityInit seeds the well-known identity parameters. It is installed as
// the post-construction hook, so it runs after the store is populated and
// therefore overrides any identity values present in a seed mapping.
func identityInit(p *paramx.Params, args ...any) {
	if len(args) > 0 {
		if name, ok := args[0].(string); ok {
			p.Set(NameParam, name)
		}
	}
	if len(args) > 1 {
		if version, ok := args[1].(string); ok {
			p.Set(VersionParam, version)
		}
	}
}

// New returns a Descriptor holding only its identity parameters.
func New(name, version string) *Descriptor {
	return &Descriptor{Params: paramx.New(identityInit, name, version)}
}

// FromProps returns a Descriptor seeded from an external property mapping,
// following the paramx.FromMap rules (lowercased keys, reserved-prefix
// entries dropped, empty values absent).
func FromProps(props map[string]string) *Descriptor {
	return &Descriptor{Params: paramx.FromMap(props, nil)}
}

// Name returns the descriptor's name, or "" when unset.
func (d *Descriptor) Name() string {
	return d.Value(NameParam)
}

// Version returns the descriptor's version, or "" when unset.
func (d *Descriptor) Version() string {
	return d.Value(VersionParam)
}
