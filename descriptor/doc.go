// Package descriptor builds package descriptors on top of the paramx
// container.
//
// A Descriptor embeds *paramx.Params and keeps its identity (name, version)
// as ordinary parameters under well-known names, so everything the container
// offers — case-insensitive lookup, boolean coercion, pattern enumeration —
// works on descriptor attributes unchanged.
//
// The package also decodes YAML descriptor documents. Decoding lives here
// rather than in paramx because the core container is stdlib-only; this is
// the adapter tier.
package descriptor
