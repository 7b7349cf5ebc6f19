package descriptor

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a descriptor.
type Document struct {
	Name       string            `yaml:"name"`
	Version    string            `yaml:"version"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// Validate checks the document for the fields every descriptor must carry.
func (doc *Document) Validate() error {
	if doc.Name == "" {
		return errors.New("descriptor name is required")
	}
	if doc.Version == "" {
		return errors.New("descriptor version is required")
	}
	return nil
}

// Parse decodes a YAML descriptor document and builds a Descriptor from it.
// Properties pass through the paramx.FromMap rules; the document's name and
// version always win over same-named properties.
func Parse(data []byte) (*Descriptor, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode descriptor document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	d := FromProps(doc.Properties)
	d.Set(NameParam, doc.Name)
	d.Set(VersionParam, doc.Version)
	return d, nil
}

// Load reads a YAML descriptor document from r and builds a Descriptor.
func Load(r io.Reader) (*Descriptor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read descriptor document: %w", err)
	}
	return Parse(data)
}
