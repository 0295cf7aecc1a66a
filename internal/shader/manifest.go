package shader

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML form of a registry.
type Manifest struct {
	Shaders []ManifestEntry `yaml:"shaders"`
}

// ManifestEntry is one descriptor in a manifest.
type ManifestEntry struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Params string `yaml:"params,omitempty"`
}

// LoadManifest reads a registry from a YAML manifest file.
func LoadManifest(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	reg, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// ParseManifest decodes a YAML manifest. Every entry must carry a name and a source.
func ParseManifest(data []byte) (*Registry, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	ds := make([]Descriptor, 0, len(m.Shaders))
	for i, e := range m.Shaders {
		d := New(e.Name, e.Source, e.Params)
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("shader %d: %w", i, err)
		}
		ds = append(ds, d)
	}
	return &Registry{descriptors: ds}, nil
}

// Manifest converts the registry to its YAML form.
func (r *Registry) Manifest() Manifest {
	m := Manifest{Shaders: make([]ManifestEntry, 0, len(r.descriptors))}
	for _, d := range r.descriptors {
		m.Shaders = append(m.Shaders, ManifestEntry{
			Name:   d.name,
			Source: d.source,
			Params: d.params,
		})
	}
	return m
}

// SaveManifest writes the registry to path as YAML.
func SaveManifest(path string, r *Registry) error {
	// Create parent directory if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(r.Manifest())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
