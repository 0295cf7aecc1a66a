package shader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func names(r *Registry) []string {
	var out []string
	for _, d := range r.Descriptors() {
		out = append(out, d.Name()+d.StageExtension())
	}
	return out
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry(
		New("Sky", "Sky.frag"),
		New("Sky", "Sky.vert"),
		New("UI", "UI.vert"),
	)

	want := []string{"Sky.frag", "Sky.vert", "UI.vert"}
	if diff := cmp.Diff(want, names(r)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryIsReadOnly(t *testing.T) {
	ds := []Descriptor{New("Sky", "Sky.frag"), New("UI", "UI.vert")}
	r := NewRegistry(ds...)

	ds[0] = New("Changed", "Changed.comp")
	got := r.Descriptors()
	got[1] = New("Changed", "Changed.comp")

	if diff := cmp.Diff([]string{"Sky.frag", "UI.vert"}, names(r)); diff != "" {
		t.Errorf("registry was mutated (-want +got):\n%s", diff)
	}
}

func TestRegistryFilter(t *testing.T) {
	r := NewRegistry(
		New("Particles", "Particles.frag"),
		New("Particles", "Particles.vert"),
		New("Particles", "Particles.geom"),
		New("Sky", "Sky.frag"),
	)

	frag := r.Filter(StageFragment)
	if diff := cmp.Diff([]string{"Particles.frag", "Sky.frag"}, names(frag)); diff != "" {
		t.Errorf("filter mismatch (-want +got):\n%s", diff)
	}
	if n := r.Filter(StageTessControl).Len(); n != 0 {
		t.Errorf("expected empty registry, got %d entries", n)
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	if r.Len() != 55 {
		t.Fatalf("expected 55 shaders, got %d", r.Len())
	}

	ds := r.Descriptors()
	if first := ds[0]; first.Name() != "ForwardPBR_NoLR" || first.Params() != "-Od" {
		t.Errorf("unexpected first descriptor %v", first)
	}
	if last := ds[len(ds)-1]; last.OutputFilename() != "Simple_anim.vert.spv" {
		t.Errorf("unexpected last output %s", last.OutputFilename())
	}

	for i, d := range ds {
		if err := d.ValidateStrict(); err != nil {
			t.Errorf("shader %d: %v", i, err)
		}
	}
}

func TestManifestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shaders.yaml")

	if err := SaveManifest(path, Default()); err != nil {
		t.Fatalf("failed to save manifest: %v", err)
	}

	loaded, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("failed to load manifest: %v", err)
	}

	if diff := cmp.Diff(Default().Manifest(), loaded.Manifest()); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestParseManifest(t *testing.T) {
	yamlContent := `
shaders:
  - name: PBR_LR
    source: PBR.frag
    params: -DLOCAL_REFLECTIONS=1
  - name: Sky
    source: Sky.vert
`
	r, err := ParseManifest([]byte(yamlContent))
	if err != nil {
		t.Fatalf("failed to parse manifest: %v", err)
	}

	ds := r.Descriptors()
	if len(ds) != 2 {
		t.Fatalf("expected 2 shaders, got %d", len(ds))
	}
	if ds[0].Params() != "-DLOCAL_REFLECTIONS=1" {
		t.Errorf("unexpected params %q", ds[0].Params())
	}
	if ds[1].Stage() != StageVertex {
		t.Errorf("expected vertex stage, got %v", ds[1].Stage())
	}
}

func TestParseManifestInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "shaders: [name: : :"},
		{"missing name", "shaders:\n  - source: Sky.frag\n"},
		{"missing source", "shaders:\n  - name: Sky\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseManifest([]byte(tt.content)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadManifestMissing(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
