package config

import (
	"os"
	"path/filepath"
	"testing"

	"sandtable/internal/material"
	"sandtable/internal/sand"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def := sand.DefaultConfig()
	if cfg.Width != def.Width || cfg.Height != def.Height || cfg.Seed != def.Seed {
		t.Fatalf("empty file should keep defaults, got %+v", cfg)
	}
}

func TestParseFull(t *testing.T) {
	doc := []byte(`
width: 64
height: 48
seed: 7
materials:
  - material: fire
    lifetime: 10
  - material: wood
    flammability: 0.5
    color: "#804020"
`)
	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Seed != 7 {
		t.Fatalf("parsed %+v", cfg)
	}

	w, err := sand.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	if got := w.Registry().Lookup(material.Fire).Lifetime; got != 10 {
		t.Fatalf("fire lifetime = %d, want 10", got)
	}
	p := w.Registry().Lookup(material.Wood)
	if p.Flammability != 0.5 {
		t.Fatalf("wood flammability = %v, want 0.5", p.Flammability)
	}
	if p.Color.R != 0x80 || p.Color.G != 0x40 || p.Color.B != 0x20 {
		t.Fatalf("wood color = %+v", p.Color)
	}
}

func TestParseRejections(t *testing.T) {
	cases := map[string]string{
		"malformed yaml":   "width: [",
		"negative width":   "width: -3",
		"unknown material": "materials:\n  - material: plasma\n",
		"bad flammability": "materials:\n  - material: wood\n    flammability: 2\n",
		"bad color":        "materials:\n  - material: wood\n    color: reddish\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	if err := os.WriteFile(path, []byte("width: 20\nheight: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 20 || cfg.Height != 10 {
		t.Fatalf("loaded %+v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("missing file must error")
	}
}
