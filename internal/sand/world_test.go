package sand

import (
	"slices"
	"testing"

	"sandtable/internal/core"
	"sandtable/internal/material"
)

func TestNewWithConfigRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := NewWithConfig(cfg); err == nil {
		t.Fatal("zero width must be rejected")
	}

	cfg = DefaultConfig()
	cfg.Materials = []material.Override{{Material: "unobtanium"}}
	if _, err := NewWithConfig(cfg); err == nil {
		t.Fatal("unknown material override must be rejected")
	}
}

func TestResetClearsAndRewinds(t *testing.T) {
	w := testWorld(t, 8, 8)
	w.Grid().ApplyBrush(4, 2, 2, material.Sand, BrushPaint)
	for i := 0; i < 5; i++ {
		w.Step()
	}
	if w.Tick() != 5 {
		t.Fatalf("tick = %d, want 5", w.Tick())
	}

	w.Reset(0)
	if w.Tick() != 0 {
		t.Fatal("reset must rewind the tick counter")
	}
	for _, id := range w.Cells() {
		if material.ID(id) != material.Empty {
			t.Fatal("reset must clear the grid")
		}
	}
}

func TestResetReproducesRun(t *testing.T) {
	run := func(w *World) []uint8 {
		w.Grid().ApplyBrush(8, 2, 3, material.Sand, BrushPaint)
		w.Grid().ApplyBrush(4, 8, 2, material.Water, BrushPaint)
		for i := 0; i < 30; i++ {
			w.Step()
		}
		return append([]uint8(nil), w.Cells()...)
	}

	w := testWorld(t, 16, 16)
	paintFloor(w)
	first := run(w)

	w.Reset(0)
	paintFloor(w)
	second := run(w)

	if !slices.Equal(first, second) {
		t.Fatal("reset with the config seed must reproduce the run")
	}
}

func TestFactoryRegistered(t *testing.T) {
	factory, ok := core.Lookup("sand")
	if !ok {
		t.Fatal("sand sim must self-register")
	}
	sim := factory(map[string]string{"w": "8", "h": "6"})
	if sim == nil {
		t.Fatal("factory returned nil")
	}
	if size := sim.Size(); size.W != 8 || size.H != 6 {
		t.Fatalf("factory size = %dx%d, want 8x6", size.W, size.H)
	}
	if sim.Name() != "sand" {
		t.Fatalf("factory name = %q", sim.Name())
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":             "12",
		"h":             "34",
		"seed":          "-5",
		"fire_lifetime": "9",
	})
	if cfg.Width != 12 || cfg.Height != 34 || cfg.Seed != -5 {
		t.Fatalf("FromMap parsed %+v", cfg)
	}
	w := mustWorld(t, cfg)
	if got := w.Registry().Lookup(material.Fire).Lifetime; got != 9 {
		t.Fatalf("fire lifetime override = %d, want 9", got)
	}

	// Garbage values fall back to defaults rather than failing.
	cfg = FromMap(map[string]string{"w": "zero", "h": "-4"})
	if cfg.Width != DefaultConfig().Width || cfg.Height != DefaultConfig().Height {
		t.Fatalf("bad values should keep defaults, got %+v", cfg)
	}
}

func TestCensus(t *testing.T) {
	w := testWorld(t, 6, 6)
	w.Grid().Set(0, 0, material.Sand)
	w.Grid().Set(1, 0, material.Sand)
	w.Grid().Set(2, 0, material.Fire)

	counts := w.Census()
	if counts[material.Sand] != 2 || counts[material.Fire] != 1 {
		t.Fatalf("census = %v", counts)
	}
	if counts[material.Empty] != 33 {
		t.Fatalf("census empty = %d, want 33", counts[material.Empty])
	}
}
