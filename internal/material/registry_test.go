package material

import "testing"

func TestLookupUnknownIDDegradesToEmpty(t *testing.T) {
	reg := Default()
	p := reg.Lookup(ID(200))
	if p.Name != "empty" {
		t.Fatalf("unknown id resolved to %q, want empty", p.Name)
	}
	if reg.Valid(ID(200)) {
		t.Fatal("out-of-range id must not be valid")
	}
	if !reg.Valid(Boundary) {
		t.Fatal("boundary belongs to the enumeration")
	}
}

func TestClassify(t *testing.T) {
	reg := Default()
	cases := []struct {
		id   ID
		want Phase
	}{
		{Stone, PhaseStatic},
		{Wood, PhaseStatic},
		{Sand, PhaseGranular},
		{Water, PhaseLiquid},
		{Acid, PhaseLiquid},
		{Smoke, PhaseGas},
		{Fire, PhaseStatic},
		{Boundary, PhaseStatic},
	}
	for _, c := range cases {
		if got := reg.Classify(c.id); got != c.want {
			t.Errorf("Classify(%s) = %d, want %d", reg.Lookup(c.id).Name, got, c.want)
		}
	}
}

func TestDensityOrdering(t *testing.T) {
	reg := Default()
	if reg.Lookup(Sand).Density <= reg.Lookup(Water).Density {
		t.Fatal("sand must be denser than water")
	}
	if reg.Lookup(Acid).Density <= reg.Lookup(Water).Density {
		t.Fatal("acid must be denser than water")
	}
	if reg.Lookup(Smoke).Density <= reg.Lookup(Empty).Density {
		t.Fatal("smoke must be denser than empty")
	}
	if reg.Lookup(Boundary).Density <= reg.Lookup(Stone).Density {
		t.Fatal("boundary must out-rank every mover")
	}
}

func TestIDByName(t *testing.T) {
	reg := Default()
	id, ok := reg.IDByName("  Water ")
	if !ok || id != Water {
		t.Fatalf("IDByName(Water) = (%d, %v)", id, ok)
	}
	if _, ok := reg.IDByName("plasma"); ok {
		t.Fatal("unregistered name must not resolve")
	}
}

func TestOverrides(t *testing.T) {
	d := 77
	f := 0.9
	l := uint8(5)
	c := "#ff0000"
	reg, err := New(Override{
		Material:     "wood",
		Density:      &d,
		Flammability: &f,
		Lifetime:     &l,
		Color:        &c,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := reg.Lookup(Wood)
	if p.Density != 77 || p.Flammability != 0.9 || p.Lifetime != 5 {
		t.Fatalf("override not applied: %+v", p)
	}
	if p.Color.R != 255 || p.Color.G != 0 || p.Color.B != 0 {
		t.Fatalf("color override not applied: %+v", p.Color)
	}
}

func TestOverrideRejections(t *testing.T) {
	if _, err := New(Override{Material: "plasma"}); err == nil {
		t.Fatal("unknown material name must be rejected")
	}
	bad := 1.5
	if _, err := New(Override{Material: "wood", Flammability: &bad}); err == nil {
		t.Fatal("out-of-range flammability must be rejected")
	}
	color := "red"
	if _, err := New(Override{Material: "wood", Color: &color}); err == nil {
		t.Fatal("malformed color must be rejected")
	}
}

func TestShades(t *testing.T) {
	reg := Default()
	for id := ID(0); id < idCount; id++ {
		shades := reg.Shades(id)
		if len(shades) == 0 {
			t.Fatalf("%s has no shade variants", reg.Lookup(id).Name)
		}
		if shades[0] != reg.Lookup(id).Color {
			t.Fatalf("%s shade 0 must be the base color", reg.Lookup(id).Name)
		}
	}
	if len(reg.Shades(Sand)) < 2 {
		t.Fatal("sand should carry visual texture variants")
	}
}
