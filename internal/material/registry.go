package material

import (
	"fmt"
	"image/color"
	"strings"
)

// Override tunes a single material's parameters at registry construction.
// Nil fields keep the built-in value. Color is "#RRGGBB".
type Override struct {
	Material     string
	Density      *int
	Flammability *float64
	Lifetime     *uint8
	Color        *string
}

// Registry is the read-only table of material properties. It is fully
// populated at construction and never mutated afterwards.
type Registry struct {
	props   [Count]Properties
	palette [Count][]color.RGBA
}

// Default returns a registry with the built-in material table.
func Default() *Registry {
	r, _ := New()
	return r
}

// New builds a registry from the built-in table with the provided overrides
// applied on top. Unknown material names and malformed colors are rejected.
func New(overrides ...Override) (*Registry, error) {
	r := &Registry{props: defaultTable()}
	for _, o := range overrides {
		id, ok := r.IDByName(o.Material)
		if !ok || id == Boundary {
			return nil, fmt.Errorf("material registry: unknown material %q", o.Material)
		}
		p := r.props[id]
		if o.Density != nil {
			p.Density = *o.Density
		}
		if o.Flammability != nil {
			if *o.Flammability < 0 || *o.Flammability > 1 {
				return nil, fmt.Errorf("material registry: %s flammability %v out of [0,1]", o.Material, *o.Flammability)
			}
			p.Flammability = *o.Flammability
		}
		if o.Lifetime != nil {
			p.Lifetime = *o.Lifetime
		}
		if o.Color != nil {
			c, err := parseHexColor(*o.Color)
			if err != nil {
				return nil, fmt.Errorf("material registry: %s: %w", o.Material, err)
			}
			p.Color = c
		}
		r.props[id] = p
	}
	r.buildPalette()
	return r, nil
}

// Lookup returns the properties of id. Ids outside the enumeration return the
// Empty properties; callers that care use Valid to distinguish.
func (r *Registry) Lookup(id ID) Properties {
	if !r.Valid(id) {
		return r.props[Empty]
	}
	return r.props[id]
}

// Classify returns the movement phase of id.
func (r *Registry) Classify(id ID) Phase {
	return r.Lookup(id).Phase
}

// Valid reports whether id belongs to the registered enumeration.
func (r *Registry) Valid(id ID) bool {
	return id < idCount
}

// IDByName resolves a material by its lowercase name.
func (r *Registry) IDByName(name string) (ID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := 0; i < Count; i++ {
		if r.props[i].Name == name {
			return ID(i), true
		}
	}
	return Empty, false
}

// Shades returns the jittered color variants for id. There is always at least
// one entry.
func (r *Registry) Shades(id ID) []color.RGBA {
	if !r.Valid(id) {
		id = Empty
	}
	return r.palette[id]
}

func (r *Registry) buildPalette() {
	for i := 0; i < Count; i++ {
		p := r.props[i]
		n := int(p.Shades)
		if n < 1 {
			n = 1
		}
		variants := make([]color.RGBA, n)
		for s := 0; s < n; s++ {
			variants[s] = shade(p.Color, s, n)
		}
		r.palette[i] = variants
	}
}

// shade darkens a color progressively across its variant slots; slot 0 is the
// base color.
func shade(c color.RGBA, slot, total int) color.RGBA {
	if slot == 0 || total < 2 {
		return c
	}
	f := 1 - 0.08*float64(slot)
	if f < 0 {
		f = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R)*f + 0.5),
		G: uint8(float64(c.G)*f + 0.5),
		B: uint8(float64(c.B)*f + 0.5),
		A: c.A,
	}
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q, want #RRGGBB", s)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := hexByte(s[i*2], s[i*2+1])
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q, want #RRGGBB", s)
		}
		rgb[i] = v
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

func hexByte(hi, lo byte) (uint8, error) {
	h, err := hexNibble(hi)
	if err != nil {
		return 0, err
	}
	l, err := hexNibble(lo)
	if err != nil {
		return 0, err
	}
	return h<<4 | l, nil
}

func hexNibble(b byte) (uint8, error) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', nil
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, nil
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, nil
	}
	return 0, fmt.Errorf("invalid hex digit %q", b)
}
