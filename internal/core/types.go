// Package core defines the contract between grid simulations and their
// frontends, plus the shared timing helper.
package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is what a grid simulation presents to its frontends: stepping,
// reseeding, raw cell access for analysis, and frame rendering for display.
// Cells exposes one byte per cell holding the material id at that position.
type Sim interface {
	Name() string
	Size() Size
	Tick() uint64
	Reset(seed int64)
	Step()
	Cells() []uint8
	RenderRGBA(dst []byte)
}

// Factory constructs a Sim from flag-style key/value options.
type Factory func(cfg map[string]string) Sim

var factories = map[string]Factory{}

// Register adds a factory under name. Factories register from package init
// functions, so an empty name, nil factory, or duplicate name is a
// programming error.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		panic("core: Register with empty name or nil factory")
	}
	if _, dup := factories[name]; dup {
		panic("core: duplicate simulation " + name)
	}
	factories[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := factories[name]
	return f, ok
}

// Names lists registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
