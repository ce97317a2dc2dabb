package sand

import (
	"sandtable/internal/core"
	"sandtable/internal/material"
)

// World bundles the grid, the material registry, and the update engine into a
// single simulation instance. The world exclusively owns the grid; callers
// borrow access through its methods and must not retain cells across ticks.
type World struct {
	cfg    Config
	reg    *material.Registry
	grid   *Grid
	engine *Engine
}

// New returns a world with the given dimensions and default materials.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig constructs a world from the provided options. Invalid
// dimensions or material overrides are rejected; no partially constructed
// world is ever returned.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	reg, err := material.New(cfg.Materials...)
	if err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height, reg)
	if err != nil {
		return nil, err
	}
	return &World{
		cfg:    cfg,
		reg:    reg,
		grid:   grid,
		engine: NewEngine(reg, cfg.Seed),
	}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size {
	gw, gh := w.grid.Size()
	return core.Size{W: gw, H: gh}
}

// Cells exposes the raw material-id buffer.
func (w *World) Cells() []uint8 { return w.grid.Cells() }

// Grid exposes the owned grid for brush and inspection access.
func (w *World) Grid() *Grid { return w.grid }

// Registry exposes the material table.
func (w *World) Registry() *material.Registry { return w.reg }

// Tick reports the number of completed simulation steps.
func (w *World) Tick() uint64 { return w.engine.Tick() }

// Reset clears the grid and rewinds the tick counter. A zero seed keeps the
// configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.grid.Clear()
	w.engine.Reset(seed)
}

// Step advances the simulation by one tick.
func (w *World) Step() {
	w.engine.Step(w.grid)
}

// RenderRGBA writes the current frame into dst, one RGBA pixel per cell.
func (w *World) RenderRGBA(dst []byte) {
	w.grid.RenderRGBA(dst)
}

// Census counts cells per material id.
func (w *World) Census() [material.Count]int {
	var counts [material.Count]int
	for _, id := range w.grid.Cells() {
		if int(id) < material.Count {
			counts[id]++
		}
	}
	return counts
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		world, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			// FromMap only emits validated values; reaching this is a
			// programming error in the factory itself.
			panic(err)
		}
		return world
	})
}
