package sand

import (
	"fmt"

	"sandtable/internal/material"
	"sandtable/pkg/core"
)

// Engine advances a grid one tick at a time. Rows are scanned bottom to top so
// a particle that fell this tick lands in an already-visited row and cannot
// fall again; within a row the column direction alternates pseudo-randomly per
// row to avoid a systematic left/right drift in piles and puddles.
type Engine struct {
	reg  *material.Registry
	seed int64
	tick uint64
}

// NewEngine returns an engine drawing its randomness from seed.
func NewEngine(reg *material.Registry, seed int64) *Engine {
	return &Engine{reg: reg, seed: seed}
}

// Tick reports the number of completed steps.
func (e *Engine) Tick() uint64 { return e.tick }

// Reset rewinds the tick counter and installs a new seed.
func (e *Engine) Reset(seed int64) {
	e.seed = seed
	e.tick = 0
}

// Step applies one full simulation tick to the grid. Outcomes are a pure
// function of (seed, tick, grid contents).
func (e *Engine) Step(g *Grid) {
	e.tick++
	rng := core.NewTickRNG(e.seed, e.tick)
	salt := uint64(e.seed) ^ e.tick*0x9e3779b97f4a7c15

	w, h := g.Size()
	for y := h - 1; y >= 0; y-- {
		dir := 1
		if core.Hash2(salt, y, 0)&1 == 1 {
			dir = -1
		}
		if dir == 1 {
			for x := 0; x < w; x++ {
				e.updateCell(g, rng, x, y, dir)
			}
		} else {
			for x := w - 1; x >= 0; x-- {
				e.updateCell(g, rng, x, y, dir)
			}
		}
	}
}

func (e *Engine) updateCell(g *Grid, rng *core.RNG, x, y, dir int) {
	c := g.Get(x, y)
	if c.ID == material.Empty {
		return
	}
	if g.processed(x, y, e.tick) {
		return
	}
	if !e.reg.Valid(c.ID) || c.ID == material.Boundary {
		// Registry/grid desynchronization. Unrecoverable; halt before
		// corrupting further state.
		panic(fmt.Sprintf("sand: unregistered material id %d at (%d, %d)", c.ID, x, y))
	}
	p := e.reg.Lookup(c.ID)

	// Each cell gets exactly one outcome per tick; reactions take priority
	// over movement.
	switch p.Reaction {
	case material.ReactBurn:
		e.burn(g, rng, x, y, p)
		return
	case material.ReactCorrode:
		if e.corrode(g, rng, x, y, p) {
			return
		}
	}

	switch p.Phase {
	case material.PhaseGranular:
		e.fall(g, x, y, dir, p, false)
	case material.PhaseLiquid:
		e.fall(g, x, y, dir, p, true)
	case material.PhaseGas:
		e.rise(g, x, y, dir, p)
	default:
		g.markProcessed(x, y, e.tick)
	}
}

// fall moves a particle down, then diagonally down on the row-bias side first,
// then (for liquids) sideways into empty space.
func (e *Engine) fall(g *Grid, x, y, dir int, p material.Properties, spread bool) {
	if e.tryMove(g, x, y, x, y+1, p) {
		return
	}
	if e.tryMove(g, x, y, x+dir, y+1, p) {
		return
	}
	if e.tryMove(g, x, y, x-dir, y+1, p) {
		return
	}
	if spread {
		if e.tryFlow(g, x, y, x+dir, y) {
			return
		}
		if e.tryFlow(g, x, y, x-dir, y) {
			return
		}
	}
	g.markProcessed(x, y, e.tick)
}

// rise is the inverse-gravity analogue for gases, with per-tick decay.
func (e *Engine) rise(g *Grid, x, y, dir int, p material.Properties) {
	if p.Lifetime > 0 && g.decrementLife(x, y) == 0 {
		g.Set(x, y, p.DecaysTo)
		g.markProcessed(x, y, e.tick)
		return
	}
	if e.tryFlow(g, x, y, x, y-1) {
		return
	}
	if e.tryFlow(g, x, y, x+dir, y-1) {
		return
	}
	if e.tryFlow(g, x, y, x-dir, y-1) {
		return
	}
	if e.tryFlow(g, x, y, x+dir, y) {
		return
	}
	g.markProcessed(x, y, e.tick)
}

// tryMove swaps the mover into the target if it is empty or holds a strictly
// less dense liquid or gas. Equal densities never swap, so facing particles
// cannot oscillate.
func (e *Engine) tryMove(g *Grid, x, y, tx, ty int, p material.Properties) bool {
	t := g.Get(tx, ty)
	if t.ID == material.Boundary {
		return false
	}
	if t.ID != material.Empty {
		tp := e.reg.Lookup(t.ID)
		if tp.Phase != material.PhaseLiquid && tp.Phase != material.PhaseGas {
			return false
		}
		if tp.Density >= p.Density {
			return false
		}
	}
	g.Swap(x, y, tx, ty)
	g.markProcessed(tx, ty, e.tick)
	g.markProcessed(x, y, e.tick)
	return true
}

// tryFlow moves into empty space only.
func (e *Engine) tryFlow(g *Grid, x, y, tx, ty int) bool {
	if g.Get(tx, ty).ID != material.Empty {
		return false
	}
	g.Swap(x, y, tx, ty)
	g.markProcessed(tx, ty, e.tick)
	g.markProcessed(x, y, e.tick)
	return true
}

// burn ignites flammable neighbors with their per-material probability, then
// burns down the fire's own lifetime; at zero the fire converts to its decay
// product.
func (e *Engine) burn(g *Grid, rng *core.RNG, x, y int, p material.Properties) {
	g.Neighbors8(x, y, func(dx, dy int, c Cell) bool {
		f := e.reg.Lookup(c.ID).Flammability
		if f > 0 && rng.Float64() < f {
			g.Set(x+dx, y+dy, material.Fire)
			g.markProcessed(x+dx, y+dy, e.tick)
		}
		return true
	})
	if p.Lifetime > 0 && g.decrementLife(x, y) == 0 {
		g.Set(x, y, p.DecaysTo)
	}
	g.markProcessed(x, y, e.tick)
}

// corrode dissolves one adjacent corrodible cell, spending a unit of the
// acid's quantity. Reports false when nothing nearby can be corroded, letting
// the acid move like a liquid instead.
func (e *Engine) corrode(g *Grid, rng *core.RNG, x, y int, p material.Properties) bool {
	var cand [8][2]int
	n := 0
	g.Neighbors8(x, y, func(dx, dy int, c Cell) bool {
		if e.reg.Lookup(c.ID).Corrodible {
			cand[n] = [2]int{dx, dy}
			n++
		}
		return true
	})
	if n == 0 {
		return false
	}
	d := cand[rng.IntN(n)]
	g.Set(x+d[0], y+d[1], material.Empty)
	g.markProcessed(x+d[0], y+d[1], e.tick)
	if p.Lifetime > 0 && g.decrementLife(x, y) == 0 {
		g.Set(x, y, p.DecaysTo)
	}
	g.markProcessed(x, y, e.tick)
	return true
}
