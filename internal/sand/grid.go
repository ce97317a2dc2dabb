// Package sand implements a falling-sand cellular automaton: a dense 2D grid
// of material cells advanced by local per-cell rules once per tick.
package sand

import (
	"fmt"

	"sandtable/internal/material"
)

// Cell is one grid position's state: a material id plus its remaining decay
// lifetime. Cells are values; the grid owns all storage.
type Cell struct {
	ID   material.ID
	Life uint8
}

// Grid stores cells in row-major order with fixed dimensions. Out-of-range
// reads return the boundary material; out-of-range writes are no-ops, so
// every operation is total over the coordinate space.
type Grid struct {
	w, h int
	ids  []uint8
	life []uint8
	// stamp records the tick a cell was last processed or written by the
	// engine. Comparing against the current tick replaces a full
	// processed-flag clear at the start of each scan.
	stamp []uint64
	reg   *material.Registry
}

// NewGrid allocates a w by h grid of Empty cells. Non-positive dimensions are
// rejected; the grid is never partially constructed.
func NewGrid(w, h int, reg *material.Registry) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("sand: invalid grid dimensions %dx%d", w, h)
	}
	total := w * h
	return &Grid{
		w:     w,
		h:     h,
		ids:   make([]uint8, total),
		life:  make([]uint8, total),
		stamp: make([]uint64, total),
		reg:   reg,
	}, nil
}

// Size reports the grid dimensions.
func (g *Grid) Size() (w, h int) { return g.w, g.h }

// InBounds reports whether (x, y) addresses a real cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

func (g *Grid) index(x, y int) int { return y*g.w + x }

// Get returns the cell at (x, y), or a boundary cell when out of range.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{ID: material.Boundary}
	}
	i := g.index(x, y)
	return Cell{ID: material.ID(g.ids[i]), Life: g.life[i]}
}

// Set overwrites the material at (x, y) and resets the cell's transient state
// to the material's defaults. Out of range is a no-op.
func (g *Grid) Set(x, y int, id material.ID) {
	if !g.InBounds(x, y) || id == material.Boundary {
		return
	}
	i := g.index(x, y)
	g.ids[i] = uint8(id)
	g.life[i] = g.reg.Lookup(id).Lifetime
}

// Swap exchanges the full cell contents of two positions. If either point is
// out of range nothing happens, including to the in-range cell.
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
		return
	}
	a, b := g.index(x1, y1), g.index(x2, y2)
	g.ids[a], g.ids[b] = g.ids[b], g.ids[a]
	g.life[a], g.life[b] = g.life[b], g.life[a]
	g.stamp[a], g.stamp[b] = g.stamp[b], g.stamp[a]
}

// Neighbors8 calls fn for each of the up-to-eight adjacent in-bounds cells.
// Iteration stops early when fn returns false. The callback must not mutate
// the grid.
func (g *Grid) Neighbors8(x, y int, fn func(dx, dy int, c Cell) bool) {
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.w {
				continue
			}
			i := g.index(nx, ny)
			if !fn(dx, dy, Cell{ID: material.ID(g.ids[i]), Life: g.life[i]}) {
				return
			}
		}
	}
}

// Cells exposes the raw material-id buffer in row-major order.
func (g *Grid) Cells() []uint8 { return g.ids }

// Clear resets every cell to Empty and forgets all tick stamps.
func (g *Grid) Clear() {
	for i := range g.ids {
		g.ids[i] = uint8(material.Empty)
		g.life[i] = 0
		g.stamp[i] = 0
	}
}

// Count returns how many cells currently hold the given material.
func (g *Grid) Count(id material.ID) int {
	n := 0
	v := uint8(id)
	for _, c := range g.ids {
		if c == v {
			n++
		}
	}
	return n
}

func (g *Grid) processed(x, y int, tick uint64) bool {
	return g.stamp[g.index(x, y)] == tick
}

func (g *Grid) markProcessed(x, y int, tick uint64) {
	g.stamp[g.index(x, y)] = tick
}

func (g *Grid) decrementLife(x, y int) uint8 {
	i := g.index(x, y)
	if g.life[i] > 0 {
		g.life[i]--
	}
	return g.life[i]
}
