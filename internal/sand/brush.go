package sand

import "sandtable/internal/material"

// BrushMode selects what a brush application does to the cells it covers.
type BrushMode uint8

const (
	// BrushPaint writes the requested material.
	BrushPaint BrushMode = iota
	// BrushErase writes Empty regardless of the requested material.
	BrushErase
)

// ApplyBrush writes the material into every in-bounds cell within the
// Euclidean radius of (cx, cy). Radius 0 covers the single center cell.
// Out-of-range cells are skipped; the call never fails.
func (g *Grid) ApplyBrush(cx, cy, radius int, id material.ID, mode BrushMode) {
	if mode == BrushErase {
		id = material.Empty
	}
	if radius < 0 {
		radius = 0
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			g.Set(cx+dx, cy+dy, id)
		}
	}
}

// Stroke applies the brush along the path between two drag samples so a fast
// cursor leaves no gaps. The path steps one cell per axis toward the end
// point, covering diagonals.
func (g *Grid) Stroke(x0, y0, x1, y1, radius int, id material.ID, mode BrushMode) {
	g.ApplyBrush(x0, y0, radius, id, mode)
	x, y := x0, y0
	for x != x1 || y != y1 {
		if x1 > x {
			x++
		} else if x1 < x {
			x--
		}
		if y1 > y {
			y++
		} else if y1 < y {
			y--
		}
		g.ApplyBrush(x, y, radius, id, mode)
	}
}
