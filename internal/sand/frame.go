package sand

import (
	"sandtable/internal/material"
	"sandtable/pkg/core"
)

// jitterSalt seeds the per-cell shade pick. Coordinate-seeded, not tick-seeded,
// so a resting particle keeps a steady color instead of flickering.
const jitterSalt = 0x5a17ab1e

// RenderRGBA fills dst with one RGBA pixel per cell, row-major, from the
// registry palette with a deterministic per-coordinate shade jitter. dst must
// hold at least 4*w*h bytes. Pure read of the grid.
func (g *Grid) RenderRGBA(dst []byte) {
	if len(dst) < 4*g.w*g.h {
		return
	}
	i := 0
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			shades := g.reg.Shades(material.ID(g.ids[i]))
			c := shades[0]
			if len(shades) > 1 {
				c = shades[core.Hash2(jitterSalt, x, y)%uint64(len(shades))]
			}
			base := i * 4
			dst[base+0] = c.R
			dst[base+1] = c.G
			dst[base+2] = c.B
			dst[base+3] = c.A
			i++
		}
	}
}
