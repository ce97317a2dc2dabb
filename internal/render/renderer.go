//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameSource produces an RGBA frame, one pixel per cell, into dst.
type FrameSource interface {
	RenderRGBA(dst []byte)
}

// GridPainter uploads a simulation frame into a single image and draws it
// scaled. The pixel buffer and image are allocated once and reused.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit renders the source's current frame onto dst at the given scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, src FrameSource, scale int) {
	src.RenderRGBA(gp.buf)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
