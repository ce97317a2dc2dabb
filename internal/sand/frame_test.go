package sand

import (
	"bytes"
	"slices"
	"testing"

	"sandtable/internal/material"
)

func TestRenderRGBADeterministic(t *testing.T) {
	w := testWorld(t, 16, 12)
	w.Grid().ApplyBrush(8, 6, 4, material.Sand, BrushPaint)

	size := w.Size()
	a := make([]byte, 4*size.W*size.H)
	b := make([]byte, 4*size.W*size.H)
	w.RenderRGBA(a)
	w.RenderRGBA(b)

	if !bytes.Equal(a, b) {
		t.Fatal("rendering the same grid twice must produce identical frames")
	}
}

func TestRenderRGBAColorsFromPalette(t *testing.T) {
	w := testWorld(t, 4, 4)
	w.Grid().Set(2, 1, material.Water)

	size := w.Size()
	buf := make([]byte, 4*size.W*size.H)
	w.RenderRGBA(buf)

	base := (1*size.W + 2) * 4
	pixel := [4]byte{buf[base], buf[base+1], buf[base+2], buf[base+3]}
	found := false
	for _, c := range w.Registry().Shades(material.Water) {
		if pixel == [4]byte{c.R, c.G, c.B, c.A} {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("water pixel %v not in the water palette", pixel)
	}
}

func TestRenderRGBAJitterVariesByCoordinate(t *testing.T) {
	w := testWorld(t, 32, 32)
	size := w.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			w.Grid().Set(x, y, material.Sand)
		}
	}
	buf := make([]byte, 4*size.W*size.H)
	w.RenderRGBA(buf)

	first := buf[0:4]
	uniform := true
	for i := 4; i < len(buf); i += 4 {
		if !bytes.Equal(first, buf[i:i+4]) {
			uniform = false
			break
		}
	}
	if uniform {
		t.Fatal("a solid sand field should show shade variation")
	}
}

func TestRenderRGBADoesNotMutate(t *testing.T) {
	w := testWorld(t, 8, 8)
	w.Grid().ApplyBrush(4, 4, 3, material.Fire, BrushPaint)
	before := append([]uint8(nil), w.Cells()...)

	buf := make([]byte, 4*8*8)
	w.RenderRGBA(buf)

	if !slices.Equal(before, w.Cells()) {
		t.Fatal("rendering must be a pure read")
	}
}

func TestRenderRGBAShortBufferIsNoop(t *testing.T) {
	w := testWorld(t, 8, 8)
	buf := make([]byte, 10)
	w.RenderRGBA(buf) // must not panic
	for _, b := range buf {
		if b != 0 {
			t.Fatal("short buffer must be left untouched")
		}
	}
}
