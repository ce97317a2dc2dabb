//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD draws the status text overlay: selected brush, pause state, and the
// live particle census.
type HUD struct {
	visible bool
}

// NewHUD returns a visible HUD.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() {
	if h != nil {
		h.visible = !h.visible
	}
}

// Status is the per-frame information the HUD displays.
type Status struct {
	Material string
	Radius   int
	Paused   bool
	Tick     uint64
	Census   []string
}

// Draw renders the status block in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if h == nil || !h.visible {
		return
	}
	state := "running"
	if s.Paused {
		state = "paused"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("brush: %s  radius: %d  [%s]  tick %d", s.Material, s.Radius, state, s.Tick), 2, 2)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tps: %.0f  fps: %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 2, 18)
	for i, line := range s.Census {
		ebitenutil.DebugPrintAt(screen, line, 2, 34+i*16)
	}
}
