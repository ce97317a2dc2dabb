//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD() *HUD { return nil }

// Toggle is a no-op in the headless build.
func (h *HUD) Toggle() {}

// Status is the per-frame information the HUD displays.
type Status struct {
	Material string
	Radius   int
	Paused   bool
	Tick     uint64
	Census   []string
}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, Status) {}
