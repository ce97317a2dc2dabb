//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sandtable/internal/material"
	"sandtable/internal/render"
	"sandtable/internal/sand"
	"sandtable/internal/ui"
)

// brushKeys maps number keys to paintable materials.
var brushKeys = []struct {
	key ebiten.Key
	id  material.ID
}{
	{ebiten.Key1, material.Sand},
	{ebiten.Key2, material.Water},
	{ebiten.Key3, material.Stone},
	{ebiten.Key4, material.Wood},
	{ebiten.Key5, material.Fire},
	{ebiten.Key6, material.Acid},
	{ebiten.Key7, material.Smoke},
}

const maxBrushRadius = 32

// Game adapts a sand world to the ebiten.Game interface: it paints brush
// input into the grid, steps the simulation, and blits the frame.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	hud     *ui.HUD

	scale    int
	seed     int64
	paused   bool
	tickOnce bool

	brush  material.ID
	radius int

	// last brush cell, for stroke interpolation across fast drags
	lastX, lastY int
	drawing      bool
}

// New constructs a Game for the provided world.
func New(world *sand.World, scale int, seed int64) *Game {
	size := world.Size()
	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(),
		scale:   scale,
		seed:    seed,
		brush:   material.Sand,
		radius:  3,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
	g.drawing = false
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	for _, bk := range brushKeys {
		if inpututil.IsKeyJustPressed(bk.key) {
			g.brush = bk.id
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		if g.radius < maxBrushRadius {
			g.radius++
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		if g.radius > 0 {
			g.radius--
		}
	}

	g.handlePointer()

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// handlePointer applies the brush under the cursor, stroking from the last
// sample so fast drags leave no gaps.
func (g *Game) handlePointer() {
	paint := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	erase := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !paint && !erase {
		g.drawing = false
		return
	}

	mode := sand.BrushPaint
	if erase {
		mode = sand.BrushErase
	}
	cx, cy := ebiten.CursorPosition()
	gx, gy := cx/g.scale, cy/g.scale

	if g.drawing {
		g.world.Grid().Stroke(g.lastX, g.lastY, gx, gy, g.radius, g.brush, mode)
	} else {
		g.world.Grid().ApplyBrush(gx, gy, g.radius, g.brush, mode)
		g.drawing = true
	}
	g.lastX, g.lastY = gx, gy
}

// Draw renders the current frame and overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world, g.scale)
	g.hud.Draw(screen, ui.Status{
		Material: g.world.Registry().Lookup(g.brush).Name,
		Radius:   g.radius,
		Paused:   g.paused,
		Tick:     g.world.Tick(),
		Census:   g.censusLines(),
	})
}

func (g *Game) censusLines() []string {
	counts := g.world.Census()
	lines := make([]string, 0, 4)
	for id, n := range counts {
		if n == 0 || material.ID(id) == material.Empty {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %d", g.world.Registry().Lookup(material.ID(id)).Name, n))
	}
	return lines
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}
