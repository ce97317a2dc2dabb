//go:build !ebiten

package app

import (
	"errors"

	"sandtable/internal/sand"
)

var errNoGUI = errors.New("app: GUI disabled, build with -tags ebiten")

// Game is the headless stand-in compiled when the ebiten tag is absent. It
// keeps the GUI surface compiling; constructing one is an error.
type Game struct{}

func New(*sand.World, int, int64) *Game { panic(errNoGUI) }

func (g *Game) Reset(int64)                {}
func (g *Game) Update() error              { return errNoGUI }
func (g *Game) Draw(any)                   {}
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
