// Command sandtui runs the sandbox in a terminal: cells are drawn as colored
// character backgrounds and the mouse paints the selected material.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"sandtable/internal/config"
	"sandtable/internal/core"
	"sandtable/internal/material"
	"sandtable/internal/sand"
)

var brushKeys = map[rune]material.ID{
	'1': material.Sand,
	'2': material.Water,
	'3': material.Stone,
	'4': material.Wood,
	'5': material.Fire,
	'6': material.Acid,
	'7': material.Smoke,
}

type session struct {
	screen tcell.Screen
	world  *sand.World
	buf    []byte

	seed   int64
	paused bool

	brush  material.ID
	radius int

	lastX, lastY int
	drawing      bool
}

func main() {
	var (
		file = flag.String("config", "", "optional YAML world file")
		seed = flag.Int64("seed", 1337, "seed for randomized tie-breaking")
		tps  = flag.Int("tps", 30, "simulation ticks per second")
	)
	flag.Parse()

	if err := run(*file, *seed, *tps); err != nil {
		log.Fatal(err)
	}
}

func run(file string, seed int64, tps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	termW, termH := screen.Size()
	cfg := sand.DefaultConfig()
	cfg.Seed = seed
	// Leave the bottom row for the status line.
	cfg.Width = termW
	cfg.Height = termH - 1
	if cfg.Height < 1 {
		cfg.Height = 1
	}
	if file != "" {
		cfg, err = config.Load(file)
		if err != nil {
			return err
		}
	}

	world, err := sand.NewWithConfig(cfg)
	if err != nil {
		return err
	}

	s := &session{
		screen: screen,
		world:  world,
		buf:    make([]byte, 4*cfg.Width*cfg.Height),
		seed:   cfg.Seed,
		brush:  material.Sand,
		radius: 1,
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			events <- ev
		}
	}()

	clock := core.NewClock(tps)
	frame := time.NewTicker(time.Second / 30)
	defer frame.Stop()

	for {
		select {
		case <-quit:
			return nil
		case ev := <-events:
			if done := s.handleEvent(ev); done {
				return nil
			}
		case <-frame.C:
			for n := clock.Advance(time.Now()); n > 0; n-- {
				if !s.paused {
					s.world.Step()
				}
			}
			s.draw()
		}
	}
}

func (s *session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune:
			return s.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		s.handleMouse(ev)
	}
	return false
}

func (s *session) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case ' ':
		s.paused = !s.paused
	case 'n':
		s.world.Step()
	case 'r':
		s.world.Reset(s.seed)
	case '+', '=':
		if s.radius < 16 {
			s.radius++
		}
	case '-':
		if s.radius > 0 {
			s.radius--
		}
	default:
		if id, ok := brushKeys[r]; ok {
			s.brush = id
		}
	}
	return false
}

func (s *session) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	paint := buttons&tcell.Button1 != 0
	erase := buttons&(tcell.Button2|tcell.Button3) != 0
	if !paint && !erase {
		s.drawing = false
		return
	}
	mode := sand.BrushPaint
	if erase {
		mode = sand.BrushErase
	}
	if s.drawing {
		s.world.Grid().Stroke(s.lastX, s.lastY, x, y, s.radius, s.brush, mode)
	} else {
		s.world.Grid().ApplyBrush(x, y, s.radius, s.brush, mode)
		s.drawing = true
	}
	s.lastX, s.lastY = x, y
}

func (s *session) draw() {
	size := s.world.Size()
	s.world.RenderRGBA(s.buf)

	i := 0
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			base := i * 4
			bg := tcell.NewRGBColor(int32(s.buf[base]), int32(s.buf[base+1]), int32(s.buf[base+2]))
			s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(bg))
			i++
		}
	}

	state := "running"
	if s.paused {
		state = "paused"
	}
	status := fmt.Sprintf(" brush:%s radius:%d [%s] tick:%d  (1-7 material, +/- size, space pause, q quit)",
		s.world.Registry().Lookup(s.brush).Name, s.radius, state, s.world.Tick())
	s.drawStatus(size.H, status)

	s.screen.Show()
}

func (s *session) drawStatus(row int, text string) {
	w, h := s.screen.Size()
	if row >= h {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(text) {
			r = rune(text[x])
		}
		s.screen.SetContent(x, row, r, nil, style)
	}
}
