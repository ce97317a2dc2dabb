//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"sandtable/internal/app"
	"sandtable/internal/config"
	"sandtable/internal/sand"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := sand.DefaultConfig()
	simCfg.Width = cfg.Width
	simCfg.Height = cfg.Height
	simCfg.Seed = cfg.Seed
	if cfg.File != "" {
		loaded, err := config.Load(cfg.File)
		if err != nil {
			log.Fatal(err)
		}
		simCfg = loaded
	}

	world, err := sand.NewWithConfig(simCfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(world, cfg.Scale, simCfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle("sandtable")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
