//go:build ebiten

// Command teppaview shows an eroding heightmap as a textured terrain mesh.
package main

import (
	"errors"
	"flag"
	"log"

	"teppa/internal/app"
	"teppa/mesh"

	"github.com/hajimehoshi/ebiten/v2"
)

type config struct {
	*app.Config
	Subdivision mesh.Subdivision
	Wireframe   bool
	Tiling      float32
	Width       int
	Height      int
	TPS         int
}

func main() {
	cfg := &config{
		Config: app.NewConfig(),
		Width:  960,
		Height: 720,
		TPS:    60,
	}
	sub := flag.Float64("subdivision", 32, "plane subdivision, an integer from 1 to 255")
	tiling := flag.Float64("tiling", 1, "texture repeats across the plane")
	cfg.Bind(flag.CommandLine)
	flag.BoolVar(&cfg.Wireframe, "wireframe", false, "draw triangle edges only")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	flag.IntVar(&cfg.TPS, "tps", cfg.TPS, "ticks per second")
	flag.Parse()

	var err error
	if cfg.Subdivision, err = mesh.SubdivisionFromFloat(*sub); err != nil {
		log.Fatalln(err)
	}
	cfg.Tiling = float32(*tiling)

	sim, err := cfg.Simulation()
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("eroding %vx%v field with %v drops; %v",
		sim.Field.Width, sim.Field.Height, sim.Population(), sim.Pair())

	ebiten.SetWindowTitle("teppa")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(newGame(sim, cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
