// Command teppaterm renders an eroding heightmap in the terminal.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"teppa/erosion"
	"teppa/internal/app"
	"teppa/stats"
	"teppa/texture"

	"github.com/jcorbin/anansi"
	"github.com/jcorbin/anansi/ansi"
	"github.com/jcorbin/anansi/x/platform"
)

var errInt = errors.New("interrupt")

func main() {
	cfg := app.NewConfig()
	cfg.Size = 128
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.Simulation()
	if err != nil {
		log.Fatalln(err)
	}

	platform.MustRun(os.Stdin, os.Stdout, func(p *platform.Platform) error {
		for {
			if err := p.Run(newView(sim)); platform.IsReplayDone(err) {
				continue // loop replay
			} else if err == io.EOF || err == errInt {
				return nil
			} else if err != nil {
				log.Printf("exiting due to %v", err)
				return err
			}
		}
	}, platform.FrameRate(60), platform.Config{
		LogFileName: "teppaterm.log",
	})
}

type view struct {
	sim    *erosion.Simulation
	seed   int64
	paused bool
	ticks  stats.Durations
}

func newView(sim *erosion.Simulation) *view {
	v := &view{sim: sim, seed: sim.Config.Seed}
	v.ticks.Init(60, 600, func(ds *stats.Durations) {
		gen := sim.Current()
		log.Printf("tick %v: avg=%v max=%v eroded=%.4f deposited=%.4f",
			ds.Collected(), ds.Average(), ds.Max(), gen.Eroded, gen.Deposited)
	})
	return v
}

func (v *view) Update(ctx *platform.Context) (err error) {
	// Ctrl-C interrupts
	if ctx.Input.HasTerminal('\x03') {
		err = errInt
	}

	// Ctrl-Z suspends
	if ctx.Input.CountRune('\x1a') > 0 {
		defer func() {
			if err == nil {
				err = ctx.Suspend()
			}
		}()
	}

	if ctx.Input.CountRune(' ')%2 == 1 {
		v.paused = !v.paused
	}
	if ctx.Input.CountRune('r') > 0 {
		v.seed++
		v.sim.Reset(v.seed)
		log.Printf("reset with seed %v", v.seed)
	}

	if !v.paused {
		start := time.Now()
		v.sim.Step()
		v.ticks.Time(start)
	}

	v.draw(ctx.Output.Grid)
	return
}

// draw fills the grid with upper half blocks, so every cell shows two
// texels: the foreground above the background.
func (v *view) draw(grid anansi.Grid) {
	tex := v.sim.Texture
	pal := tex.Palette()
	rect := grid.Rect
	cols := rect.Max.X - rect.Min.X
	rows := 2 * (rect.Max.Y - rect.Min.Y)
	if cols <= 0 || rows <= 0 {
		return
	}

	var pt ansi.Point
	for pt.Y = rect.Min.Y; pt.Y < rect.Max.Y; pt.Y++ {
		for pt.X = rect.Min.X; pt.X < rect.Max.X; pt.X++ {
			o, ok := grid.CellOffset(pt)
			if !ok {
				continue
			}
			col, row := pt.X-rect.Min.X, 2*(pt.Y-rect.Min.Y)
			upper := pal.Color(texel(tex, col, row, cols, rows))
			lower := pal.Color(texel(tex, col, row+1, cols, rows))
			grid.Rune[o] = '▀'
			grid.Attr[o] = ansi.RGB(upper.R, upper.G, upper.B).FG() |
				ansi.RGB(lower.R, lower.G, lower.B).BG()
		}
	}
}

func texel(tex *texture.Texture, col, row, cols, rows int) texture.Texel {
	return tex.At(col*tex.Width/cols, row*tex.Height/rows)
}
