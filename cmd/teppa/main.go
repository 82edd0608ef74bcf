// Command teppa erodes a heightmap without a display, writing snapshots of
// the texture and the field as it goes.
package main

import (
	"flag"
	"log"
	"time"

	"teppa/internal/app"
	"teppa/snapshot"
	"teppa/stats"

	"gopkg.in/src-d/go-billy.v4/osfs"
)

type config struct {
	*app.Config
	Ticks int
	Every int
	Out   string
}

func (c *config) Bind(fs *flag.FlagSet) {
	c.Config.Bind(fs)
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "number of ticks to simulate")
	fs.IntVar(&c.Every, "every", c.Every, "ticks between snapshots; 0 only saves the last")
	fs.StringVar(&c.Out, "out", c.Out, "directory for snapshots")
}

func main() {
	cfg := config{
		Config: app.NewConfig(),
		Ticks:  1000,
		Every:  100,
		Out:    "frames",
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := run(cfg); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg config) error {
	sim, err := cfg.Simulation()
	if err != nil {
		return err
	}
	store := snapshot.Store{Filesystem: osfs.New(cfg.Out)}
	log.Printf("eroding %vx%v field with %v drops for %v ticks; %v",
		sim.Field.Width, sim.Field.Height, sim.Population(), cfg.Ticks, sim.Pair())

	save := func(tick int) error {
		if err := store.SaveImage(snapshot.Name("frame", tick, "png"), sim.Texture.Image()); err != nil {
			return err
		}
		if err := store.SaveField(snapshot.Name("field", tick, "fld"), sim.Field); err != nil {
			return err
		}
		log.Printf("saved tick %v to %v", tick, cfg.Out)
		return nil
	}

	var durs stats.Durations
	durs.Init(100, 100, func(ds *stats.Durations) {
		gen := sim.Current()
		log.Printf("tick %v: %.1f ticks/s avg=%v max=%v eroded=%.4f deposited=%.4f water=%.3f",
			ds.Collected(), ds.Rate(), ds.Average(), ds.Max(),
			gen.Eroded, gen.Deposited, gen.WaterStats.Mean())
	})

	for tick := 1; tick <= cfg.Ticks; tick++ {
		start := time.Now()
		sim.Step()
		durs.Time(start)
		if cfg.Every > 0 && tick%cfg.Every == 0 {
			if err := save(tick); err != nil {
				return err
			}
		}
	}
	if cfg.Every <= 0 || cfg.Ticks%cfg.Every != 0 {
		return save(cfg.Ticks)
	}
	return nil
}
