// Package erosion simulates hydraulic erosion with a fixed population of
// raindrop particles flowing over a heightmap.
//
// Particle state is double buffered: every Step maps the update rule over
// the current generation into the other one, merges the staged height
// changes into the field, refreshes the texture, and swaps the generations.
package erosion

import (
	"fmt"

	"teppa/feedback"
	"teppa/heightmap"
	"teppa/texture"

	"go.uber.org/multierr"
)

// Simulation owns the field, its texture, and the particle buffers.
type Simulation struct {
	Config  Config
	Field   *heightmap.Field
	Texture *texture.Texture
	Buffers *Buffers
	Tickers Tickers
}

// New prepares a simulation over field, raining Config.Population drops
// seeded by Config.Seed. Nothing is returned unless every resource could be
// created.
func New(field *heightmap.Field, cfg Config) (*Simulation, error) {
	if field == nil {
		return nil, fmt.Errorf("erosion field: %w", &heightmap.DimensionError{})
	}
	if _, err := heightmap.New(field.Width, field.Height, field.Data); err != nil {
		return nil, fmt.Errorf("erosion field: %w", err)
	}

	err := cfg.Validate()
	if cfg.Population <= 0 || cfg.Population > MaxPopulation {
		err = multierr.Append(err, &ResourceError{
			Resource: "particle buffers",
			Err:      fmt.Errorf("population %v not in [1, %v]", cfg.Population, MaxPopulation),
		})
	}
	if err != nil {
		return nil, err
	}

	buffers, err := NewBuffers(cfg.Population)
	if err != nil {
		return nil, &ResourceError{Resource: "particle buffers", Err: err}
	}
	tex, err := texture.New(field)
	if err != nil {
		return nil, &ResourceError{Resource: "texture", Err: err}
	}

	sim := &Simulation{
		Config:  cfg,
		Field:   field,
		Texture: tex,
		Buffers: buffers,
		Tickers: Tickers{
			Pre{},
			Kernel{Config: cfg, Texture: tex},
			Merge{Field: field},
			Sync{Field: field, Texture: tex},
			Post{},
		},
	}
	sim.Reset(cfg.Seed)
	return sim, nil
}

// Reset rains a fresh population into the current generation.
func (sim *Simulation) Reset(seed int64) {
	Resetters{
		Rain{Seed: seed},
		Sync{Field: sim.Field, Texture: sim.Texture},
	}.Reset(sim.Buffers.Current())
}

// Step advances the simulation one tick. It cannot fail once New succeeded.
func (sim *Simulation) Step() {
	sim.Tickers.Tick(sim.Buffers.Other(), sim.Buffers.Current())
	sim.Buffers.Swap()
}

// Current returns the latest committed generation.
func (sim *Simulation) Current() *Generation {
	return sim.Buffers.Current()
}

// Population returns the constant particle count.
func (sim *Simulation) Population() int {
	return sim.Current().Len()
}

// Pair returns the attribute wiring the next Step uses.
func (sim *Simulation) Pair() feedback.Pair {
	return sim.Buffers.Pair()
}
