// Package app holds the configuration shared by the teppa commands.
package app

import (
	"flag"
	"fmt"
	"path/filepath"

	"teppa/erosion"
	"teppa/heightmap"

	"gopkg.in/src-d/go-billy.v4/osfs"
)

// Config selects the terrain and the erosion parameters.
type Config struct {
	// Heightmap names an image file; when empty, simplex terrain of
	// Size by Size cells is synthesized from TerrainSeed.
	Heightmap   string
	Size        int
	TerrainSeed int64

	Erosion erosion.Config
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Size:        256,
		TerrainSeed: 42,
		Erosion:     erosion.DefaultConfig(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Heightmap, "heightmap", c.Heightmap, "heightmap image file; synthesized when empty")
	fs.IntVar(&c.Size, "size", c.Size, "size of synthesized terrain")
	fs.Int64Var(&c.TerrainSeed, "terrain-seed", c.TerrainSeed, "seed for synthesized terrain")
	c.Erosion.Bind(fs)
}

// Field loads or synthesizes the configured terrain.
func (c *Config) Field() (*heightmap.Field, error) {
	if c.Heightmap == "" {
		field, err := heightmap.Simplex(c.TerrainSeed, c.Size)
		if err != nil {
			return nil, fmt.Errorf("unable to synthesize terrain: %w", err)
		}
		return field, nil
	}
	dir, name := filepath.Split(c.Heightmap)
	if dir == "" {
		dir = "."
	}
	field, err := heightmap.Load(osfs.New(dir), name)
	if err != nil {
		return nil, fmt.Errorf("unable to load heightmap: %w", err)
	}
	return field, nil
}

// Simulation builds an erosion simulation over the configured terrain.
func (c *Config) Simulation() (*erosion.Simulation, error) {
	field, err := c.Field()
	if err != nil {
		return nil, err
	}
	return erosion.New(field, c.Erosion)
}
