package app_test

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"teppa/erosion"
	"teppa/heightmap"
	"teppa/internal/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind(t *testing.T) {
	cfg := app.NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"-size", "32",
		"-terrain-seed", "7",
		"-population", "50",
		"-inertia", "0.5",
	}))
	assert.Equal(t, 32, cfg.Size)
	assert.Equal(t, int64(7), cfg.TerrainSeed)
	assert.Equal(t, 50, cfg.Erosion.Population)
	assert.Equal(t, float32(0.5), cfg.Erosion.Inertia)
	assert.Equal(t, erosion.DefaultConfig().Gravity, cfg.Erosion.Gravity)
}

func TestField(t *testing.T) {
	t.Run("synthesized", func(t *testing.T) {
		cfg := app.NewConfig()
		cfg.Size = 16
		field, err := cfg.Field()
		require.NoError(t, err)
		assert.Equal(t, 16, field.Width)
		assert.Equal(t, 16, field.Height)
	})

	t.Run("bad size", func(t *testing.T) {
		cfg := app.NewConfig()
		cfg.Size = 0
		_, err := cfg.Field()
		assert.ErrorIs(t, err, heightmap.ErrInvalidDimensions)
	})

	t.Run("image", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 3, 2))
		img.SetGray(1, 1, color.Gray{255})
		name := filepath.Join(t.TempDir(), "hm.png")
		f, err := os.Create(name)
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())

		cfg := app.NewConfig()
		cfg.Heightmap = name
		field, err := cfg.Field()
		require.NoError(t, err)
		assert.Equal(t, 3, field.Width)
		assert.Equal(t, 2, field.Height)
		assert.Equal(t, float32(1), field.At(1, 1))
		assert.Equal(t, float32(0), field.At(0, 0))
	})

	t.Run("missing", func(t *testing.T) {
		cfg := app.NewConfig()
		cfg.Heightmap = filepath.Join(t.TempDir(), "nope.png")
		_, err := cfg.Field()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestSimulation(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Size = 16
	cfg.Erosion.Population = 10
	sim, err := cfg.Simulation()
	require.NoError(t, err)
	assert.Equal(t, 10, sim.Population())

	cfg.Erosion.Population = 0
	_, err = cfg.Simulation()
	assert.ErrorIs(t, err, erosion.ErrResource)
}
