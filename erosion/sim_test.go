package erosion_test

import (
	"flag"
	"fmt"
	"testing"

	"teppa/erosion"
	"teppa/feedback"
	"teppa/heightmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func terrain(t *testing.T, size int) *heightmap.Field {
	field, err := heightmap.Simplex(5, size)
	require.NoError(t, err)
	// keep away from the clamp so every staged change applies in full
	for i, v := range field.Data {
		field.Data[i] = 0.3 + 0.4*v
	}
	return field
}

func TestNewErrors(t *testing.T) {
	field := terrain(t, 16)

	for _, pop := range []int{0, -3, erosion.MaxPopulation + 1} {
		t.Run(fmt.Sprintf("population=%v", pop), func(t *testing.T) {
			cfg := erosion.DefaultConfig()
			cfg.Population = pop
			sim, err := erosion.New(field, cfg)
			assert.Nil(t, sim)
			assert.ErrorIs(t, err, erosion.ErrResource)
		})
	}

	t.Run("field", func(t *testing.T) {
		bad := &heightmap.Field{Width: 4, Height: 4, Data: make([]float32, 15)}
		_, err := erosion.New(bad, erosion.DefaultConfig())
		assert.ErrorIs(t, err, heightmap.ErrInvalidDimensions)
		_, err = erosion.New(nil, erosion.DefaultConfig())
		assert.ErrorIs(t, err, heightmap.ErrInvalidDimensions)
	})

	t.Run("config", func(t *testing.T) {
		cfg := erosion.DefaultConfig()
		cfg.Inertia = 2
		cfg.Population = 0
		_, err := erosion.New(field, cfg)
		assert.ErrorIs(t, err, erosion.ErrInvalidConfig)
		assert.ErrorIs(t, err, erosion.ErrResource)
		assert.Len(t, multierr.Errors(err), 2)
	})
}

func TestConfig(t *testing.T) {
	assert.NoError(t, erosion.DefaultConfig().Validate())

	cfg := erosion.DefaultConfig()
	cfg.Dt = 0
	cfg.Evaporation = -0.1
	cfg.ErodeRate = 1.5
	err := cfg.Validate()
	assert.ErrorIs(t, err, erosion.ErrInvalidConfig)
	assert.Len(t, multierr.Errors(err), 3)

	cfg = erosion.DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-population=10", "-inertia=0.5", "-seed=9"}))
	assert.Equal(t, 10, cfg.Population)
	assert.Equal(t, float32(0.5), cfg.Inertia)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Error(t, fs.Parse([]string{"-gravity=lots"}))
}

func TestInitialRain(t *testing.T) {
	sim, err := erosion.New(terrain(t, 32), erosion.DefaultConfig())
	require.NoError(t, err)
	gen := sim.Current()

	assert.Equal(t, 1000, sim.Population())
	assert.Equal(t, 0, gen.Num)
	for i := 0; i < gen.Len(); i++ {
		assert.True(t, gen.Water[i] >= 0.9 && gen.Water[i] <= 1, "water %v", gen.Water[i])
		assert.Equal(t, float32(0), gen.Sediment[i])
	}
	for i := range gen.Position {
		assert.True(t, gen.Position[i] >= -1 && gen.Position[i] <= 1)
		assert.True(t, gen.Velocity[i] >= -1 && gen.Velocity[i] <= 1)
	}
	assert.Equal(t, []string{"new_position", "new_velocity", "new_water", "new_sediment"}, sim.Pair().Varyings())
}

func TestStep(t *testing.T) {
	sim, err := erosion.New(terrain(t, 32), erosion.DefaultConfig())
	require.NoError(t, err)
	first := sim.Current()

	for n := 1; n <= 64; n++ {
		sim.Step()
		gen := sim.Current()

		assert.Equal(t, n, gen.Num)
		assert.Equal(t, n, sim.Buffers.Swaps())
		assert.Equal(t, n%2 == 0, gen == first, "after %v ticks", n)
		assert.Equal(t, 1000, sim.Population())
		assert.Len(t, gen.Position, 2000)
		assert.Len(t, gen.Velocity, 2000)
		assert.Len(t, gen.Sediment, 1000)

		for i := range gen.Position {
			if !assert.True(t, gen.Position[i] >= -1 && gen.Position[i] <= 1, "tick %v position %v", n, gen.Position[i]) {
				return
			}
		}
		for i := 0; i < gen.Len(); i++ {
			if !assert.True(t, gen.Sediment[i] >= 0 && gen.Water[i] >= 0, "tick %v particle %v", n, i) {
				return
			}
		}
	}

	s := sim.Field.Stats()
	assert.True(t, s.Min >= 0 && s.Max <= 1)
	assert.Equal(t, sim.Field.Data, sim.Texture.Terrain.Data, "texture tracks the field")
}

func TestMassBalance(t *testing.T) {
	sim, err := erosion.New(terrain(t, 64), erosion.DefaultConfig())
	require.NoError(t, err)

	for tick := 0; tick < 8; tick++ {
		before := sim.Field.Total()
		carried := sim.Current().SedimentStats.Total
		sim.Step()
		gen := sim.Current()

		fieldChange := sim.Field.Total() - before
		sedimentChange := gen.SedimentStats.Total - carried
		assert.InDelta(t, -sedimentChange, fieldChange, 1e-3, "tick %v", gen.Num)
		assert.InDelta(t, gen.Deposited-gen.Eroded, fieldChange, 1e-3, "tick %v", gen.Num)
	}
	assert.Greater(t, sim.Current().SedimentStats.Total, 0.0, "drops picked up sediment")
}

func TestMassBalanceAtClamp(t *testing.T) {
	t.Run("single drop", func(t *testing.T) {
		// a cliff between columns 3 and 4, with the drop on its edge
		field, err := heightmap.Blank(8, 8)
		require.NoError(t, err)
		for y := 0; y < 8; y++ {
			for x := 4; x < 8; x++ {
				field.Set(x, y, 0.5)
			}
		}
		before := field.Total()
		sim := single(t, field, 0, 0, 0, 0)
		sim.Step()
		gen := sim.Current()

		var staged float64
		for _, d := range gen.TapDelta {
			staged -= float64(d)
		}
		assert.Greater(t, staged, gen.Eroded, "the bare cells could not give up their share")
		assert.Greater(t, gen.Eroded, 0.0)
		assert.InDelta(t, gen.Eroded, float64(gen.Sediment[0]), 1e-6)
		assert.InDelta(t, before-gen.Eroded, sim.Field.Total(), 1e-6)
	})

	t.Run("shallow terrain", func(t *testing.T) {
		field, err := heightmap.Simplex(5, 64)
		require.NoError(t, err)
		for i, v := range field.Data {
			field.Data[i] = 0.02 * v
		}
		sim, err := erosion.New(field, erosion.DefaultConfig())
		require.NoError(t, err)

		for tick := 0; tick < 20; tick++ {
			before := sim.Field.Total()
			carried := sim.Current().SedimentStats.Total
			sim.Step()
			gen := sim.Current()
			sedimentChange := gen.SedimentStats.Total - carried
			assert.InDelta(t, -sedimentChange, sim.Field.Total()-before, 1e-3, "tick %v", gen.Num)
			assert.GreaterOrEqual(t, gen.SedimentStats.Min, float32(0))
		}
	})
}

func TestDeterministic(t *testing.T) {
	field := terrain(t, 32)
	a, err := erosion.New(field.Clone(), erosion.DefaultConfig())
	require.NoError(t, err)
	b, err := erosion.New(field.Clone(), erosion.DefaultConfig())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
	}
	assert.Equal(t, a.Current().Position, b.Current().Position)
	assert.Equal(t, a.Field.Data, b.Field.Data)
	assert.NotEqual(t, field.Data, a.Field.Data, "simulations erode their own copy")
}

func single(t *testing.T, field *heightmap.Field, px, py, vx, vy float32) *erosion.Simulation {
	cfg := erosion.DefaultConfig()
	cfg.Population = 1
	sim, err := erosion.New(field, cfg)
	require.NoError(t, err)
	gen := sim.Current()
	gen.Position[0], gen.Position[1] = px, py
	gen.Velocity[0], gen.Velocity[1] = vx, vy
	gen.Water[0] = 1
	gen.Sediment[0] = 0
	return sim
}

func TestDownhill(t *testing.T) {
	field, err := heightmap.Blank(16, 16)
	require.NoError(t, err)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			field.Set(x, y, 0.25+0.5*float32(x)/15)
		}
	}
	sim := single(t, field, 0, 0, 0, 0)
	sim.Step()
	gen := sim.Current()

	assert.Less(t, gen.Velocity[0], float32(0), "flows toward lower x")
	assert.InDelta(t, 0, gen.Velocity[1], 1e-6)
	assert.Less(t, gen.Position[0], float32(0))
	assert.Greater(t, gen.Sediment[0], float32(0))
	assert.Greater(t, gen.Eroded, 0.0)
	assert.InDelta(t, 0.998, gen.Water[0], 1e-6)
}

func TestBoundaryReflects(t *testing.T) {
	field, err := heightmap.New(8, 8, make([]float32, 64))
	require.NoError(t, err)
	for i := range field.Data {
		field.Data[i] = 0.5
	}
	sim := single(t, field, 0.999, -0.999, 1, -1)
	sim.Step()
	gen := sim.Current()

	assert.InDelta(t, 0.993, gen.Position[0], 1e-5)
	assert.InDelta(t, -0.993, gen.Position[1], 1e-5)
	assert.InDelta(t, -0.8, gen.Velocity[0], 1e-6)
	assert.InDelta(t, 0.8, gen.Velocity[1], 1e-6)
}

func TestBuffers(t *testing.T) {
	b, err := erosion.NewBuffers(4)
	require.NoError(t, err)
	cur, other := b.Current(), b.Other()
	assert.NotSame(t, cur, other)
	assert.Equal(t, 0, b.Index())

	_, err = feedback.NewPair(cur, other)
	assert.NoError(t, err)

	b.Swap()
	assert.Same(t, other, b.Current())
	assert.Same(t, cur, b.Other())
	assert.Equal(t, b.Pair().In[0].Data, other.Position)
	b.Swap()
	assert.Same(t, cur, b.Current())
	assert.Equal(t, 2, b.Swaps())
}
