package erosion

import "teppa/xorshiftstar"

// Rain scatters fresh raindrops over the whole field: position and velocity
// uniform in [-1, 1), water nearly full, no sediment.
type Rain struct {
	Seed int64
}

var _ Resetter = Rain{}

func (r Rain) Reset(gen *Generation) {
	rng := xorshiftstar.New(r.Seed)
	gen.Num = 0
	for i := range gen.Position {
		gen.Position[i] = rng.Uniform(-1, 1)
	}
	for i := range gen.Velocity {
		gen.Velocity[i] = rng.Uniform(-1, 1)
	}
	for i := range gen.Water {
		gen.Water[i] = rng.Uniform(0.9, 1)
		gen.Sediment[i] = 0
	}
	for i := range gen.TapDelta {
		gen.TapIndex[i] = 0
		gen.TapDelta[i] = 0
	}
	Post{}.Tick(gen, gen)
}
