package erosion

import (
	"teppa/gl"
	"teppa/texture"

	"github.com/chewxy/math32"
	"github.com/dgravesa/go-parallel/parallel"
)

// Kernel advects every raindrop one tick across the texture's terrain.
//
// Each particle is updated independently and in no particular order: it
// reads only its own slot of prev and the texture, and writes only its own
// slot of next, including the height changes it stages for Merge.
type Kernel struct {
	Config  Config
	Texture *texture.Texture
}

var _ Ticker = Kernel{}

func (k Kernel) Tick(next, prev *Generation) {
	parallel.For(prev.Len(), func(i, _ int) {
		k.drop(next, prev, i)
	})
}

func (k Kernel) drop(next, prev *Generation, i int) {
	cfg := k.Config
	terrain := k.Texture.Terrain

	p := gl.V2(prev.Position[2*i], prev.Position[2*i+1])
	v := gl.V2(prev.Velocity[2*i], prev.Velocity[2*i+1])
	water := prev.Water[i]
	sediment := prev.Sediment[i]

	g := terrain.GridPoint(p)
	h := terrain.Sample(g)

	// slope per cell, rescaled to per field unit
	slope := terrain.Gradient(g).Multiply(gl.V2(
		float32(terrain.Width-1)/2,
		float32(terrain.Height-1)/2,
	))

	v = v.Scale(cfg.Inertia).Subtract(slope.Scale((1 - cfg.Inertia) * cfg.Gravity))
	p = p.Add(v.Scale(cfg.Dt))
	p.X, v.X = bounce(p.X, v.X)
	p.Y, v.Y = bounce(p.Y, v.Y)

	dh := terrain.Sample(terrain.GridPoint(p)) - h
	capacity := math32.Max(-dh, cfg.MinSlope) * v.Length() * water * cfg.Capacity

	var change float32
	if dh > 0 || sediment > capacity {
		var amount float32
		if dh > 0 {
			amount = math32.Min(dh, sediment)
		} else {
			amount = (sediment - capacity) * cfg.DepositRate
		}
		sediment -= amount
		change = amount
	} else {
		amount := math32.Min((capacity-sediment)*cfg.ErodeRate, -dh)
		sediment += amount
		change = -amount
	}

	taps := terrain.Bilinear(g)
	for t := 0; t < 4; t++ {
		next.TapIndex[4*i+t] = taps.Index[t]
		next.TapDelta[4*i+t] = taps.Weight[t] * change
	}

	next.Position[2*i], next.Position[2*i+1] = p.X, p.Y
	next.Velocity[2*i], next.Velocity[2*i+1] = v.X, v.Y
	next.Water[i] = water * (1 - cfg.Evaporation)
	next.Sediment[i] = sediment
}

// bounce reflects a coordinate that left [-1, 1] back inside, reversing its
// velocity.
func bounce(p, v float32) (float32, float32) {
	switch {
	case p > 1:
		p, v = 2-p, -v
	case p < -1:
		p, v = -2-p, -v
	}
	return math32.Max(-1, math32.Min(1, p)), v
}
