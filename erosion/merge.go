package erosion

import (
	"teppa/heightmap"
	"teppa/texture"

	"github.com/chewxy/math32"
)

// Merge applies the height changes staged by the kernel to the field, one
// particle at a time in index order. The field stays clamped to [0, 1], so
// Eroded and Deposited record what was actually applied, and whatever the
// clamp refused is settled against the drop's sediment.
type Merge struct {
	Field *heightmap.Field
}

var _ Ticker = Merge{}

func (m Merge) Tick(next, prev *Generation) {
	for j, o := range next.TapIndex {
		delta := next.TapDelta[j]
		if delta == 0 {
			continue
		}
		applied := m.Field.Add(int(o), delta)
		if applied < 0 {
			next.Eroded -= float64(applied)
		} else {
			next.Deposited += float64(applied)
		}
		if short := delta - applied; short != 0 {
			i := j / 4
			next.Sediment[i] = math32.Max(0, next.Sediment[i]+short)
		}
	}
}

// Sync uploads the merged field to the texture and splats the new particle
// loads, so the renderer and the next tick see the committed state.
type Sync struct {
	Field   *heightmap.Field
	Texture *texture.Texture
}

var (
	_ Ticker   = Sync{}
	_ Resetter = Sync{}
)

func (s Sync) Tick(next, prev *Generation) {
	s.Texture.Upload(s.Field)
	s.Texture.Splat(next.Position, next.Water, next.Sediment)
}

// Reset shows a freshly rained generation on the texture.
func (s Sync) Reset(gen *Generation) {
	s.Texture.Upload(s.Field)
	s.Texture.Splat(gen.Position, gen.Water, gen.Sediment)
}
