// Package texture holds the field as the renderer and the particle kernel see
// it: terrain height plus the water and sediment the particles carry.
package texture

import (
	"teppa/gl"
	"teppa/heightmap"
)

// Texel is one sample of the texture.
type Texel struct {
	Height, Water, Sediment float32
}

// Texture is a Width by Height grid of texels, stored as three planes.
// Its dimensions are fixed to those of the field it was created from.
type Texture struct {
	Width, Height int

	// Terrain is the height plane; the kernel samples it with bilinear
	// filtering and clamp to edge addressing.
	Terrain  *heightmap.Field
	Water    []float32
	Sediment []float32
}

// New creates a texture sized to the field and uploads its heights.
func New(field *heightmap.Field) (*Texture, error) {
	terrain, err := heightmap.New(field.Width, field.Height, make([]float32, field.Len()))
	if err != nil {
		return nil, err
	}
	tex := &Texture{
		Width:    field.Width,
		Height:   field.Height,
		Terrain:  terrain,
		Water:    make([]float32, field.Len()),
		Sediment: make([]float32, field.Len()),
	}
	tex.Upload(field)
	return tex, nil
}

// Upload copies heights from a field of the texture's dimensions.
func (tex *Texture) Upload(field *heightmap.Field) {
	copy(tex.Terrain.Data, field.Data)
}

// Splat replaces the water and sediment planes with the particles' loads,
// spread over the four cells around each particle. Positions are in
// normalized [-1, 1] field space, two components per particle.
func (tex *Texture) Splat(position, water, sediment []float32) {
	for i := range tex.Water {
		tex.Water[i] = 0
		tex.Sediment[i] = 0
	}
	for i := range water {
		p := gl.V2(position[2*i], position[2*i+1])
		taps := tex.Terrain.Bilinear(tex.Terrain.GridPoint(p))
		for k, o := range taps.Index {
			tex.Water[o] += taps.Weight[k] * water[i]
			tex.Sediment[o] += taps.Weight[k] * sediment[i]
		}
	}
}

// At returns the texel at a cell, clamping to the edge.
func (tex *Texture) At(x, y int) Texel {
	i := tex.Terrain.Index(x, y)
	return Texel{tex.Terrain.Data[i], tex.Water[i], tex.Sediment[i]}
}

// Sample interpolates the terrain height at a point in normalized field space.
func (tex *Texture) Sample(p gl.Vec2) float32 {
	return tex.Terrain.Sample(tex.Terrain.GridPoint(p))
}

// Pix interleaves the planes as height, water, sediment triples for upload
// to a three channel float texture.
func (tex *Texture) Pix() []float32 {
	pix := make([]float32, 0, 3*len(tex.Water))
	for i := range tex.Water {
		pix = append(pix, tex.Terrain.Data[i], tex.Water[i], tex.Sediment[i])
	}
	return pix
}
