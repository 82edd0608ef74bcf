package texture

import (
	"image"
	"image/color"

	"teppa/heightmap"

	"github.com/chewxy/math32"
	"github.com/hsluv/hsluv-go"
)

var water = color.RGBA{48, 40, 177, 255}

// Palette colors texels for display. Heights and loads are projected through
// the collected stats so the full color range is used.
type Palette struct {
	Terrain heightmap.Stats
	Water   heightmap.Stats
}

// Palette collects stats for the current texture contents.
func (tex *Texture) Palette() Palette {
	var p Palette
	p.Terrain = tex.Terrain.Stats()
	p.Water.Reset()
	for _, w := range tex.Water {
		p.Water.Add(w)
	}
	return p
}

// Color returns the display color of a texel: terrain shaded from green
// lowlands to pale peaks, blended toward blue where water collects.
func (p Palette) Color(t Texel) color.RGBA {
	h := float64(p.Terrain.Project(t.Height))
	r, g, b := hsluv.HsluvToRGB(130-100*h, 60-30*h, 25+60*h)
	c := color.RGBA{channel(r), channel(g), channel(b), 255}

	if w := math32.Sqrt(p.Water.Project(t.Water)); w > 0 {
		a := math32.Min(1, w) * 0.8
		c.R = blend(c.R, water.R, a)
		c.G = blend(c.G, water.G, a)
		c.B = blend(c.B, water.B, a)
	}
	return c
}

// Image renders the texture for display.
func (tex *Texture) Image() *image.RGBA {
	p := tex.Palette()
	img := image.NewRGBA(image.Rect(0, 0, tex.Width, tex.Height))
	for y := 0; y < tex.Height; y++ {
		for x := 0; x < tex.Width; x++ {
			img.SetRGBA(x, y, p.Color(tex.At(x, y)))
		}
	}
	return img
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func blend(a, b uint8, t float32) uint8 {
	return uint8(float32(a)*(1-t) + float32(b)*t + 0.5)
}
