package float64map2

import "github.com/ojrac/opensimplex-go"

// Octave is one layer of a fractal noise sum.
type Octave struct {
	// Frequency scales coordinates before sampling noise.
	Frequency float64
	// Amplitude scales the sampled noise.
	Amplitude float64
}

// DefaultOctaves halve amplitude as frequency doubles, for a window of about
// 256 samples.
var DefaultOctaves = []Octave{
	{1.0 / 256, 256},
	{1.0 / 64, 64},
	{1.0 / 32, 16},
	{1.0 / 16, 32},
	{1.0 / 8, 16},
	{1.0 / 4, 4},
	{1.0 / 2, 2},
}

// NewSimplex returns a seamless sum of opensimplex noise octaves over a
// size by size window. Each octave draws from its own seed derived from seed.
func NewSimplex(seed int64, size float64, octaves []Octave) Map {
	sum := make(Sum, 0, len(octaves))
	for i, o := range octaves {
		noise := opensimplex.New(seed + int64(i) + 1)
		sum = append(sum, Amplify{
			Source: Tesselation{
				Source: Scale{Source: noise, Factor: o.Frequency},
				Width:  size,
				Height: size,
			},
			Gain: o.Amplitude,
		})
	}
	return sum
}
