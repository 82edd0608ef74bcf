// Package float64map2 composes two dimensional procedural maps of 64 bit
// floating point values, used to synthesize terrain when no heightmap image
// is given.
package float64map2

// Map is a two dimensional field of values, using 64 bit floats.
type Map interface {
	Eval2(x, y float64) float64
}

// Func adapts a plain function to a Map.
type Func func(x, y float64) float64

// Eval2 calls the function.
func (f Func) Eval2(x, y float64) float64 { return f(x, y) }

// Scale stretches or shrinks a map along both axes.
type Scale struct {
	Source Map
	Factor float64
}

// Eval2 samples the source at the scaled coordinate.
func (m Scale) Eval2(x, y float64) float64 {
	return m.Source.Eval2(x*m.Factor, y*m.Factor)
}

// Amplify multiplies every value of a map.
type Amplify struct {
	Source Map
	Gain   float64
}

func (m Amplify) Eval2(x, y float64) float64 {
	return m.Gain * m.Source.Eval2(x, y)
}

// Sum adds the values of several maps.
type Sum []Map

func (s Sum) Eval2(x, y float64) float64 {
	var z float64
	for _, m := range s {
		z += m.Eval2(x, y)
	}
	return z
}
