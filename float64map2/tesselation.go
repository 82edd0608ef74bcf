package float64map2

// Tesselation wraps a map so that values at opposite edges of a
// width by height window agree, making the window tile seamlessly.
type Tesselation struct {
	Source        Map
	Width, Height float64
}

// Eval2 blends the source with copies shifted by one window width and height,
// weighted by the coordinate's position within the window.
func (t Tesselation) Eval2(x, y float64) float64 {
	u := x / t.Width
	v := y / t.Height
	top := lerp(t.Source.Eval2(x, y), t.Source.Eval2(x-t.Width, y), u)
	bottom := lerp(t.Source.Eval2(x, y-t.Height), t.Source.Eval2(x-t.Width, y-t.Height), u)
	return lerp(top, bottom, v)
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
