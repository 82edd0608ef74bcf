// Package heightmap holds the terrain elevation grid that erosion mutates and
// the renderer displays.
package heightmap

import (
	"errors"
	"fmt"

	"teppa/gl"

	"github.com/chewxy/math32"
)

// ErrInvalidDimensions matches any DimensionError.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// DimensionError reports a backing store that does not fit its declared
// width and height.
type DimensionError struct {
	Width, Height int
	Len           int
}

func (err *DimensionError) Error() string {
	return fmt.Sprintf("%v: %vx%v field needs %v values, got %v",
		ErrInvalidDimensions, err.Width, err.Height, err.Width*err.Height, err.Len)
}

func (err *DimensionError) Unwrap() error { return ErrInvalidDimensions }

// Field is a Width by Height grid of elevations in [0, 1], stored row by row.
// Its size never changes after construction.
type Field struct {
	Width, Height int
	Data          []float32
}

// New wraps data as a field, failing unless len(data) == width*height and
// both sides are positive. The field takes ownership of data.
func New(width, height int, data []float32) (*Field, error) {
	if width <= 0 || height <= 0 || len(data) != width*height {
		return nil, &DimensionError{width, height, len(data)}
	}
	return &Field{Width: width, Height: height, Data: data}, nil
}

// Blank returns a zeroed field.
func Blank(width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, &DimensionError{width, height, 0}
	}
	return New(width, height, make([]float32, width*height))
}

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	data := make([]float32, len(f.Data))
	copy(data, f.Data)
	return &Field{Width: f.Width, Height: f.Height, Data: data}
}

// Len returns the number of cells.
func (f *Field) Len() int { return len(f.Data) }

// Index returns the offset of the cell at x, y, clamping both to the edge.
func (f *Field) Index(x, y int) int {
	return clampInt(y, 0, f.Height-1)*f.Width + clampInt(x, 0, f.Width-1)
}

// At returns the elevation at a cell; coordinates outside the grid read the
// nearest edge cell.
func (f *Field) At(x, y int) float32 {
	return f.Data[f.Index(x, y)]
}

// Set writes an elevation, clamped to [0, 1].
func (f *Field) Set(x, y int, v float32) {
	f.Data[f.Index(x, y)] = clamp01(v)
}

// Add changes the cell at offset i by dv, keeping it in [0, 1], and returns
// the change actually applied.
func (f *Field) Add(i int, dv float32) float32 {
	old := f.Data[i]
	f.Data[i] = clamp01(old + dv)
	return f.Data[i] - old
}

// Total sums every elevation.
func (f *Field) Total() float64 {
	var total float64
	for _, v := range f.Data {
		total += float64(v)
	}
	return total
}

// Stats summarizes the elevations.
func (f *Field) Stats() Stats {
	var s Stats
	s.Reset()
	for _, v := range f.Data {
		s.Add(v)
	}
	return s
}

// GridPoint maps a point in normalized [-1, 1] field space to continuous
// grid coordinates, where cell x, y sits at exactly (x, y).
func (f *Field) GridPoint(p gl.Vec2) gl.Vec2 {
	return gl.V2(
		(p.X+1)/2*float32(f.Width-1),
		(p.Y+1)/2*float32(f.Height-1),
	)
}

// Taps are the four cells around a grid point with their bilinear weights,
// which sum to one.
type Taps struct {
	Index  [4]int32
	Weight [4]float32
}

// Bilinear returns the taps around a grid point, clamped to the edge.
func (f *Field) Bilinear(g gl.Vec2) (taps Taps) {
	x := math32.Max(0, math32.Min(g.X, float32(f.Width-1)))
	y := math32.Max(0, math32.Min(g.Y, float32(f.Height-1)))
	x0, y0 := int(x), int(y)
	fx, fy := x-float32(x0), y-float32(y0)
	taps.Index = [4]int32{
		int32(f.Index(x0, y0)),
		int32(f.Index(x0+1, y0)),
		int32(f.Index(x0, y0+1)),
		int32(f.Index(x0+1, y0+1)),
	}
	taps.Weight = [4]float32{
		(1 - fx) * (1 - fy),
		fx * (1 - fy),
		(1 - fx) * fy,
		fx * fy,
	}
	return taps
}

// Sample interpolates the elevation at a grid point.
func (f *Field) Sample(g gl.Vec2) float32 {
	taps := f.Bilinear(g)
	var h float32
	for i, o := range taps.Index {
		h += taps.Weight[i] * f.Data[o]
	}
	return h
}

// Gradient returns the bilinear slope at a grid point, in elevation per cell.
func (f *Field) Gradient(g gl.Vec2) gl.Vec2 {
	x := math32.Max(0, math32.Min(g.X, float32(f.Width-1)))
	y := math32.Max(0, math32.Min(g.Y, float32(f.Height-1)))
	x0, y0 := int(x), int(y)
	fx, fy := x-float32(x0), y-float32(y0)
	h00 := f.At(x0, y0)
	h10 := f.At(x0+1, y0)
	h01 := f.At(x0, y0+1)
	h11 := f.At(x0+1, y0+1)
	return gl.V2(
		(h10-h00)*(1-fy)+(h11-h01)*fy,
		(h01-h00)*(1-fx)+(h11-h10)*fx,
	)
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
