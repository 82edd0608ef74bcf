package gl

import "github.com/chewxy/math32"

// Vec2 is a 2-dimensional vector.
type Vec2 struct {
	X, Y float32
}

func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Add returns the element-wise sum of the receiver and argument.
func (v Vec2) Add(b Vec2) Vec2 {
	v.X += b.X
	v.Y += b.Y
	return v
}

// Subtract returns the element-wise difference of the receiver and argument.
func (v Vec2) Subtract(b Vec2) Vec2 {
	v.X -= b.X
	v.Y -= b.Y
	return v
}

// AddScalar adds s to every element.
func (v Vec2) AddScalar(s float32) Vec2 {
	return Vec2{v.X + s, v.Y + s}
}

// SubtractScalar subtracts s from every element.
func (v Vec2) SubtractScalar(s float32) Vec2 {
	return Vec2{v.X - s, v.Y - s}
}

// Multiply returns the element-wise product of the receiver and argument.
func (v Vec2) Multiply(b Vec2) Vec2 {
	v.X *= b.X
	v.Y *= b.Y
	return v
}

// Scale returns the receiver with every element multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Negate returns the receiver with every element negated.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Abs returns the element-wise absolute value of the receiver.
func (v Vec2) Abs() Vec2 {
	return Vec2{math32.Abs(v.X), math32.Abs(v.Y)}
}

// Sum returns the total of the receiver's elements.
func (v Vec2) Sum() float32 {
	return v.X + v.Y
}

// Dot returns the dot product of the receiver and argument.
func (v Vec2) Dot(b Vec2) float32 {
	return v.Multiply(b).Sum()
}

// Length returns the euclidean length of the receiver.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize scales the receiver to unit length.
// A zero vector normalizes to NaN elements.
func (v Vec2) Normalize() Vec2 {
	return v.Scale(1 / v.Length())
}

// Lerp interpolates linearly from the receiver toward b; t outside [0, 1]
// extrapolates.
func (v Vec2) Lerp(b Vec2, t float32) Vec2 {
	return v.Add(b.Subtract(v).Scale(t))
}

// Equals returns true only if every element is exactly equal.
func (v Vec2) Equals(b Vec2) bool {
	return v.X == b.X && v.Y == b.Y
}

// Within returns true only if every element differs by at most epsilon.
func (v Vec2) Within(b Vec2, epsilon float32) bool {
	d := v.Subtract(b).Abs()
	return d.X <= epsilon && d.Y <= epsilon
}

// Slice returns the elements in order.
func (v Vec2) Slice() []float32 {
	return []float32{v.X, v.Y}
}

func (v Vec2) at(i int) float32 {
	if i == 0 {
		return v.X
	}
	return v.Y
}
