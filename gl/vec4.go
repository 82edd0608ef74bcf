package gl

import "github.com/chewxy/math32"

// Vec4 is a 4-dimensional vector, usually a homogeneous point or direction.
type Vec4 struct {
	X, Y, Z, W float32
}

func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Add returns the element-wise sum of the receiver and argument.
func (v Vec4) Add(b Vec4) Vec4 {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
	v.W += b.W
	return v
}

// Subtract returns the element-wise difference of the receiver and argument.
func (v Vec4) Subtract(b Vec4) Vec4 {
	v.X -= b.X
	v.Y -= b.Y
	v.Z -= b.Z
	v.W -= b.W
	return v
}

// AddScalar adds s to every element.
func (v Vec4) AddScalar(s float32) Vec4 {
	return Vec4{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

// SubtractScalar subtracts s from every element.
func (v Vec4) SubtractScalar(s float32) Vec4 {
	return Vec4{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

// Multiply returns the element-wise product of the receiver and argument.
func (v Vec4) Multiply(b Vec4) Vec4 {
	v.X *= b.X
	v.Y *= b.Y
	v.Z *= b.Z
	v.W *= b.W
	return v
}

// Scale returns the receiver with every element multiplied by s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Abs returns the element-wise absolute value of the receiver.
func (v Vec4) Abs() Vec4 {
	return Vec4{math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z), math32.Abs(v.W)}
}

// Sum returns the total of the receiver's elements.
func (v Vec4) Sum() float32 {
	return v.X + v.Y + v.Z + v.W
}

// Dot returns the dot product of the receiver and argument.
func (v Vec4) Dot(b Vec4) float32 {
	return v.Multiply(b).Sum()
}

// Length returns the euclidean length of the receiver.
func (v Vec4) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize scales the receiver to unit length.
// A zero vector normalizes to NaN elements.
func (v Vec4) Normalize() Vec4 {
	return v.Scale(1 / v.Length())
}

// Lerp interpolates linearly from the receiver toward b; t outside [0, 1]
// extrapolates.
func (v Vec4) Lerp(b Vec4, t float32) Vec4 {
	return v.Add(b.Subtract(v).Scale(t))
}

// Equals returns true only if every element is exactly equal.
func (v Vec4) Equals(b Vec4) bool {
	return v.X == b.X && v.Y == b.Y && v.Z == b.Z && v.W == b.W
}

// Within returns true only if every element differs by at most epsilon.
func (v Vec4) Within(b Vec4, epsilon float32) bool {
	d := v.Subtract(b).Abs()
	return d.X <= epsilon && d.Y <= epsilon && d.Z <= epsilon && d.W <= epsilon
}

// Vec3 drops the w element.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Project divides x, y and z by w; a zero w leaves them unscaled.
func (v Vec4) Project() Vec3 {
	if v.W == 0 {
		return v.Vec3()
	}
	return v.Vec3().Scale(1 / v.W)
}

// Slice returns the elements in order.
func (v Vec4) Slice() []float32 {
	return []float32{v.X, v.Y, v.Z, v.W}
}

func (v Vec4) at(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}
