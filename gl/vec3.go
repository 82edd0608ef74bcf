package gl

import "github.com/chewxy/math32"

// Vec3 is a 3-dimensional vector.
type Vec3 struct {
	X, Y, Z float32
}

func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add returns the element-wise sum of the receiver and argument.
func (v Vec3) Add(b Vec3) Vec3 {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
	return v
}

// Subtract returns the element-wise difference of the receiver and argument.
func (v Vec3) Subtract(b Vec3) Vec3 {
	v.X -= b.X
	v.Y -= b.Y
	v.Z -= b.Z
	return v
}

// AddScalar adds s to every element.
func (v Vec3) AddScalar(s float32) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// SubtractScalar subtracts s from every element.
func (v Vec3) SubtractScalar(s float32) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

// Multiply returns the element-wise product of the receiver and argument.
func (v Vec3) Multiply(b Vec3) Vec3 {
	v.X *= b.X
	v.Y *= b.Y
	v.Z *= b.Z
	return v
}

// Scale returns the receiver with every element multiplied by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns the receiver with every element negated.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Abs returns the element-wise absolute value of the receiver.
func (v Vec3) Abs() Vec3 {
	return Vec3{math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)}
}

// Sum returns the total of the receiver's elements.
func (v Vec3) Sum() float32 {
	return v.X + v.Y + v.Z
}

// Dot returns the dot product of the receiver and argument.
func (v Vec3) Dot(b Vec3) float32 {
	return v.Multiply(b).Sum()
}

// Cross returns the cross product of the receiver and argument.
func (v Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		v.Y*b.Z - v.Z*b.Y,
		v.Z*b.X - v.X*b.Z,
		v.X*b.Y - v.Y*b.X,
	}
}

// Length returns the euclidean length of the receiver.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize scales the receiver to unit length.
// A zero vector normalizes to NaN elements.
func (v Vec3) Normalize() Vec3 {
	return v.Scale(1 / v.Length())
}

// Lerp interpolates linearly from the receiver toward b; t outside [0, 1]
// extrapolates.
func (v Vec3) Lerp(b Vec3, t float32) Vec3 {
	return v.Add(b.Subtract(v).Scale(t))
}

// Equals returns true only if every element is exactly equal.
func (v Vec3) Equals(b Vec3) bool {
	return v.X == b.X && v.Y == b.Y && v.Z == b.Z
}

// Within returns true only if every element differs by at most epsilon.
func (v Vec3) Within(b Vec3, epsilon float32) bool {
	d := v.Subtract(b).Abs()
	return d.X <= epsilon && d.Y <= epsilon && d.Z <= epsilon
}

// Slice returns the elements in order.
func (v Vec3) Slice() []float32 {
	return []float32{v.X, v.Y, v.Z}
}

// Vec4 extends the receiver with a w element.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func (v Vec3) at(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
