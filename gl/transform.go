package gl

import "github.com/chewxy/math32"

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Translation creates a matrix that moves points by v.
func Translation(v Vec3) Mat4 {
	return M4(
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	)
}

// Scaling creates a matrix that scales each axis by the matching element of v.
func Scaling(v Vec3) Mat4 {
	return Diagonal4(v.Vec4(1))
}

// Rotation creates a rotation of rad radians about axis by Rodrigues'
// formula. The axis need not be unit length; a zero axis yields the identity.
func Rotation(rad float32, axis Vec3) Mat4 {
	if axis.Length() == 0 {
		return I4()
	}
	a := axis.Normalize()
	x, y, z := a.X, a.Y, a.Z
	s := math32.Sin(rad)
	c := math32.Cos(rad)
	t := 1 - c
	return M4(
		x*x*t+c, x*y*t-z*s, x*z*t+y*s, 0,
		x*y*t+z*s, y*y*t+c, y*z*t-x*s, 0,
		x*z*t-y*s, y*z*t+x*s, z*z*t+c, 0,
		0, 0, 0, 1,
	)
}

// RotateX creates the row vector rotation about X, equal to
// Rotation(rad, V3(1, 0, 0)).Transpose().
func RotateX(rad float32) Mat4 {
	s := math32.Sin(rad)
	c := math32.Cos(rad)
	return M4(
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	)
}

// RotateY creates the row vector rotation about Y, equal to
// Rotation(rad, V3(0, 1, 0)).Transpose().
func RotateY(rad float32) Mat4 {
	s := math32.Sin(rad)
	c := math32.Cos(rad)
	return M4(
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotateZ creates the row vector rotation about Z, equal to
// Rotation(rad, V3(0, 0, 1)).Transpose().
func RotateZ(rad float32) Mat4 {
	s := math32.Sin(rad)
	c := math32.Cos(rad)
	return M4(
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// RotateAxisTo returns the rotation by the angle between axis and target about
// cross(target, axis). Transforming target by the result yields axis; as a
// row vector rotation it carries axis onto target.
//
// Exactly equal directions short circuit to the identity. Exactly opposite
// directions rotate half a turn about any axis perpendicular to both.
func RotateAxisTo(axis, target Vec3) Mat4 {
	a := axis.Normalize()
	t := target.Normalize()
	if a.Equals(t) {
		return I4()
	}
	cos := math32.Max(-1, math32.Min(1, a.Dot(t)))
	about := t.Cross(a)
	if about.Length() == 0 {
		about = perpendicular(a)
	}
	return Rotation(math32.Acos(cos), about)
}

func perpendicular(v Vec3) Vec3 {
	if p := v.Cross(V3(1, 0, 0)); p.Length() != 0 {
		return p
	}
	return v.Cross(V3(0, 1, 0))
}

// NormalMatrix returns the inverse transpose of the upper 3x3 of a model-view
// matrix, for transforming surface normals.
func NormalMatrix(m Mat4) (Mat3, error) {
	inv, err := m.Submatrix(3, 3).Inverse()
	if err != nil {
		return Mat3{}, err
	}
	return inv.Transpose(), nil
}
