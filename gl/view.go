package gl

import "github.com/chewxy/math32"

// Perspective creates a perspective projection with a vertical field of view
// given in degrees.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(Radians(fovy)/2)
	d := far - near
	return M4(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, -(near+far)/d, -2*near*far/d,
		0, 0, -1, 0,
	)
}

// Orthographic creates an orthographic projection of the given view box.
func Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	w := right - left
	h := top - bottom
	d := far - near
	return M4(
		2/w, 0, 0, -(left+right)/w,
		0, 2/h, 0, -(top+bottom)/h,
		0, 0, -2/d, -(near+far)/d,
		0, 0, 0, 1,
	)
}

// LookAt creates a right-handed view matrix for an eye looking at a point.
// An eye exactly at the focal point yields the identity.
func LookAt(eye, at, up Vec3) Mat4 {
	if eye.Equals(at) {
		return I4()
	}
	view := at.Subtract(eye).Normalize()
	right := up.Cross(view).Normalize()
	newUp := view.Cross(right)
	view = view.Negate()
	return Mat4{
		right.Vec4(-right.Dot(eye)),
		newUp.Vec4(-newUp.Dot(eye)),
		view.Vec4(-view.Dot(eye)),
		V4(0, 0, 0, 1),
	}
}
