// Package camera produces the view and projection matrices for drawing the
// terrain plane.
package camera

import (
	"teppa/gl"
)

// Camera is a free-flying perspective camera. Rotation holds Euler angles in
// radians, applied about X, then Y, then Z.
type Camera struct {
	Position gl.Vec3
	Rotation gl.Vec3
	// FOV is the vertical field of view in degrees.
	FOV       float32
	Aspect    float32
	Near, Far float32
}

// Default frames a unit-scale scene from a few units back.
func Default(aspect float32) Camera {
	return Camera{
		Position: gl.V3(0, 0, 3),
		FOV:      45,
		Aspect:   aspect,
		Near:     0.1,
		Far:      100,
	}
}

// Translate moves the camera.
func (cam *Camera) Translate(v gl.Vec3) {
	cam.Position = cam.Position.Add(v)
}

// Rotate adds to the camera's Euler angles.
func (cam *Camera) Rotate(v gl.Vec3) {
	cam.Rotation = cam.Rotation.Add(v)
}

// Orientation returns the camera's rotation as a matrix.
func (cam Camera) Orientation() gl.Mat4 {
	r := cam.Rotation
	return gl.Rotation(r.Z, gl.V3(0, 0, 1)).
		Multiply(gl.Rotation(r.Y, gl.V3(0, 1, 0))).
		Multiply(gl.Rotation(r.X, gl.V3(1, 0, 0)))
}

// View returns the world to camera transform, the inverse of placing the
// camera at Position with Orientation.
func (cam Camera) View() gl.Mat4 {
	return cam.Orientation().Transpose().Multiply(gl.Translation(cam.Position.Negate()))
}

// Projection returns the camera's perspective projection.
func (cam Camera) Projection() gl.Mat4 {
	return gl.Perspective(cam.FOV, cam.Aspect, cam.Near, cam.Far)
}

// Scene places the terrain plane in the world.
type Scene struct {
	Position gl.Vec3
	Rotation gl.Vec3
	Scale    float32
}

// Model returns the object to world transform: scale, then rotate, then
// translate.
func (s Scene) Model() gl.Mat4 {
	r := s.Rotation
	return gl.Translation(s.Position).
		Multiply(gl.Rotation(r.Z, gl.V3(0, 0, 1))).
		Multiply(gl.Rotation(r.Y, gl.V3(0, 1, 0))).
		Multiply(gl.Rotation(r.X, gl.V3(1, 0, 0))).
		Multiply(gl.Scaling(gl.V3(s.Scale, s.Scale, s.Scale)))
}

// ModelView returns the object to camera transform.
func (s Scene) ModelView(cam Camera) gl.Mat4 {
	return cam.View().Multiply(s.Model())
}

// Normal returns the matrix for transforming surface normals into camera
// space.
func (s Scene) Normal(cam Camera) (gl.Mat3, error) {
	return gl.NormalMatrix(s.ModelView(cam))
}

// MVP returns the full object to clip space transform.
func (s Scene) MVP(cam Camera) gl.Mat4 {
	return cam.Projection().Multiply(s.ModelView(cam))
}
