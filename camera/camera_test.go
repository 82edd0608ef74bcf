package camera_test

import (
	"testing"

	"teppa/camera"
	"teppa/gl"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func TestView(t *testing.T) {
	cam := camera.Default(1)
	assert.True(t, cam.View().TransformPoint(gl.V3(0, 0, 0)).Within(gl.V3(0, 0, -3), epsilon))
	assert.True(t, cam.View().TransformPoint(cam.Position).Within(gl.V3(0, 0, 0), epsilon))

	cam.Translate(gl.V3(1, 0, 0))
	assert.True(t, cam.View().TransformPoint(gl.V3(1, 0, 0)).Within(gl.V3(0, 0, -3), epsilon))

	// turned to face +X, a point ahead on +X lands on the view axis
	cam = camera.Default(1)
	cam.Position = gl.V3(0, 0, 0)
	cam.Rotate(gl.V3(0, -math32.Pi/2, 0))
	assert.True(t, cam.View().TransformPoint(gl.V3(5, 0, 0)).Within(gl.V3(0, 0, -5), 1e-4),
		"got %v", cam.View().TransformPoint(gl.V3(5, 0, 0)))
}

func TestViewInverse(t *testing.T) {
	cam := camera.Default(1.5)
	cam.Position = gl.V3(2, -1, 4)
	cam.Rotation = gl.V3(0.3, -0.2, 0.1)
	place := gl.Translation(cam.Position).Multiply(cam.Orientation())
	assert.True(t, cam.View().Multiply(place).Within(gl.I4(), 1e-4))
}

func TestScene(t *testing.T) {
	cam := camera.Default(1)
	scene := camera.Scene{Scale: 0.8}
	assert.True(t, scene.Model().Within(gl.Scaling(gl.V3(0.8, 0.8, 0.8)), epsilon))

	clip := scene.MVP(cam).Transform(gl.V4(0, 0, 0, 1))
	assert.True(t, clip.W > 0, "origin is in front of the camera")
	assert.InDelta(t, 0, clip.X/clip.W, epsilon)
	assert.InDelta(t, 0, clip.Y/clip.W, epsilon)

	n, err := scene.Normal(cam)
	require.NoError(t, err)
	assert.True(t, n.Transform(gl.V3(0, 0, 1)).Normalize().Within(gl.V3(0, 0, 1), epsilon))

	_, err = camera.Scene{Scale: 0}.Normal(cam)
	assert.ErrorIs(t, err, gl.ErrNonInvertible)
}
