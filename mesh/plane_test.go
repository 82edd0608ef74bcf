package mesh_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"teppa/gl"
	"teppa/heightmap"
	"teppa/mesh"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubdivision(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1.5, 0, -2, 256} {
		t.Run(fmt.Sprintf("%v", f), func(t *testing.T) {
			_, err := mesh.SubdivisionFromFloat(f)
			assert.True(t, errors.Is(err, mesh.ErrSubdivision), "got %v", err)
		})
	}
	for _, f := range []float64{1, 2, 50, 255} {
		s, err := mesh.SubdivisionFromFloat(f)
		require.NoError(t, err)
		assert.Equal(t, mesh.Subdivision(f), s)
	}

	s, err := mesh.NewSubdivision(3)
	require.NoError(t, err)
	assert.Equal(t, mesh.Subdivision(1), s.Step(-10))
	assert.Equal(t, mesh.Subdivision(4), s.Step(1))
	assert.Equal(t, mesh.Subdivision(mesh.MaxSubdivision), s.Step(1000))
}

func TestPlane(t *testing.T) {
	for _, tc := range []struct {
		sub             mesh.Subdivision
		vertices, faces int
		edges           int
	}{
		{1, 4, 2, 5},
		{2, 9, 8, 16},
		{50, 51 * 51, 2 * 50 * 50, 2*50*51 + 50*50},
	} {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			m := mesh.Plane(2, 2, tc.sub)
			assert.Len(t, m.Vertices, tc.vertices)
			assert.Len(t, m.Normals, tc.vertices)
			assert.Len(t, m.UVs, tc.vertices)
			assert.Len(t, m.Indices, 3*tc.faces)
			assert.Equal(t, tc.faces, m.Triangles())
			assert.Len(t, m.Edges(), tc.edges)
			for _, i := range m.Indices {
				assert.Less(t, int(i), tc.vertices)
			}
		})
	}

	m := mesh.Plane(4, 2, 1)
	assert.Equal(t, []gl.Vec3{
		gl.V3(-2, 1, 0), gl.V3(2, 1, 0),
		gl.V3(-2, -1, 0), gl.V3(2, -1, 0),
	}, m.Vertices)
	assert.Equal(t, []gl.Vec2{gl.V2(0, 1), gl.V2(1, 1), gl.V2(0, 0), gl.V2(1, 0)}, m.UVs)
	assert.Equal(t, []uint16{0, 2, 1, 2, 3, 1}, m.Indices)
	assert.Equal(t, gl.V3(0, 0, 1), m.Normals[3])
}

func TestTileDisplace(t *testing.T) {
	m := mesh.Plane(2, 2, 2)
	tiled := m.Tile(3)
	assert.Equal(t, gl.V2(0, 3), tiled.UVs[0])
	assert.Equal(t, gl.V2(3, 3), tiled.UVs[2])
	assert.Equal(t, gl.V2(1.5, 0), tiled.UVs[7])
	assert.Equal(t, gl.V2(0, 1), m.UVs[0], "tiling copies")

	field, err := heightmap.New(2, 2, []float32{
		1, 0,
		0, 0,
	})
	require.NoError(t, err)
	d := m.Displace(field, 2)
	assert.InDelta(t, 2, d.Vertices[0].Z, 1e-6, "top left is the first row of the field")
	assert.InDelta(t, 0, d.Vertices[8].Z, 1e-6)
	assert.InDelta(t, 0.5, d.Vertices[4].Z, 1e-6)
	assert.Equal(t, float32(0), m.Vertices[0].Z, "displacing copies")
}
