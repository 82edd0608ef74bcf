package mesh

import (
	"teppa/gl"
	"teppa/heightmap"
)

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []gl.Vec3
	Normals  []gl.Vec3
	UVs      []gl.Vec2
	// Indices holds three vertex indices per triangle.
	Indices []uint16
}

// Plane builds a width by height plane in the XY plane, centered on the
// origin and facing +Z, split into sub by sub cells of two triangles each.
// UV (0, 1) is the top left corner.
func Plane(width, height float32, sub Subdivision) *Mesh {
	n := int(sub)
	row := n + 1
	m := &Mesh{
		Vertices: make([]gl.Vec3, 0, row*row),
		Normals:  make([]gl.Vec3, 0, row*row),
		UVs:      make([]gl.Vec2, 0, row*row),
		Indices:  make([]uint16, 0, 6*n*n),
	}

	cellW := width / float32(n)
	cellH := height / float32(n)
	for iz := 0; iz < row; iz++ {
		z := float32(iz)*cellH - height/2
		for ix := 0; ix < row; ix++ {
			x := float32(ix)*cellW - width/2
			m.Vertices = append(m.Vertices, gl.V3(x, -z, 0))
			m.Normals = append(m.Normals, gl.V3(0, 0, 1))
			m.UVs = append(m.UVs, gl.V2(float32(ix)/float32(n), 1-float32(iz)/float32(n)))
		}
	}

	for iz := 0; iz < n; iz++ {
		for ix := 0; ix < n; ix++ {
			a := uint16(ix + row*iz)
			b := uint16(ix + row*(iz+1))
			c := uint16(ix + 1 + row*(iz+1))
			d := uint16(ix + 1 + row*iz)
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	return m
}

// Triangles returns the triangle count.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Edge is an undirected pair of vertex indices, lower first.
type Edge [2]uint16

// Edges returns every distinct triangle edge, for wireframe drawing.
func (m *Mesh) Edges() []Edge {
	seen := make(map[Edge]struct{}, len(m.Indices))
	edges := make([]Edge, 0, len(m.Indices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		tri := m.Indices[t : t+3]
		for k := 0; k < 3; k++ {
			e := Edge{tri[k], tri[(k+1)%3]}
			if e[0] > e[1] {
				e[0], e[1] = e[1], e[0]
			}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// Tile returns a copy whose UVs repeat the texture factor times across the
// plane.
func (m *Mesh) Tile(factor float32) *Mesh {
	tiled := *m
	tiled.UVs = make([]gl.Vec2, len(m.UVs))
	for i, uv := range m.UVs {
		tiled.UVs[i] = uv.Scale(factor)
	}
	return &tiled
}

// Displace returns a copy with each vertex raised along its normal by the
// field height at its UV, times scale. UVs outside [0, 1] wrap.
func (m *Mesh) Displace(field *heightmap.Field, scale float32) *Mesh {
	out := *m
	out.Vertices = make([]gl.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		uv := m.UVs[i]
		u := wrap(uv.X)
		w := 1 - wrap(uv.Y)
		h := field.Sample(gl.V2(u*float32(field.Width-1), w*float32(field.Height-1)))
		out.Vertices[i] = v.Add(m.Normals[i].Scale(h * scale))
	}
	return &out
}

func wrap(f float32) float32 {
	if f >= 0 && f <= 1 {
		return f
	}
	f -= float32(int(f))
	if f < 0 {
		f++
	}
	return f
}
