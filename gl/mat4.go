package gl

// Mat4 is a 4x4 matrix of rows X, Y, Z and W.
type Mat4 struct {
	X, Y, Z, W Vec4
}

func M4(
	a00, a01, a02, a03 float32,
	a10, a11, a12, a13 float32,
	a20, a21, a22, a23 float32,
	a30, a31, a32, a33 float32,
) Mat4 {
	return Mat4{
		V4(a00, a01, a02, a03),
		V4(a10, a11, a12, a13),
		V4(a20, a21, a22, a23),
		V4(a30, a31, a32, a33),
	}
}

// I4 returns the 4x4 identity.
func I4() Mat4 {
	return M4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Diagonal4 returns a matrix with d along its diagonal and zeros elsewhere.
func Diagonal4(d Vec4) Mat4 {
	return M4(
		d.X, 0, 0, 0,
		0, d.Y, 0, 0,
		0, 0, d.Z, 0,
		0, 0, 0, d.W,
	)
}

func (m Mat4) Add(b Mat4) Mat4 {
	return Mat4{m.X.Add(b.X), m.Y.Add(b.Y), m.Z.Add(b.Z), m.W.Add(b.W)}
}

func (m Mat4) Subtract(b Mat4) Mat4 {
	return Mat4{m.X.Subtract(b.X), m.Y.Subtract(b.Y), m.Z.Subtract(b.Z), m.W.Subtract(b.W)}
}

func (m Mat4) AddScalar(s float32) Mat4 {
	return Mat4{m.X.AddScalar(s), m.Y.AddScalar(s), m.Z.AddScalar(s), m.W.AddScalar(s)}
}

func (m Mat4) SubtractScalar(s float32) Mat4 {
	return Mat4{m.X.SubtractScalar(s), m.Y.SubtractScalar(s), m.Z.SubtractScalar(s), m.W.SubtractScalar(s)}
}

// Scale multiplies every element by s.
func (m Mat4) Scale(s float32) Mat4 {
	return Mat4{m.X.Scale(s), m.Y.Scale(s), m.Z.Scale(s), m.W.Scale(s)}
}

// Transpose swaps rows and columns.
func (m Mat4) Transpose() Mat4 {
	m.X.Y, m.Y.X = m.Y.X, m.X.Y
	m.X.Z, m.Z.X = m.Z.X, m.X.Z
	m.X.W, m.W.X = m.W.X, m.X.W
	m.Y.Z, m.Z.Y = m.Z.Y, m.Y.Z
	m.Y.W, m.W.Y = m.W.Y, m.Y.W
	m.Z.W, m.W.Z = m.W.Z, m.Z.W
	return m
}

// Multiply returns the matrix product m·b.
func (m Mat4) Multiply(b Mat4) Mat4 {
	bt := b.Transpose()
	return Mat4{bt.Transform(m.X), bt.Transform(m.Y), bt.Transform(m.Z), bt.Transform(m.W)}
}

// Transform returns m·v.
func (m Mat4) Transform(v Vec4) Vec4 {
	return V4(m.X.Dot(v), m.Y.Dot(v), m.Z.Dot(v), m.W.Dot(v))
}

// TransformPoint transforms p as a homogeneous point (w=1) and projects the
// result back into three dimensions.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.Transform(p.Vec4(1)).Project()
}

// Submatrix returns the receiver with the given row and column removed.
func (m Mat4) Submatrix(row, col int) Mat3 {
	var r [3][3]float32
	for i, ri := 0, 0; i < 4; i++ {
		if i == row {
			continue
		}
		for j, rj := 0, 0; j < 4; j++ {
			if j == col {
				continue
			}
			r[ri][rj] = m.at(i, j)
			rj++
		}
		ri++
	}
	return M3(
		r[0][0], r[0][1], r[0][2],
		r[1][0], r[1][1], r[1][2],
		r[2][0], r[2][1], r[2][2],
	)
}

// Determinant expands along the first row.
func (m Mat4) Determinant() float32 {
	var d float32
	for j := 0; j < 4; j++ {
		d += sign(j) * m.X.at(j) * m.Submatrix(0, j).Determinant()
	}
	return d
}

// Cofactors returns the matrix of signed minors,
// (-1)^(i+j)·det(Submatrix(i, j)).
func (m Mat4) Cofactors() Mat4 {
	var c [4][4]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			c[i][j] = sign(i+j) * m.Submatrix(i, j).Determinant()
		}
	}
	return M4(
		c[0][0], c[0][1], c[0][2], c[0][3],
		c[1][0], c[1][1], c[1][2], c[1][3],
		c[2][0], c[2][1], c[2][2], c[2][3],
		c[3][0], c[3][1], c[3][2], c[3][3],
	)
}

// Adjugate returns the transposed cofactor matrix.
func (m Mat4) Adjugate() Mat4 {
	return m.Cofactors().Transpose()
}

// Inverse returns the adjugate divided by the determinant, or
// ErrNonInvertible if the determinant is zero.
func (m Mat4) Inverse() (Mat4, error) {
	d := m.Determinant()
	if d == 0 {
		return Mat4{}, ErrNonInvertible
	}
	return m.Adjugate().Scale(1 / d), nil
}

func (m Mat4) Lerp(b Mat4, t float32) Mat4 {
	return Mat4{m.X.Lerp(b.X, t), m.Y.Lerp(b.Y, t), m.Z.Lerp(b.Z, t), m.W.Lerp(b.W, t)}
}

// Equals returns true only if every element is exactly equal.
func (m Mat4) Equals(b Mat4) bool {
	return m.X.Equals(b.X) && m.Y.Equals(b.Y) && m.Z.Equals(b.Z) && m.W.Equals(b.W)
}

// Within returns true only if every element differs by at most epsilon.
func (m Mat4) Within(b Mat4, epsilon float32) bool {
	return (m.X.Within(b.X, epsilon) &&
		m.Y.Within(b.Y, epsilon) &&
		m.Z.Within(b.Z, epsilon) &&
		m.W.Within(b.W, epsilon))
}

// Flatten returns the elements in column-major order, as a GPU uniform
// upload expects them.
func (m Mat4) Flatten() []float32 {
	t := m.Transpose()
	r := make([]float32, 0, 16)
	r = append(r, t.X.Slice()...)
	r = append(r, t.Y.Slice()...)
	r = append(r, t.Z.Slice()...)
	return append(r, t.W.Slice()...)
}

func (m Mat4) at(i, j int) float32 {
	switch i {
	case 0:
		return m.X.at(j)
	case 1:
		return m.Y.at(j)
	case 2:
		return m.Z.at(j)
	default:
		return m.W.at(j)
	}
}
