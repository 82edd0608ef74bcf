package gl

// Mat3 is a 3x3 matrix of rows X, Y and Z.
type Mat3 struct {
	X, Y, Z Vec3
}

func M3(
	a00, a01, a02 float32,
	a10, a11, a12 float32,
	a20, a21, a22 float32,
) Mat3 {
	return Mat3{
		V3(a00, a01, a02),
		V3(a10, a11, a12),
		V3(a20, a21, a22),
	}
}

// I3 returns the 3x3 identity.
func I3() Mat3 {
	return M3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// Diagonal3 returns a matrix with d along its diagonal and zeros elsewhere.
func Diagonal3(d Vec3) Mat3 {
	return M3(
		d.X, 0, 0,
		0, d.Y, 0,
		0, 0, d.Z,
	)
}

func (m Mat3) Add(b Mat3) Mat3 {
	return Mat3{m.X.Add(b.X), m.Y.Add(b.Y), m.Z.Add(b.Z)}
}

func (m Mat3) Subtract(b Mat3) Mat3 {
	return Mat3{m.X.Subtract(b.X), m.Y.Subtract(b.Y), m.Z.Subtract(b.Z)}
}

func (m Mat3) AddScalar(s float32) Mat3 {
	return Mat3{m.X.AddScalar(s), m.Y.AddScalar(s), m.Z.AddScalar(s)}
}

func (m Mat3) SubtractScalar(s float32) Mat3 {
	return Mat3{m.X.SubtractScalar(s), m.Y.SubtractScalar(s), m.Z.SubtractScalar(s)}
}

// Scale multiplies every element by s.
func (m Mat3) Scale(s float32) Mat3 {
	return Mat3{m.X.Scale(s), m.Y.Scale(s), m.Z.Scale(s)}
}

// Transpose swaps rows and columns.
func (m Mat3) Transpose() Mat3 {
	m.X.Y, m.Y.X = m.Y.X, m.X.Y
	m.X.Z, m.Z.X = m.Z.X, m.X.Z
	m.Y.Z, m.Z.Y = m.Z.Y, m.Y.Z
	return m
}

// Multiply returns the matrix product m·b.
func (m Mat3) Multiply(b Mat3) Mat3 {
	bt := b.Transpose()
	return Mat3{bt.Transform(m.X), bt.Transform(m.Y), bt.Transform(m.Z)}
}

// Transform returns m·v.
func (m Mat3) Transform(v Vec3) Vec3 {
	return V3(m.X.Dot(v), m.Y.Dot(v), m.Z.Dot(v))
}

// Submatrix returns the receiver with the given row and column removed.
func (m Mat3) Submatrix(row, col int) Mat2 {
	var r [2][2]float32
	for i, ri := 0, 0; i < 3; i++ {
		if i == row {
			continue
		}
		for j, rj := 0, 0; j < 3; j++ {
			if j == col {
				continue
			}
			r[ri][rj] = m.at(i, j)
			rj++
		}
		ri++
	}
	return M2(r[0][0], r[0][1], r[1][0], r[1][1])
}

// Determinant returns the determinant of the receiver.
func (m Mat3) Determinant() float32 {
	return m.X.X*m.Y.Y*m.Z.Z +
		m.X.Y*m.Y.Z*m.Z.X +
		m.X.Z*m.Y.X*m.Z.Y -
		m.X.Z*m.Y.Y*m.Z.X -
		m.X.X*m.Y.Z*m.Z.Y -
		m.X.Y*m.Y.X*m.Z.Z
}

// Cofactors returns the matrix of signed minors,
// (-1)^(i+j)·det(Submatrix(i, j)).
func (m Mat3) Cofactors() Mat3 {
	var c [3][3]float32
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = sign(i+j) * m.Submatrix(i, j).Determinant()
		}
	}
	return M3(
		c[0][0], c[0][1], c[0][2],
		c[1][0], c[1][1], c[1][2],
		c[2][0], c[2][1], c[2][2],
	)
}

// Adjugate returns the transposed cofactor matrix.
func (m Mat3) Adjugate() Mat3 {
	return m.Cofactors().Transpose()
}

// Inverse returns the adjugate divided by the determinant, or
// ErrNonInvertible if the determinant is zero.
func (m Mat3) Inverse() (Mat3, error) {
	d := m.Determinant()
	if d == 0 {
		return Mat3{}, ErrNonInvertible
	}
	return m.Adjugate().Scale(1 / d), nil
}

func (m Mat3) Lerp(b Mat3, t float32) Mat3 {
	return Mat3{m.X.Lerp(b.X, t), m.Y.Lerp(b.Y, t), m.Z.Lerp(b.Z, t)}
}

// Equals returns true only if every element is exactly equal.
func (m Mat3) Equals(b Mat3) bool {
	return m.X.Equals(b.X) && m.Y.Equals(b.Y) && m.Z.Equals(b.Z)
}

// Within returns true only if every element differs by at most epsilon.
func (m Mat3) Within(b Mat3, epsilon float32) bool {
	return m.X.Within(b.X, epsilon) && m.Y.Within(b.Y, epsilon) && m.Z.Within(b.Z, epsilon)
}

// Flatten returns the elements in column-major order.
func (m Mat3) Flatten() []float32 {
	t := m.Transpose()
	r := make([]float32, 0, 9)
	r = append(r, t.X.Slice()...)
	r = append(r, t.Y.Slice()...)
	return append(r, t.Z.Slice()...)
}

func (m Mat3) at(i, j int) float32 {
	switch i {
	case 0:
		return m.X.at(j)
	case 1:
		return m.Y.at(j)
	default:
		return m.Z.at(j)
	}
}

func sign(n int) float32 {
	if n%2 == 0 {
		return 1
	}
	return -1
}
