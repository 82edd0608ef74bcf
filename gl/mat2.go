package gl

// Mat2 is a 2x2 matrix of rows X and Y.
type Mat2 struct {
	X, Y Vec2
}

func M2(
	a00, a01 float32,
	a10, a11 float32,
) Mat2 {
	return Mat2{V2(a00, a01), V2(a10, a11)}
}

// I2 returns the 2x2 identity.
func I2() Mat2 {
	return M2(
		1, 0,
		0, 1,
	)
}

// Diagonal2 returns a matrix with d along its diagonal and zeros elsewhere.
func Diagonal2(d Vec2) Mat2 {
	return M2(
		d.X, 0,
		0, d.Y,
	)
}

// Add returns the element-wise sum of the receiver and argument.
func (m Mat2) Add(b Mat2) Mat2 {
	return Mat2{m.X.Add(b.X), m.Y.Add(b.Y)}
}

// Subtract returns the element-wise difference of the receiver and argument.
func (m Mat2) Subtract(b Mat2) Mat2 {
	return Mat2{m.X.Subtract(b.X), m.Y.Subtract(b.Y)}
}

// AddScalar adds s to every element.
func (m Mat2) AddScalar(s float32) Mat2 {
	return Mat2{m.X.AddScalar(s), m.Y.AddScalar(s)}
}

// SubtractScalar subtracts s from every element.
func (m Mat2) SubtractScalar(s float32) Mat2 {
	return Mat2{m.X.SubtractScalar(s), m.Y.SubtractScalar(s)}
}

// Scale multiplies every element by s.
func (m Mat2) Scale(s float32) Mat2 {
	return Mat2{m.X.Scale(s), m.Y.Scale(s)}
}

// Transpose swaps rows and columns.
func (m Mat2) Transpose() Mat2 {
	m.X.Y, m.Y.X = m.Y.X, m.X.Y
	return m
}

// Multiply returns the matrix product m·b.
func (m Mat2) Multiply(b Mat2) Mat2 {
	bt := b.Transpose()
	return M2(
		m.X.Dot(bt.X), m.X.Dot(bt.Y),
		m.Y.Dot(bt.X), m.Y.Dot(bt.Y),
	)
}

// Transform returns m·v.
func (m Mat2) Transform(v Vec2) Vec2 {
	return V2(m.X.Dot(v), m.Y.Dot(v))
}

// Determinant returns the determinant of the receiver.
func (m Mat2) Determinant() float32 {
	return m.X.X*m.Y.Y - m.X.Y*m.Y.X
}

// Inverse returns the inverse of the receiver, or ErrNonInvertible if its
// determinant is zero.
func (m Mat2) Inverse() (Mat2, error) {
	d := m.Determinant()
	if d == 0 {
		return Mat2{}, ErrNonInvertible
	}
	return M2(
		m.Y.Y, -m.X.Y,
		-m.Y.X, m.X.X,
	).Scale(1 / d), nil
}

// Lerp interpolates every element linearly toward b.
func (m Mat2) Lerp(b Mat2, t float32) Mat2 {
	return Mat2{m.X.Lerp(b.X, t), m.Y.Lerp(b.Y, t)}
}

// Equals returns true only if every element is exactly equal.
func (m Mat2) Equals(b Mat2) bool {
	return m.X.Equals(b.X) && m.Y.Equals(b.Y)
}

// Within returns true only if every element differs by at most epsilon.
func (m Mat2) Within(b Mat2, epsilon float32) bool {
	return m.X.Within(b.X, epsilon) && m.Y.Within(b.Y, epsilon)
}

// Flatten returns the elements in column-major order.
func (m Mat2) Flatten() []float32 {
	t := m.Transpose()
	return append(t.X.Slice(), t.Y.Slice()...)
}

func (m Mat2) at(i, j int) float32 {
	if i == 0 {
		return m.X.at(j)
	}
	return m.Y.at(j)
}
