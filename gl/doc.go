// Package gl provides small fixed-size vector and matrix types for terrain
// and camera math.
//
// All types are float32 values; every method returns a new value and never
// modifies its receiver or arguments. Matrices are stored row-major: the X
// field of a Mat4 is its first row. Mixing dimensions does not compile, so a
// mismatch is caught by the type checker rather than at run time.
//
// Transforms follow the column vector convention, m.Transform(v) == M·v,
// with the exception of RotateX, RotateY and RotateZ which build the
// transposed (row vector) rotation; see their documentation.
package gl

import "errors"

// ErrNonInvertible is returned when inverting a matrix whose determinant is
// exactly zero.
var ErrNonInvertible = errors.New("non-invertible matrix; determinant is 0")
