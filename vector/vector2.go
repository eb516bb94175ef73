// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/vatnar/linalg/matrix"
)

// Vector2 is a 2D displacement with components X and Y.
type Vector2[T Scalar] struct {
	X, Y T
}

// New returns the vector (x, y).
func New[T Scalar](x, y T) Vector2[T] { return Vector2[T]{X: x, Y: y} }

// FromArray returns the vector (a[0], a[1]).
func FromArray[T Scalar](a [2]T) Vector2[T] { return Vector2[T]{X: a[0], Y: a[1]} }

// Array returns the components as [X, Y].
func (v Vector2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// Add returns v + u.
func (v Vector2[T]) Add(u Vector2[T]) Vector2[T] { return Vector2[T]{v.X + u.X, v.Y + u.Y} }

// Sub returns v - u. For unsigned T an underflowing component wraps; see CheckedSub.
func (v Vector2[T]) Sub(u Vector2[T]) Vector2[T] { return Vector2[T]{v.X - u.X, v.Y - u.Y} }

// CheckedSub returns v - u, or ok=false if either component underflows
// (unsigned T) or overflows (signed T).
func (v Vector2[T]) CheckedSub(u Vector2[T]) (Vector2[T], bool) {
	x, okX := checkedSub(v.X, u.X)
	y, okY := checkedSub(v.Y, u.Y)
	if !okX || !okY {
		return Vector2[T]{}, false
	}

	return Vector2[T]{x, y}, true
}

// Scale returns k·v in the element type.
func (v Vector2[T]) Scale(k T) Vector2[T] { return Vector2[T]{v.X * k, v.Y * k} }

// ScaleF returns k·v as a float64 vector, so integer vectors can be scaled
// by fractional factors.
func (v Vector2[T]) ScaleF(k float64) Vector2[float64] {
	return Vector2[float64]{float64(v.X) * k, float64(v.Y) * k}
}

// Float64 converts the components to float64.
func (v Vector2[T]) Float64() Vector2[float64] {
	return Vector2[float64]{float64(v.X), float64(v.Y)}
}

// Dot returns the dot product v·u.
func (v Vector2[T]) Dot(u Vector2[T]) T { return v.X*u.X + v.Y*u.Y }

// Cross returns the z component of the 3D cross product of v and u,
// i.e. |v|·|u|·sin(θ) with sign given by the turn from v to u.
func (v Vector2[T]) Cross(u Vector2[T]) T { return v.X*u.Y - v.Y*u.X }

// Mag returns the Euclidean length of v.
func (v Vector2[T]) Mag() float64 { return math.Hypot(float64(v.X), float64(v.Y)) }

// Angle returns the unsigned angle between v and u in radians, in [0, π].
// It is NaN when either vector has zero length.
func (v Vector2[T]) Angle(u Vector2[T]) float64 {
	a, b := v.Float64(), u.Float64()
	c := a.Dot(b) / (a.Mag() * b.Mag())
	// clamp round-off outside acos' domain
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// String renders v as "[x, y]".
func (v Vector2[T]) String() string { return fmt.Sprintf("[%v, %v]", v.X, v.Y) }

// Matrix returns v as a 2×1 column matrix.
func (v Vector2[T]) Matrix() *matrix.Matrix {
	return matrix.MustNew(2, 1, matrix.F64(v.X, v.Y))
}

// FromMatrix reads a 2×1 or 1×2 matrix as a float64 vector.
// Errors: matrix.ErrNilMatrix, matrix.ErrNotPopulated, matrix.ErrDimensionMismatch.
func FromMatrix(m *matrix.Matrix) (Vector2[float64], error) {
	if m == nil {
		return Vector2[float64]{}, fmt.Errorf("FromMatrix: %w", matrix.ErrNilMatrix)
	}
	rows, cols := m.Shape()
	if rows*cols != 2 || (rows != 1 && cols != 1) {
		return Vector2[float64]{}, fmt.Errorf("FromMatrix: %w: want 2×1 or 1×2, got %d×%d", matrix.ErrDimensionMismatch, rows, cols)
	}
	if m.IsEmpty() {
		return Vector2[float64]{}, fmt.Errorf("FromMatrix: %w", matrix.ErrNotPopulated)
	}
	d := m.Data()

	return Vector2[float64]{d[0], d[1]}, nil
}

// Transform returns t·v for a 2×2 matrix t, e.g. a rotation or shear.
// Errors: those of matrix.Mul, plus matrix.ErrDimensionMismatch when t is not 2×2.
func (v Vector2[T]) Transform(t *matrix.Matrix) (Vector2[float64], error) {
	if t != nil && (t.Rows() != 2 || t.Cols() != 2) {
		return Vector2[float64]{}, fmt.Errorf("Transform: %w: want 2×2, got %d×%d", matrix.ErrDimensionMismatch, t.Rows(), t.Cols())
	}
	out, err := matrix.Mul(t, v.Matrix())
	if err != nil {
		return Vector2[float64]{}, err
	}

	return FromMatrix(out)
}
