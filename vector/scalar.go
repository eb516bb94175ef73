// SPDX-License-Identifier: MIT

// Package vector provides small generic 2D value types: Vector2 (a
// displacement) and Point2 (a position), over any integer or float kind.
//
// Both types are plain values. Every operation returns a new value and never
// mutates its receiver, so they are safe to share between goroutines.
//
// Arithmetic follows Go's rules for T: integer operations wrap on overflow.
// Use CheckedSub when T is unsigned and the result could underflow.
//
// Vector2[float64] converts to and from a 2×1 matrix.Matrix, so 2×2
// transforms built with the matrix package can be applied with Transform.
package vector

import "github.com/vatnar/linalg/matrix"

// Scalar is the set of element types a Vector2 or Point2 can hold: every
// integer and float kind accepted by matrix.F64.
type Scalar interface {
	matrix.Number
}

// checkedSub returns a-b and whether the result is exact in T.
// For unsigned T it fails when b > a; for signed integers it fails on
// overflow. NaN inputs also report false.
func checkedSub[T Scalar](a, b T) (T, bool) {
	r := a - b
	if b >= 0 {
		return r, r <= a
	}

	return r, r > a
}
