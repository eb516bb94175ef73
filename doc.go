// Package linalg is a small dense linear-algebra toolkit: row-major float64
// matrices with Gaussian elimination, plus generic 2D vectors and points.
//
// What is inside:
//
//	• Matrix construction with 1-based, inclusive indexing
//	• Zero-copy views that borrow a matrix and block writes while live
//	• Row-echelon and reduced row-echelon forms with partial pivoting
//	• Inversion, linear solves, rank and row-equivalence
//	• Rounding of every elimination result to 5 decimals (configurable)
//	• Interop with gonum.org/v1/gonum/mat for factorizations beyond elimination
//
// Subpackages:
//
//	matrix/   — Matrix, MatrixView, elimination kernels, options, gonum bridge
//	vector/   — Vector2 and Point2 over any integer or float kind
//	examples/ — runnable programs: mesh currents, 2D rotation
//
// Quick example:
//
//	a := matrix.MustNew(2, 2, matrix.F64(4, 7, 2, 6))
//	inv, err := a.Inverse() // [0.6 -0.7; -0.2 0.4]
//
//	go get github.com/vatnar/linalg/matrix
package linalg
