// Package matrix is a dense, row-major float64 matrix engine.
//
// The matrix package provides:
//
//   - Matrix: a flat row-major buffer with 1-based accessors (Get, Submatrix).
//   - MatrixView: a zero-copy window over a parent Matrix, materialized on demand.
//   - Gaussian elimination with partial pivoting (Echelon, EchelonAug).
//   - Gauss-Jordan reduction (ReducedEchelon) with an optional augmented block.
//   - Inversion and linear solves through [A | I] and [A | B] (Inverse, Solve).
//   - Rank and row-equivalence queries built on the same elimination.
//   - LU factorization with partial pivoting (P·A = L·U) and determinants.
//   - Interop with gonum (ToGonum, FromGonum).
//
// Indices are 1-based and ranges are inclusive, as when reading a matrix by
// hand: Span(1, 2) selects the first two rows.
//
// Every elimination result is rounded to DefaultDecimals (5) digits to
// suppress floating round-off; use WithDecimals or WithoutRounding to change
// that, and WithPivotEpsilon to change the near-zero pivot threshold.
//
// Matrices behave as values: only Insert mutates, and it is refused while a
// MatrixView borrows the matrix. All other operations return new matrices and
// are safe for concurrent readers.
//
//	a := matrix.MustNew(2, 2, matrix.F64(4, 7, 2, 6))
//	inv, err := a.Inverse()
package matrix
