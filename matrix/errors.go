// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; MustNew is the single exception.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping. Kernels wrap at the detection site with matrixErrorf(op, err)
// so the message reads "Inverse: matrix: singular matrix" while errors.Is
// still matches the bare sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> populated -> index/range -> dimension mismatch -> numerical (singular).

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrDimensionMismatch indicates that data length does not match rows*cols,
	// or that operands have incompatible shapes (Mul, RowEquivalent, Solve).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a 1-based index or range lies outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadRange signals an empty or inverted 1-based range (From > To or From < 1).
	ErrBadRange = errors.New("matrix: invalid range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse and Solve when the forward elimination
	// finds fewer pivots than rows in the coefficient block.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrBadAugment signals an augmented width outside [0, cols].
	ErrBadAugment = errors.New("matrix: invalid augmented width")

	// ErrNotPopulated signals use of a matrix created by Empty before Insert.
	ErrNotPopulated = errors.New("matrix: matrix is not populated")

	// ErrViewActive is returned by Insert while a live MatrixView borrows the matrix.
	ErrViewActive = errors.New("matrix: matrix is borrowed by a live view")
)
