// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/index/range checks here.
//  - Return sentinel errors (annotated with coordinates where useful) so call
//    sites can wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//
// Note:
//  - Validators operate on snapshot values (rows, cols, len) rather than on a
//    *Matrix so they never touch the lock.

package matrix

import "fmt"

// Operation tags for unified error wrapping (no magic strings).
const (
	opNew            = "New"
	opEmpty          = "Empty"
	opInsert         = "Insert"
	opGet            = "Get"
	opSubmatrix      = "Submatrix"
	opView           = "View"
	opEchelon        = "Echelon"
	opReducedEchelon = "ReducedEchelon"
	opInverse        = "Inverse"
	opRank           = "Rank"
	opRowEquivalent  = "RowEquivalent"
	opSolve          = "Solve"
	opMul            = "Mul"
	opIdentity       = "Identity"
	opToGonum        = "ToGonum"
	opFromGonum      = "FromGonum"
	opLU             = "LU"
	opDet            = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the matrix reference is non-nil.
func validateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateShape rejects negative dimensions.
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, cols)
	}

	return nil
}

// validateDataLen checks that a flat buffer fills a rows×cols matrix exactly.
func validateDataLen(rows, cols, n int) error {
	if n != rows*cols {
		return fmt.Errorf("%w: %d values for a %d×%d matrix", ErrDimensionMismatch, n, rows, cols)
	}

	return nil
}

// validatePopulated rejects matrices still in the transient Empty state.
func validatePopulated(rows, cols, n int) error {
	if n != rows*cols {
		return fmt.Errorf("%w: %d×%d holds %d values", ErrNotPopulated, rows, cols, n)
	}

	return nil
}

// validateIndex checks a 1-based (row, col) pair against a rows×cols matrix.
// Zero and negative indices are rejected explicitly, never left to underflow.
func validateIndex(row, col, rows, cols int) error {
	if row < 1 || row > rows || col < 1 || col > cols {
		return fmt.Errorf("%w: requested (%d,%d), matrix is %d×%d", ErrOutOfRange, row, col, rows, cols)
	}

	return nil
}

// validateRange checks a 1-based inclusive range against a dimension of size n.
// Empty or inverted ranges wrap ErrBadRange; ranges past the edge wrap ErrOutOfRange.
// Both are reported under ErrOutOfRange so callers may test a single sentinel.
func validateRange(r Range, n int, axis string) error {
	if r.From < 1 || r.To < r.From {
		return fmt.Errorf("%w: %s range %s: %w", ErrOutOfRange, axis, r, ErrBadRange)
	}
	if r.To > n {
		return fmt.Errorf("%w: %s range %s, matrix has %d %ss", ErrOutOfRange, axis, r, n, axis)
	}

	return nil
}

// validateAugment checks that an augmented width fits inside cols.
func validateAugment(aug, cols int) error {
	if aug < 0 || aug > cols {
		return fmt.Errorf("%w: %d for %d columns", ErrBadAugment, aug, cols)
	}

	return nil
}
