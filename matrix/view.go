// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sync"
)

// MatrixView is a non-owning, lazily materialized window into a parent Matrix.
// It stores only the parent pointer and two 1-based inclusive ranges.
//
// While a view is live the parent refuses Insert (ErrViewActive); call Release
// once the view is no longer needed. Any number of views may read the same
// parent concurrently.
type MatrixView struct {
	parent   *Matrix
	rowRange Range
	colRange Range
	release  sync.Once
}

// View returns a zero-copy view of the region selected by two 1-based
// inclusive ranges. The ranges are validated against the parent now; the
// copy happens only in ToMatrix.
//
// Errors:
//   - ErrNilMatrix, ErrNotPopulated, ErrOutOfRange (wrapping ErrBadRange for empty ranges).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) View(rowRange, colRange Range) (*MatrixView, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opView, err)
	}
	// Hold the read lock across validation and registration so a concurrent
	// Insert either completes before the borrow or observes it.
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := validatePopulated(m.rows, m.cols, len(m.data)); err != nil {
		return nil, matrixErrorf(opView, err)
	}
	if err := validateRange(rowRange, m.rows, "row"); err != nil {
		return nil, matrixErrorf(opView, err)
	}
	if err := validateRange(colRange, m.cols, "column"); err != nil {
		return nil, matrixErrorf(opView, err)
	}
	m.views.Add(1)

	return &MatrixView{parent: m, rowRange: rowRange, colRange: colRange}, nil
}

// NewView is the free-function form of parent.View.
func NewView(parent *Matrix, rowRange, colRange Range) (*MatrixView, error) {
	return parent.View(rowRange, colRange)
}

// Rows returns the number of rows the view selects.
func (v *MatrixView) Rows() int { return v.rowRange.Count() }

// Cols returns the number of columns the view selects.
func (v *MatrixView) Cols() int { return v.colRange.Count() }

// Ranges returns the 1-based row and column ranges of the view.
func (v *MatrixView) Ranges() (rows, cols Range) { return v.rowRange, v.colRange }

// Parent returns the borrowed matrix.
func (v *MatrixView) Parent() *Matrix { return v.parent }

// ToMatrix materializes the view into an owned Matrix.
// The result is identical to parent.Submatrix with the same ranges; the
// parent is never mutated and ToMatrix may be called any number of times.
// Complexity: O(r'*c').
func (v *MatrixView) ToMatrix() (*Matrix, error) {
	return v.parent.Submatrix(v.rowRange, v.colRange)
}

// Release ends the borrow on the parent. Further calls are no-ops.
// ToMatrix keeps working after Release, but no longer guards against Insert.
func (v *MatrixView) Release() {
	v.release.Do(func() { v.parent.views.Add(-1) })
}

// String renders the view descriptor, e.g. "MatrixView[1..=2, 2..=3]".
func (v *MatrixView) String() string {
	return fmt.Sprintf("MatrixView[%s, %s]", v.rowRange, v.colRange)
}
