// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & safe 1-based accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula (r-1)*cols + (c-1).
//   - Guarantee safety at the public surface: Get/Submatrix return errors instead of panicking.
//   - Keep value semantics: only Insert mutates; every other method returns a new *Matrix.
//   - Enforce the view-borrow rule at runtime (Insert fails while a MatrixView is live).
//
// Concurrency:
//   - Readers take the read lock just long enough to snapshot (rows, cols, data).
//   - Insert swaps in a freshly allocated buffer under the write lock; a published
//     buffer is never written again, so snapshots stay valid after unlocking.
//
// Complexity quicksheet:
//   - New/Insert: O(r*c) copy; Get: O(1); Clone: O(r*c); View: O(1); Submatrix: O(r'*c').
package matrix

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"
)

// ---------- Formatting literals ----------
const (
	_fmtHeader  = "Matrix\n"
	_fmtSep     = " "
	_fmtRowDone = "\n"
)

// Matrix is a dense row-major matrix of float64 values with 1-based accessors.
//   - rows, cols hold dimensions.
//   - data is a flat buffer of length rows*cols (zero only between Empty and Insert).
//   - views counts live MatrixView borrows; Insert is refused while it is non-zero.
//
// A Matrix must not be copied after first use; pass *Matrix.
type Matrix struct {
	mu    sync.RWMutex
	views atomic.Int64

	rows, cols int       // row and column counts (>= 0)
	data       []float64 // contiguous row-major storage
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// Empty creates a rows×cols matrix with reserved capacity and no values.
// The matrix must be populated with Insert before it can be read.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is negative.
//
// Complexity:
//   - Time O(1) plus allocation, Space O(r*c).
func Empty(rows, cols int) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opEmpty, err)
	}

	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, 0, rows*cols),
	}, nil
}

// New creates a rows×cols matrix holding a copy of the flat row-major slice data.
// MAIN DESCRIPTION:
//   - Equivalent to Empty followed by Insert.
//
// Implementation:
//   - Stage 1: validate shape and len(data) == rows*cols.
//   - Stage 2: allocate and copy.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//   - data: row-major values; data[(r-1)*cols+(c-1)] is entry (r, c).
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Combine with F64 for integer literals: New(2, 2, F64(1, 2, 3, 4)).
func New(rows, cols int, data []float64) (*Matrix, error) {
	m, err := Empty(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if err = m.Insert(data); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return m, nil
}

// MustNew is like New but panics on error. Intended for literals in tests
// and package-level fixtures.
func MustNew(rows, cols int, data []float64) *Matrix {
	m, err := New(rows, cols, data)
	if err != nil {
		panic(err)
	}

	return m
}

// newOwned wraps an already-owned buffer without copying. Internal kernels only.
func newOwned(rows, cols int, data []float64) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: data}
}

// Insert overwrites the matrix values with a copy of data.
// MAIN DESCRIPTION:
//   - The only mutating operation on Matrix.
//
// Implementation:
//   - Stage 1: take the write lock; refuse while a view borrows the matrix.
//   - Stage 2: validate len(data) == rows*cols.
//   - Stage 3: publish a fresh buffer (previous snapshots stay untouched).
//
// Errors:
//   - ErrNilMatrix, ErrViewActive, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Insert(data []float64) error {
	if err := validateNotNil(m); err != nil {
		return matrixErrorf(opInsert, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if n := m.views.Load(); n > 0 {
		return matrixErrorf(opInsert, fmt.Errorf("%w (%d live)", ErrViewActive, n))
	}
	if err := validateDataLen(m.rows, m.cols, len(data)); err != nil {
		return matrixErrorf(opInsert, err)
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	m.data = buf

	return nil
}

// snapshot returns the current shape and buffer under the read lock.
// The returned slice must be treated as read-only.
func (m *Matrix) snapshot() (rows, cols int, data []float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.rows, m.cols, m.data
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns the number of populated scalars (rows*cols once inserted, 0 after Empty).
func (m *Matrix) Len() int {
	_, _, data := m.snapshot()

	return len(data)
}

// Capacity returns the reserved storage; differs from Len only right after Empty.
func (m *Matrix) Capacity() int {
	_, _, data := m.snapshot()

	return cap(data)
}

// IsEmpty reports whether the matrix holds no values.
func (m *Matrix) IsEmpty() bool { return m.Len() == 0 }

// IsSquare reports whether rows == cols.
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// Data returns a copy of the row-major buffer.
// Complexity: O(r*c).
func (m *Matrix) Data() []float64 {
	_, _, data := m.snapshot()
	out := make([]float64, len(data))
	copy(out, data)

	return out
}

// Get returns the entry at the 1-based position (row, col).
// MAIN DESCRIPTION:
//   - Safe element read; row 1, col 1 is the top-left entry.
//
// Errors:
//   - ErrNotPopulated before Insert.
//   - ErrOutOfRange when row or col is < 1 or past the edge; the message
//     names the requested position and the matrix shape.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) Get(row, col int) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, matrixErrorf(opGet, err)
	}
	rows, cols, data := m.snapshot()
	if err := validatePopulated(rows, cols, len(data)); err != nil {
		return 0, matrixErrorf(opGet, err)
	}
	if err := validateIndex(row, col, rows, cols); err != nil {
		return 0, matrixErrorf(opGet, err)
	}

	return data[(row-1)*cols+(col-1)], nil
}

// Submatrix copies the entries selected by two 1-based inclusive ranges.
// MAIN DESCRIPTION:
//   - Result has rows = rowRange.Count(), cols = colRange.Count(), row-major order.
//
// Implementation:
//   - Stage 1: validate both ranges (non-empty, inside the matrix).
//   - Stage 2: copy each selected row segment with a single copy call.
//
// Errors:
//   - ErrNilMatrix, ErrNotPopulated, ErrOutOfRange (wrapping ErrBadRange for empty ranges).
//
// Complexity:
//   - Time O(r'*c'), Space O(r'*c').
//
// AI-Hints:
//   - Use View when the copy can be deferred.
func (m *Matrix) Submatrix(rowRange, colRange Range) (*Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	rows, cols, data := m.snapshot()
	if err := validatePopulated(rows, cols, len(data)); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := validateRange(rowRange, rows, "row"); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := validateRange(colRange, cols, "column"); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	return extract(data, cols, rowRange, colRange), nil
}

// extract copies a validated region out of a row-major buffer.
func extract(data []float64, cols int, rowRange, colRange Range) *Matrix {
	rp, cp := rowRange.Count(), colRange.Count()
	out := make([]float64, 0, rp*cp)
	for r := rowRange.From - 1; r < rowRange.To; r++ {
		base := r * cols
		out = append(out, data[base+colRange.From-1:base+colRange.To]...)
	}

	return newOwned(rp, cp, out)
}

// Truncate rounds every entry to the given number of decimal digits:
// round(x * 10^d) / 10^d, half away from zero. Negative d rounds to tens,
// hundreds and so on.
// Complexity: O(r*c).
//
// AI-Hints:
//   - Truncate is idempotent for a fixed d, including |d| beyond the float64
//     exponent range and entries near math.MaxFloat64.
func (m *Matrix) Truncate(decimals int) *Matrix {
	return m.truncate(decimals)
}

func (m *Matrix) truncate(decimals int) *Matrix {
	rows, cols, data := m.snapshot()
	factor := math.Pow10(decimals)
	out := make([]float64, len(data))
	for i, x := range data {
		out[i] = roundTo(x, factor)
	}

	return newOwned(rows, cols, out)
}

// roundTo rounds x to the nearest multiple of 1/factor, half away from zero.
// factor is 10^d as returned by math.Pow10, so it may be 0 or +Inf.
func roundTo(x, factor float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return x
	case factor == 0: // grid wider than any finite float64
		return 0
	case math.IsInf(factor, 1):
		return x
	}
	s := x * factor
	if math.Abs(s) >= 1<<52 { // already integral on the grid, or overflowed
		return x
	}

	return math.Round(s) / factor
}

// Clone returns a deep copy (new buffer, same shape, same capacity).
// The clone does not inherit live views.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	rows, cols, data := m.snapshot()
	cp := make([]float64, len(data), cap(data))
	copy(cp, data)

	return newOwned(rows, cols, cp)
}

// Equal reports exact structural equality: same rows, cols and entries
// compared with ==. This is NOT row equivalence (see RowEquivalent) and
// applies no tolerance (see ApproxEqual).
// Complexity: O(r*c).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	r1, c1, a := m.snapshot()
	r2, c2, b := other.snapshot()
	if r1 != r2 || c1 != c2 || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether other has the same shape and every entry lies
// within tol of the corresponding entry of m.
// Complexity: O(r*c).
func (m *Matrix) ApproxEqual(other *Matrix, tol float64) bool {
	if m == nil || other == nil {
		return m == other
	}
	r1, c1, a := m.snapshot()
	r2, c2, b := other.snapshot()
	if r1 != r2 || c1 != c2 || len(a) != len(b) {
		return false
	}

	return floats.EqualApprox(a, b, tol)
}

// String renders the matrix as "Matrix\n" followed by one line per row,
// entries separated by single spaces (each followed by a space).
// Complexity: O(r*c).
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	rows, cols, data := m.snapshot()
	var b strings.Builder
	b.WriteString(_fmtHeader)
	if len(data) != rows*cols {
		return b.String()
	}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			fmt.Fprintf(&b, "%g", data[base+j])
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtRowDone)
	}

	return b.String()
}
