// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Row is an owned copy of one matrix row, used as the unit of work during
// elimination. A Row never aliases the buffer of the matrix it came from.
type Row struct {
	values []float64
}

// NewRow returns a Row holding a copy of values.
func NewRow(values []float64) Row {
	cp := make([]float64, len(values))
	copy(cp, values)

	return Row{values: cp}
}

// Len returns the number of entries.
func (r Row) Len() int { return len(r.values) }

// At returns the entry at the 0-based position i.
// Panics when i is out of range, like slice indexing.
func (r Row) At(i int) float64 { return r.values[i] }

// Values returns a copy of the entries.
func (r Row) Values() []float64 {
	out := make([]float64, len(r.values))
	copy(out, r.values)

	return out
}

// Scale returns k*r as a new Row.
func (r Row) Scale(k float64) Row {
	out := make([]float64, len(r.values))
	for i, v := range r.values {
		out[i] = v * k
	}

	return Row{values: out}
}

// Sub returns r - other as a new Row.
// Panics on a length mismatch; rows of one matrix always share a length.
func (r Row) Sub(other Row) Row {
	if len(r.values) != len(other.values) {
		panic(fmt.Sprintf("matrix: Row.Sub: length mismatch %d vs %d", len(r.values), len(other.values)))
	}
	out := make([]float64, len(r.values))
	for i := range r.values {
		out[i] = r.values[i] - other.values[i]
	}

	return Row{values: out}
}

// leading returns the 0-based position of the first entry with |x| > eps, or -1.
func (r Row) leading(eps float64) int {
	for i, v := range r.values {
		if v > eps || v < -eps {
			return i
		}
	}

	return -1
}

// scaleInPlace multiplies every entry by k.
func (r Row) scaleInPlace(k float64) {
	for i := range r.values {
		r.values[i] *= k
	}
}

// subScaledInPlace performs r -= k*other.
func (r Row) subScaledInPlace(k float64, other Row) {
	for i := range r.values {
		r.values[i] -= k * other.values[i]
	}
}

// extractRows splits a row-major buffer into owned Rows.
func extractRows(rows, cols int, data []float64) []Row {
	out := make([]Row, rows)
	for i := 0; i < rows; i++ {
		out[i] = NewRow(data[i*cols : (i+1)*cols])
	}

	return out
}

// fromRows reassembles Rows (all of length cols) into a new Matrix.
func fromRows(rs []Row, cols int) *Matrix {
	data := make([]float64, 0, len(rs)*cols)
	for _, r := range rs {
		data = append(data, r.values...)
	}

	return newOwned(len(rs), cols, data)
}
