// SPDX-License-Identifier: MIT
// Package matrix: elimination kernels (row-echelon, reduced row-echelon,
// inverse, rank, linear solve).
//
// Purpose:
//   - Forward elimination with partial pivoting (Echelon/EchelonAug).
//   - Gauss-Jordan back-substitution on top of it (ReducedEchelon).
//   - Inversion and solving through an augmented matrix [A | I] or [A | B].
//
// Numeric policy:
//   - A pivot is accepted only if |pivot| >= eps (Options.eps); otherwise the
//     column is treated as rank-deficient and skipped.
//   - Every result is rounded to Options.decimals digits to suppress round-off.
//   - Singularity is judged on the rounded echelon form, so round-off residue
//     such as 3e-16 in a dependent row does not count as a pivot.
//   - A pivot that survives elimination but rounds to 0 is eliminated again on
//     the rounded rows, so the returned form is always an echelon form.
//
// Determinism:
//   - Fixed column→row loop orders; pivot ties resolve to the lowest row index.
//   - Kernels never mutate the receiver: they work on Rows copied out of a snapshot.

package matrix

import "math"

// forward runs Gaussian elimination with partial pivoting over rs in place.
// MAIN DESCRIPTION:
//   - Reduce rs to row-echelon form using only the first cols-aug columns as
//     pivot candidates; augmented columns still receive every row operation.
//
// Implementation:
//   - Stage 1: for each pivot column c while completed < len(rs):
//   - pick the row in [completed, n) with the largest |rs[i][c]| (first wins on ties);
//   - swap it to position completed;
//   - if |pivot| < eps (or pivot == 0) skip the column, completed unchanged;
//   - else subtract (rs[i][c]/pivot)·pivotRow from every row below; completed++.
//
// Returns:
//   - number of pivots found (before rounding).
//
// Complexity:
//   - Time O(rows²·cols), Space O(1) beyond rs.
func forward(rs []Row, cols, aug int, eps float64) int {
	var (
		n         = len(rs)
		completed int     // rows already holding a pivot
		c, i      int     // column and row iterators
		best      int     // candidate pivot row
		bestAbs   float64 // |candidate pivot|
		a, pivot  float64
	)
	for c = 0; c < cols-aug; c++ {
		if completed == n {
			break
		}
		// Partial pivoting: largest magnitude in column c, first occurrence wins.
		best, bestAbs = completed, math.Abs(rs[completed].values[c])
		for i = completed + 1; i < n; i++ {
			if a = math.Abs(rs[i].values[c]); a > bestAbs {
				best, bestAbs = i, a
			}
		}
		rs[completed], rs[best] = rs[best], rs[completed]

		pivot = rs[completed].values[c]
		if pivot == 0 || math.Abs(pivot) < eps {
			continue // rank-deficient column; try the next one with the same row
		}
		for i = completed + 1; i < n; i++ {
			rs[i].subScaledInPlace(rs[i].values[c]/pivot, rs[completed])
			rs[i].values[c] = 0
		}
		completed++
	}

	return completed
}

// backward normalizes each row by its leading entry and clears that entry's
// column in every other row (Gauss-Jordan). rs must already be in echelon form.
// Complexity: O(rows²·cols).
func backward(rs []Row, eps float64) {
	var lead, p, t int
	// Normalize: leading entry becomes exactly 1; all-near-zero rows stay as is.
	for _, r := range rs {
		if lead = r.leading(eps); lead >= 0 {
			r.scaleInPlace(1 / r.values[lead])
			r.values[lead] = 1
		}
	}
	// Eliminate each pivot column above and below its pivot row.
	var k float64
	for p = range rs {
		if lead = rs[p].leading(eps); lead < 0 {
			continue
		}
		for t = range rs {
			if t == p {
				continue
			}
			if k = rs[t].values[lead]; k != 0 {
				rs[t].subScaledInPlace(k, rs[p])
				rs[t].values[lead] = 0
			}
		}
	}
}

// pivotCount counts rows whose leading entry (|x| > eps) lies in the first
// coefCols columns strictly to the right of the previous pivot. A row leading
// in an already used column is not a pivot. On an echelon form this is the
// rank of the coefficient block.
func pivotCount(rs []Row, coefCols int, eps float64) int {
	var n, lead int
	prev := -1
	for _, r := range rs {
		if lead = r.leading(eps); lead > prev && lead < coefCols {
			n++
			prev = lead
		}
	}

	return n
}

// isEchelon reports whether the coefficient block of rs is in row-echelon
// form: leading columns strictly increase and rows without a coefficient
// pivot come last.
func isEchelon(rs []Row, coefCols int, eps float64) bool {
	var (
		lead     int
		prev     = -1
		zeroSeen bool
	)
	for _, r := range rs {
		if lead = r.leading(eps); lead < 0 || lead >= coefCols {
			zeroSeen = true
			continue
		}
		if zeroSeen || lead <= prev {
			return false
		}
		prev = lead
	}

	return true
}

// echelonRows validates m and returns its rounded echelon form as Rows plus
// the rank of the coefficient block.
func (m *Matrix) echelonRows(op string, aug int, o Options) (rs []Row, rank, cols int, err error) {
	if err = validateNotNil(m); err != nil {
		return nil, 0, 0, matrixErrorf(op, err)
	}
	rows, cols, data := m.snapshot()
	if err = validatePopulated(rows, cols, len(data)); err != nil {
		return nil, 0, 0, matrixErrorf(op, err)
	}
	if err = validateAugment(aug, cols); err != nil {
		return nil, 0, 0, matrixErrorf(op, err)
	}

	roundRows := func(rs []Row) []Row {
		return extractRows(rows, cols, o.round(fromRows(rs, cols)).data)
	}
	rs = extractRows(rows, cols, data)
	forward(rs, cols, aug, o.eps)
	rs = roundRows(rs)
	// Rounding can zero a pivot, leaving two rows leading in one column.
	for pass := 0; pass < rows && !isEchelon(rs, cols-aug, o.eps); pass++ {
		forward(rs, cols, aug, o.eps)
		rs = roundRows(rs)
	}

	return rs, pivotCount(rs, cols-aug, o.eps), cols, nil
}

// reduced runs the full Gauss-Jordan pipeline and returns the rounded RREF
// plus the rank of the coefficient block.
func (m *Matrix) reduced(op string, aug int, o Options) (*Matrix, int, error) {
	rs, rank, cols, err := m.echelonRows(op, aug, o)
	if err != nil {
		return nil, 0, err
	}
	backward(rs, o.eps)

	return o.round(fromRows(rs, cols)), rank, nil
}

// Echelon reduces m to row-echelon form. Equivalent to EchelonAug(0, opts...).
func (m *Matrix) Echelon(opts ...Option) (*Matrix, error) {
	return m.EchelonAug(0, opts...)
}

// EchelonAug reduces m to row-echelon form, treating the last aug columns as
// an augmented block.
// MAIN DESCRIPTION:
//   - Forward elimination with partial pivoting; augmented columns are never
//     chosen as pivot columns but receive every row operation.
//
// Behavior highlights:
//   - Near-zero pivot columns are skipped, not reported: rank-deficient inputs
//     still reach echelon form.
//   - The result is rounded to DefaultDecimals digits unless configured otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrNotPopulated, ErrBadAugment (aug < 0 or aug > cols).
//
// Complexity:
//   - Time O(rows²·cols), Space O(rows·cols).
func (m *Matrix) EchelonAug(aug int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	rs, _, cols, err := m.echelonRows(opEchelon, aug, o)
	if err != nil {
		return nil, err
	}

	return fromRows(rs, cols), nil
}

// ReducedEchelon reduces m to reduced row-echelon form (Gauss-Jordan),
// treating the last aug columns as an augmented block.
// MAIN DESCRIPTION:
//   - EchelonAug, then scale each row so its leading entry is 1, then clear
//     each pivot column in every other row (above and below).
//
// Errors:
//   - ErrNilMatrix, ErrNotPopulated, ErrBadAugment.
//
// Complexity:
//   - Time O(rows²·cols), Space O(rows·cols).
//
// AI-Hints:
//   - An already reduced matrix is a fixed point: ReducedEchelon(ReducedEchelon(A)) == ReducedEchelon(A).
func (m *Matrix) ReducedEchelon(aug int, opts ...Option) (*Matrix, error) {
	out, _, err := m.reduced(opReducedEchelon, aug, gatherOptions(opts...))

	return out, err
}

// Inverse returns A⁻¹ by reducing the augmented matrix [A | I].
// MAIN DESCRIPTION:
//   - Build [A | I] (cols doubles), run ReducedEchelon with aug = rows, then
//     extract the right-hand block.
//
// Errors:
//   - ErrNilMatrix, ErrNotPopulated.
//   - ErrNonSquare when rows != cols.
//   - ErrSingular when the coefficient block has fewer pivots than rows.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Matrix) Inverse(opts ...Option) (*Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	rows, cols, data := m.snapshot()
	if err := validatePopulated(rows, cols, len(data)); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if rows != cols {
		return nil, matrixErrorf(opInverse, ErrNonSquare)
	}

	n := rows
	identity := make([]float64, n*n)
	for i := 0; i < n; i++ {
		identity[i*n+i] = 1
	}

	return solveAugmented(opInverse, n, data, n, identity, gatherOptions(opts...))
}

// Solve returns X such that A·X = B, where A is m (square) and B has the same
// number of rows. Each column of B is one right-hand side.
//
// Errors:
//   - ErrNilMatrix, ErrNotPopulated, ErrNonSquare.
//   - ErrDimensionMismatch when B.Rows() != A.Rows().
//   - ErrSingular when A has fewer pivots than rows.
//
// Complexity:
//   - Time O(n²·(n+k)), Space O(n·(n+k)).
func (m *Matrix) Solve(b *Matrix, opts ...Option) (*Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	rows, cols, data := m.snapshot()
	if err := validatePopulated(rows, cols, len(data)); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	bRows, bCols, bData := b.snapshot()
	if err := validatePopulated(bRows, bCols, len(bData)); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if rows != cols {
		return nil, matrixErrorf(opSolve, ErrNonSquare)
	}
	if bRows != rows {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}

	return solveAugmented(opSolve, rows, data, bCols, bData, gatherOptions(opts...))
}

// solveAugmented reduces [A | B] for a square n×n A and n×k B and returns the
// right-hand block, or ErrSingular when A is rank-deficient.
func solveAugmented(op string, n int, a []float64, k int, b []float64, o Options) (*Matrix, error) {
	width := n + k
	buf := make([]float64, 0, n*width)
	for i := 0; i < n; i++ {
		buf = append(buf, a[i*n:(i+1)*n]...)
		buf = append(buf, b[i*k:(i+1)*k]...)
	}

	red, rank, err := newOwned(n, width, buf).reduced(op, k, o)
	if err != nil {
		return nil, err
	}
	if rank < n {
		return nil, matrixErrorf(op, ErrSingular)
	}

	return o.round(extract(red.data, width, All(n), Span(n+1, width))), nil
}

// Rank returns the number of pivots in the rounded row-echelon form of m.
// Complexity: O(rows²·cols).
func (m *Matrix) Rank(opts ...Option) (int, error) {
	_, rank, _, err := m.echelonRows(opRank, 0, gatherOptions(opts...))

	return rank, err
}

// RowEquivalent reports whether m and other reduce to the same reduced
// row-echelon form, i.e. one can be reached from the other by row operations.
// This differs from Equal, which compares entries exactly.
//
// Errors:
//   - ErrNilMatrix, ErrNotPopulated, ErrDimensionMismatch (different shapes).
func (m *Matrix) RowEquivalent(other *Matrix, opts ...Option) (bool, error) {
	if err := validateNotNil(m); err != nil {
		return false, matrixErrorf(opRowEquivalent, err)
	}
	if err := validateNotNil(other); err != nil {
		return false, matrixErrorf(opRowEquivalent, err)
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false, matrixErrorf(opRowEquivalent, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	a, _, err := m.reduced(opRowEquivalent, 0, o)
	if err != nil {
		return false, err
	}
	b, _, err := other.reduced(opRowEquivalent, 0, o)
	if err != nil {
		return false, err
	}

	return a.Equal(b), nil
}
