// SPDX-License-Identifier: MIT

package matrix

import "math"

// luFactor is the packed result of an in-place LU factorization with partial
// pivoting: PA = LU, with L's unit diagonal implied and U on and above it.
type luFactor struct {
	n        int
	lu       []float64 // n×n packed L\U
	perm     []int     // perm[i] = source row of row i
	sign     float64   // +1/-1 parity of perm
	singular bool      // some pivot fell below eps
}

// factorLU performs Doolittle elimination with partial pivoting on a copy of a.
// Implementation:
//   - Stage 1: copy A and start from the identity permutation.
//   - Stage 2: for each column k pick the largest |a[i][k]|, i ≥ k (first wins),
//     swap it up and flip the sign.
//   - Stage 3: if |pivot| < eps zero the sub-column (multipliers 0) and mark
//     singular; otherwise store multipliers a[i][k]/pivot and update the
//     trailing block.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func factorLU(n int, a []float64, eps float64) luFactor {
	f := luFactor{n: n, lu: make([]float64, n*n), perm: make([]int, n), sign: 1}
	copy(f.lu, a)
	var (
		i, j, k    int
		best       int
		bestAbs    float64
		p, mult    float64
		rowK, rowI []float64
	)
	for i = range f.perm {
		f.perm[i] = i
	}
	for k = 0; k < n; k++ {
		best, bestAbs = k, math.Abs(f.lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(f.lu[i*n+k]); v > bestAbs {
				best, bestAbs = i, v
			}
		}
		if best != k {
			for j = 0; j < n; j++ {
				f.lu[k*n+j], f.lu[best*n+j] = f.lu[best*n+j], f.lu[k*n+j]
			}
			f.perm[k], f.perm[best] = f.perm[best], f.perm[k]
			f.sign = -f.sign
		}

		rowK = f.lu[k*n : (k+1)*n]
		p = rowK[k]
		if p == 0 || math.Abs(p) < eps {
			f.singular = true
			for i = k + 1; i < n; i++ {
				f.lu[i*n+k] = 0 // below-eps residue; nothing to eliminate
			}
			continue
		}
		for i = k + 1; i < n; i++ {
			rowI = f.lu[i*n : (i+1)*n]
			mult = rowI[k] / p
			rowI[k] = mult
			if mult == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				rowI[j] -= mult * rowK[j]
			}
		}
	}

	return f
}

// squareSnapshot validates m as a populated square matrix and returns its data.
func (m *Matrix) squareSnapshot(op string) (int, []float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, nil, matrixErrorf(op, err)
	}
	rows, cols, data := m.snapshot()
	if err := validatePopulated(rows, cols, len(data)); err != nil {
		return 0, nil, matrixErrorf(op, err)
	}
	if rows != cols {
		return 0, nil, matrixErrorf(op, ErrNonSquare)
	}

	return rows, data, nil
}

// LU factors a square matrix as P·A = L·U with partial pivoting.
// MAIN DESCRIPTION:
//   - L is unit lower triangular, U is upper triangular, P is a permutation
//     matrix. All three are rounded like every elimination result.
//
// Behavior highlights:
//   - Singular input is not an error: a column whose best pivot is below eps
//     leaves a (near) zero on U's diagonal and zero multipliers in L.
//
// Errors:
//   - ErrNilMatrix, ErrNotPopulated, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Matrix) LU(opts ...Option) (l, u, p *Matrix, err error) {
	n, data, err := m.squareSnapshot(opLU)
	if err != nil {
		return nil, nil, nil, err
	}
	o := gatherOptions(opts...)
	f := factorLU(n, data, o.eps)

	ld := make([]float64, n*n)
	ud := make([]float64, n*n)
	pd := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				ld[i*n+j] = f.lu[i*n+j]
			case j == i:
				ld[i*n+j] = 1
				ud[i*n+j] = f.lu[i*n+j]
			default:
				ud[i*n+j] = f.lu[i*n+j]
			}
		}
		pd[i*n+f.perm[i]] = 1
	}

	return o.round(newOwned(n, n, ld)), o.round(newOwned(n, n, ud)), newOwned(n, n, pd), nil
}

// Det returns the determinant of a square matrix: the signed product of the
// pivots of its LU factorization. The decimal precision option does not
// apply: a determinant scales with the n-th power of the entries, so absolute
// rounding would zero well-conditioned matrices with small entries.
// It is exactly 0 only when a pivot is below the pivot epsilon.
//
// Errors:
//   - ErrNilMatrix, ErrNotPopulated, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Dependent rows may leave round-off residue (≈1e-16) instead of an exact 0;
//     compare with a tolerance scaled to the entries.
func (m *Matrix) Det(opts ...Option) (float64, error) {
	n, data, err := m.squareSnapshot(opDet)
	if err != nil {
		return 0, err
	}
	o := gatherOptions(opts...)
	f := factorLU(n, data, o.eps)
	if f.singular {
		return 0, nil
	}
	det := f.sign
	for i := 0; i < n; i++ {
		det *= f.lu[i*n+i]
	}

	return det, nil
}
