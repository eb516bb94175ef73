// SPDX-License-Identifier: MIT
// Package matrix: basic arithmetic kernels (identity, product, transpose).
//
// These exist so elimination results can be checked algebraically
// (A·A⁻¹ ≈ I) without leaving the package. All kernels allocate a fresh
// result and never mutate their operands.

package matrix

import "fmt"

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n < 0.
// Complexity: O(n²).
func Identity(n int) (*Matrix, error) {
	if err := validateShape(n, n); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	data := make([]float64, n*n)
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		data[i*n+i] = 1
	}

	return newOwned(n, n, data), nil
}

// Mul computes the matrix product C = A × B.
// Implementation:
//   - Stage 1: validate non-nil, populated, a.Cols() == b.Rows().
//   - Stage 2: i→k→j loop; streams rows of B for cache locality.
//
// Errors:
//   - ErrNilMatrix, ErrNotPopulated, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ar, ac, ad := a.snapshot()
	if err := validatePopulated(ar, ac, len(ad)); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	br, bc, bd := b.snapshot()
	if err := validatePopulated(br, bc, len(bd)); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if ac != br {
		return nil, matrixErrorf(opMul, fmt.Errorf("%w: %d×%d × %d×%d", ErrDimensionMismatch, ar, ac, br, bc))
	}

	out := make([]float64, ar*bc)
	var i, k, j, baseA, baseB, baseC int
	var aik float64
	for i = 0; i < ar; i++ {
		baseA = i * ac
		baseC = i * bc
		for k = 0; k < ac; k++ {
			aik = ad[baseA+k]
			if aik == 0 {
				continue // skip zero contributions
			}
			baseB = k * bc
			for j = 0; j < bc; j++ {
				out[baseC+j] += aik * bd[baseB+j]
			}
		}
	}

	return newOwned(ar, bc, out), nil
}

// Transpose returns mᵀ. A matrix still in the Empty state transposes to an
// Empty matrix of the swapped shape.
// Complexity: O(r·c).
func (m *Matrix) Transpose() *Matrix {
	rows, cols, data := m.snapshot()
	if len(data) != rows*cols {
		return &Matrix{rows: cols, cols: rows, data: make([]float64, 0, rows*cols)}
	}
	out := make([]float64, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[j*rows+i] = data[i*cols+j]
		}
	}

	return newOwned(cols, rows, out)
}
