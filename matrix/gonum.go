// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a gonum *mat.Dense (0-based indexing on the gonum side).
// Use it to hand results to gonum factorizations (SVD, QR, eigen) that this
// package does not implement.
//
// Errors:
//   - ErrNilMatrix, ErrNotPopulated.
//   - ErrInvalidDimensions for 0×n or n×0 matrices, which gonum cannot represent.
//
// Complexity: O(r·c).
func (m *Matrix) ToGonum() (*mat.Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	rows, cols, data := m.snapshot()
	if err := validatePopulated(rows, cols, len(data)); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if rows == 0 || cols == 0 {
		return nil, matrixErrorf(opToGonum, fmt.Errorf("%w: gonum needs a non-empty shape, got %d×%d", ErrInvalidDimensions, rows, cols))
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return mat.NewDense(rows, cols, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new Matrix.
// Errors: ErrNilMatrix when src is nil.
// Complexity: O(r·c).
func FromGonum(src mat.Matrix) (*Matrix, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	data := make([]float64, 0, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			data = append(data, src.At(i, j))
		}
	}

	return newOwned(rows, cols, data), nil
}
