// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vatnar/linalg/matrix"
)

// inversionTol is the tolerance for A·A⁻¹ ≈ I under the default 5-digit rounding.
const inversionTol = 1e-4

// MustMatrix builds an r×c matrix from literals or fails the test.
func MustMatrix(t testing.TB, r, c int, data []float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(r, c, data)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// MustGet reads the 1-based entry (r,c) or fails the test.
func MustGet(t testing.TB, m *matrix.Matrix, r, c int) float64 {
	t.Helper()
	v, err := m.Get(r, c)
	if err != nil {
		t.Fatalf("Get(%d,%d): %v", r, c, err)
	}

	return v
}

// RequireData asserts shape and exact row-major contents of m.
func RequireData(t testing.TB, rows, cols int, want []float64, m *matrix.Matrix) {
	t.Helper()
	require.Equal(t, rows, m.Rows(), "rows")
	require.Equal(t, cols, m.Cols(), "cols")
	require.Equal(t, want, m.Data())
}

// RequireClose asserts shape and element-wise closeness within tol.
func RequireClose(t testing.TB, rows, cols int, want []float64, m *matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, rows, m.Rows(), "rows")
	require.Equal(t, cols, m.Cols(), "cols")
	require.InDeltaSlice(t, want, m.Data(), tol)
}

// leadingCols returns, per row, the 0-based column of the first non-zero
// entry, or -1 for an all-zero row.
func leadingCols(m *matrix.Matrix) []int {
	rows, cols := m.Shape()
	data := m.Data()
	out := make([]int, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		out[i] = -1
		for j = 0; j < cols; j++ {
			if data[i*cols+j] != 0 {
				out[i] = j
				break
			}
		}
	}

	return out
}

// RequireEchelon asserts the row-echelon invariant: pivots strictly move
// right, zero rows sit at the bottom, and every entry below a pivot is zero.
func RequireEchelon(t testing.TB, m *matrix.Matrix) {
	t.Helper()
	rows, cols := m.Shape()
	data := m.Data()
	lead := leadingCols(m)
	prev, seenZero := -1, false
	for i := 0; i < rows; i++ {
		if lead[i] < 0 {
			seenZero = true
			continue
		}
		require.False(t, seenZero, "non-zero row %d below a zero row in\n%s", i+1, m)
		require.Greater(t, lead[i], prev, "pivot of row %d not right of the row above in\n%s", i+1, m)
		for k := i + 1; k < rows; k++ {
			require.Zero(t, data[k*cols+lead[i]], "entry (%d,%d) below pivot in\n%s", k+1, lead[i]+1, m)
		}
		prev = lead[i]
	}
}

// DiagDominant returns a deterministic, well-conditioned n×n matrix:
// random entries in [-1,1) with |diag| boosted by n.
func DiagDominant(t testing.TB, n int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
	for i := 0; i < n; i++ {
		data[i*n+i] += math.Copysign(float64(n), data[i*n+i])
	}

	return MustMatrix(t, n, n, data)
}

// RequireNearIdentity asserts m ≈ I within tol.
func RequireNearIdentity(t testing.TB, m *matrix.Matrix, tol float64) {
	t.Helper()
	n := m.Rows()
	require.Equal(t, n, m.Cols(), "not square")
	I, err := matrix.Identity(n)
	require.NoError(t, err)
	require.InDeltaSlice(t, I.Data(), m.Data(), tol, "not identity:\n%s", m)
}
