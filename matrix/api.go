// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing free functions over the Matrix methods.
//   - Avoid any logic duplication: each facade delegates to the canonical method.
//
// AI-Hints:
//   - REF/RREF read well in pipelines: RREF(m, WithDecimals(8)).

package matrix

// REF is an alias for m.Echelon: row-echelon form.
// Complexity: O(rows²·cols).
func REF(m *Matrix, opts ...Option) (*Matrix, error) { return m.Echelon(opts...) }

// RREF is an alias for m.ReducedEchelon(0): reduced row-echelon form.
// Complexity: O(rows²·cols).
func RREF(m *Matrix, opts ...Option) (*Matrix, error) { return m.ReducedEchelon(0, opts...) }

// InverseOf is an alias for m.Inverse.
// Complexity: O(n³).
func InverseOf(m *Matrix, opts ...Option) (*Matrix, error) { return m.Inverse(opts...) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r·n·c).
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// NewIdentity is an alias for Identity.
func NewIdentity(n int) (*Matrix, error) { return Identity(n) }
