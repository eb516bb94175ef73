// SPDX-License-Identifier: MIT

// Package matrix: small domain types shared by the Matrix surface.
// This file intentionally contains ONLY value types (ranges, numeric
// constraints) and the literal helper F64. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

import "fmt"

// Range is a 1-based inclusive index range [From, To], matching how rows and
// columns of a matrix are counted by hand (row 1 is the first row).
type Range struct {
	From int // first index (>= 1)
	To   int // last index (>= From)
}

// Span builds the inclusive range from..to.
// Complexity: O(1).
func Span(from, to int) Range { return Range{From: from, To: to} }

// All returns the range covering every index of a dimension of size n (1..n).
// Complexity: O(1).
func All(n int) Range { return Range{From: 1, To: n} }

// Count returns the number of indices in r; 0 for an empty or inverted range.
func (r Range) Count() int {
	if r.To < r.From {
		return 0
	}

	return r.To - r.From + 1
}

// String renders r as "from..=to".
func (r Range) String() string { return fmt.Sprintf("%d..=%d", r.From, r.To) }

// Number is the set of literal types accepted by F64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// F64 converts a list of numeric literals into a fresh []float64.
// It exists for readability at call sites:
//
//	m := matrix.MustNew(2, 2, matrix.F64(1, 0, 0, 1))
//
// Complexity: O(n).
func F64[T Number](values ...T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}

	return out
}
