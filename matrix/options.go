// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes kernel output and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The pivot threshold decides whether a column is treated as rank-deficient.
//   - The rounding precision is applied to every elimination result to suppress
//     floating round-off (e.g. 2.9999999999999996 becomes 3).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotEpsilon is the near-zero threshold for pivot significance.
	// It equals float64 machine epsilon (2^-52).
	DefaultPivotEpsilon = 0x1p-52

	// DefaultDecimals is the number of decimal digits kept after elimination.
	DefaultDecimals = 5

	// noRounding marks the "keep full precision" policy in Options.decimals.
	noRounding = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithPivotEpsilon: eps must be finite, non-negative"
	panicDecimalsInvalid = "matrix: WithDecimals: decimals must be in [0, 15]"
)

// maxDecimals bounds WithDecimals; 10^15 is still exact in float64.
const maxDecimals = 15

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps      float64 // >= 0; DefaultPivotEpsilon
	decimals int     // 0..maxDecimals, or noRounding; DefaultDecimals
}

// WithPivotEpsilon sets the near-zero threshold used to accept a pivot.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - A column whose best candidate satisfies |pivot| < eps is skipped as rank-deficient.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Raise eps (e.g. 1e-9) for noisy inputs that should be treated as singular.
func WithPivotEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithDecimals sets how many decimal digits survive the post-elimination rounding.
// Panics when d is outside [0, 15].
// Complexity: O(1).
func WithDecimals(d int) Option {
	if d < 0 || d > maxDecimals {
		panic(panicDecimalsInvalid)
	}

	return func(o *Options) { o.decimals = d }
}

// WithoutRounding keeps elimination results at full float64 precision.
func WithoutRounding() Option {
	return func(o *Options) { o.decimals = noRounding }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:      DefaultPivotEpsilon,
		decimals: DefaultDecimals,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
// nil entries are ignored.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// round applies the configured precision policy to m.
func (o Options) round(m *Matrix) *Matrix {
	if o.decimals == noRounding {
		return m
	}

	return m.truncate(o.decimals)
}
