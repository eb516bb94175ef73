// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels and Options Snapshot
//
// Purpose:
//   - Expose the unexported elimination kernels and the resolved Options to
//     matrix_test ONLY, without widening the production API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds; it is in
//     package matrix so it can reach private symbols.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with the internal Options fields.

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Eps      float64
	Decimals int // -1 when rounding is disabled
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly  = panicEpsilonInvalid
	PanicDecimalsInvalid_TestOnly = panicDecimalsInvalid
)

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, Decimals: o.decimals}
}

// Forward_TestOnly runs the forward elimination kernel on a copy of data
// without rounding and returns the raw result plus the pivot count.
func Forward_TestOnly(rows, cols, aug int, data []float64, eps float64) ([]float64, int) {
	rs := extractRows(rows, cols, data)
	n := forward(rs, cols, aug, eps)

	return fromRows(rs, cols).data, n
}

// ViewCount_TestOnly reports how many views currently borrow m.
func ViewCount_TestOnly(m *Matrix) int64 { return m.views.Load() }
