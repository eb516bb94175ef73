// Package matrix_test contains unit tests for MatrixView: borrow tracking,
// materialization and concurrent reads.
package matrix_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vatnar/linalg/matrix"
)

// TestViewMatchesSubmatrix: for every valid range pair, ToMatrix equals Submatrix.
func TestViewMatchesSubmatrix(t *testing.T) {
	m := MustMatrix(t, 4, 4, fourByFour)
	var r1, r2, c1, c2 int
	for r1 = 1; r1 <= 4; r1++ {
		for r2 = r1; r2 <= 4; r2++ {
			for c1 = 1; c1 <= 4; c1++ {
				for c2 = c1; c2 <= 4; c2++ {
					rr, cr := matrix.Span(r1, r2), matrix.Span(c1, c2)
					v, err := m.View(rr, cr)
					require.NoError(t, err)
					require.Equal(t, rr.Count(), v.Rows())
					require.Equal(t, cr.Count(), v.Cols())

					got, err := v.ToMatrix()
					require.NoError(t, err)
					want, err := m.Submatrix(rr, cr)
					require.NoError(t, err)
					require.True(t, got.Equal(want), "%s", v)
					v.Release()
				}
			}
		}
	}
	require.Zero(t, matrix.ViewCount_TestOnly(m))
}

// TestViewRowConstant is the 4×4 row-constant scenario through a view.
func TestViewRowConstant(t *testing.T) {
	m := MustMatrix(t, 4, 4, fourByFour)
	v, err := matrix.NewView(m, matrix.Span(1, 2), matrix.Span(2, 3))
	require.NoError(t, err)
	defer v.Release()

	sub, err := v.ToMatrix()
	require.NoError(t, err)
	RequireData(t, 2, 2, matrix.F64(1, 1, 2, 2), sub)

	rows, cols := v.Ranges()
	require.Equal(t, matrix.Span(1, 2), rows)
	require.Equal(t, matrix.Span(2, 3), cols)
	require.Same(t, m, v.Parent())
	require.Equal(t, "MatrixView[1..=2, 2..=3]", v.String())

	// repeated materialization is stable and leaves the parent alone
	again, err := v.ToMatrix()
	require.NoError(t, err)
	require.True(t, again.Equal(sub))
	RequireData(t, 4, 4, fourByFour, m)
}

// TestViewBlocksInsert: the parent refuses Insert while a view is live.
func TestViewBlocksInsert(t *testing.T) {
	m := MustMatrix(t, 2, 2, matrix.F64(1, 2, 3, 4))
	v1, err := m.View(matrix.All(2), matrix.All(2))
	require.NoError(t, err)
	v2, err := m.View(matrix.Span(1, 1), matrix.All(2))
	require.NoError(t, err)
	require.EqualValues(t, 2, matrix.ViewCount_TestOnly(m))

	err = m.Insert(matrix.F64(5, 6, 7, 8))
	require.ErrorIs(t, err, matrix.ErrViewActive)
	RequireData(t, 2, 2, matrix.F64(1, 2, 3, 4), m)

	v1.Release()
	v1.Release() // second Release is a no-op
	require.EqualValues(t, 1, matrix.ViewCount_TestOnly(m))
	require.ErrorIs(t, m.Insert(matrix.F64(5, 6, 7, 8)), matrix.ErrViewActive)

	v2.Release()
	require.NoError(t, m.Insert(matrix.F64(5, 6, 7, 8)))
	RequireData(t, 2, 2, matrix.F64(5, 6, 7, 8), m)

	// a released view still materializes, reading the current parent
	got, err := v2.ToMatrix()
	require.NoError(t, err)
	RequireData(t, 1, 2, matrix.F64(5, 6), got)
}

// TestViewSnapshotSurvivesInsert: a matrix materialized from a view is
// independent of later writes to the parent.
func TestViewSnapshotSurvivesInsert(t *testing.T) {
	m := MustMatrix(t, 2, 2, matrix.F64(1, 2, 3, 4))
	v, err := m.View(matrix.All(2), matrix.Span(2, 2))
	require.NoError(t, err)
	col, err := v.ToMatrix()
	require.NoError(t, err)
	v.Release()

	require.NoError(t, m.Insert(matrix.F64(0, 0, 0, 0)))
	RequireData(t, 2, 1, matrix.F64(2, 4), col)
}

func TestViewInvalid(t *testing.T) {
	m := MustMatrix(t, 3, 3, make([]float64, 9))
	cases := []struct {
		name  string
		rows  matrix.Range
		cols  matrix.Range
		errIs []error
	}{
		{"row past edge", matrix.Span(2, 4), matrix.All(3), []error{matrix.ErrOutOfRange}},
		{"col past edge", matrix.All(3), matrix.Span(1, 9), []error{matrix.ErrOutOfRange}},
		{"zero", matrix.Span(0, 1), matrix.All(3), []error{matrix.ErrOutOfRange, matrix.ErrBadRange}},
		{"inverted", matrix.All(3), matrix.Span(3, 1), []error{matrix.ErrOutOfRange, matrix.ErrBadRange}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := m.View(tc.rows, tc.cols)
			require.Nil(t, v)
			for _, target := range tc.errIs {
				require.ErrorIs(t, err, target)
			}
		})
	}
	// failed views do not leak a borrow
	require.Zero(t, matrix.ViewCount_TestOnly(m))

	var nilM *matrix.Matrix
	_, err := nilM.View(matrix.All(1), matrix.All(1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	e, err := matrix.Empty(2, 2)
	require.NoError(t, err)
	_, err = e.View(matrix.All(2), matrix.All(2))
	require.ErrorIs(t, err, matrix.ErrNotPopulated)
}

// TestViewConcurrentReaders: many goroutines borrow, read and release the
// same parent; run with -race.
func TestViewConcurrentReaders(t *testing.T) {
	m := MustMatrix(t, 4, 4, fourByFour)
	want, err := m.Submatrix(matrix.Span(2, 3), matrix.All(4))
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := m.View(matrix.Span(2, 3), matrix.All(4))
			if err != nil {
				errs <- err
				return
			}
			defer v.Release()
			for i := 0; i < 50; i++ {
				got, err := v.ToMatrix()
				if err != nil {
					errs <- err
					return
				}
				if !got.Equal(want) {
					errs <- matrix.ErrDimensionMismatch
					return
				}
				if _, err = m.Echelon(); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.Zero(t, matrix.ViewCount_TestOnly(m))
	require.NoError(t, m.Insert(make([]float64, 16)))
}
