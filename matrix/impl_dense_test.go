// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdet/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0) // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3) // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() report the constructor dimensions.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Set(0,-1)")
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetRejectsNaNInf checks the default finite-only numeric policy.
func TestSetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 2, 2)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(1, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, m, 0, 0)) // rejected writes leave the cell untouched
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 0, 0, 2})

	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3.0) // modify the clone only

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
	require.IsType(t, &matrix.Dense{}, clone)
}

// TestNewDenseFrom covers the literal constructor and its guards.
func TestNewDenseFrom(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))
	require.Equal(t, 2.0, MustAt(t, m, 0, 1))

	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// the input slice is copied, not adopted
	src := []float64{1, 2, 3, 4}
	m = NewFilledDense(t, 2, 2, src)
	src[0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestSwapRows checks the exchange, the no-op report and bounds checking.
func TestSwapRows(t *testing.T) {
	m := NewFilledDense(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})

	swapped, err := m.SwapRows(0, 2)
	require.NoError(t, err)
	require.True(t, swapped)
	require.Equal(t, []float64{5, 6}, []float64{MustAt(t, m, 0, 0), MustAt(t, m, 0, 1)})
	require.Equal(t, []float64{1, 2}, []float64{MustAt(t, m, 2, 0), MustAt(t, m, 2, 1)})
	require.Equal(t, []float64{3, 4}, []float64{MustAt(t, m, 1, 0), MustAt(t, m, 1, 1)})

	swapped, err = m.SwapRows(1, 1)
	require.NoError(t, err)
	require.False(t, swapped)

	_, err = m.SwapRows(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestString checks the diagnostic rendering.
func TestString(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2.5, -3, 4})
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}

// TestNewIdentity checks the identity constructor and its size guard.
func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.Equal(t, want, MustAt(t, I, i, j))
		}
	}

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	require.Equal(t, 3, z.Cols())
}

// TestAddRow checks the determinant-preserving row update and its guards.
func TestAddRow(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	require.NoError(t, m.AddRow(1, 0, -3))
	require.Equal(t, 0.0, MustAt(t, m, 1, 0))
	require.Equal(t, -2.0, MustAt(t, m, 1, 1))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0)) // source row untouched

	require.ErrorIs(t, m.AddRow(0, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddRow(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddRow(0, 1, math.NaN()), matrix.ErrNaNInf)
}
