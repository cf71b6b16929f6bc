// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdet/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSquare(t *testing.T) {
	err := matrix.ValidateSquare(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Contains(t, err.Error(), "2x3")

	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
}

func TestValidateSize(t *testing.T) {
	for _, n := range []int{0, -1, math.MinInt} {
		require.ErrorIs(t, matrix.ValidateSize(n), matrix.ErrInvalidDimensions, "n=%d", n)
	}
	require.NoError(t, matrix.ValidateSize(1))
}

func TestValidateSquareNonNil_Order(t *testing.T) {
	// nil wins over everything else
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(MustDense(t, 1, 2)), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquareNonNil(MustDense(t, 2, 2)))
}

func TestValidateFinite(t *testing.T) {
	m, err := matrix.Read(strings.NewReader("2\n1 2\n3 NaN\n"), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	err = matrix.ValidateFinite(m)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(1,1)")

	// fallback path reports the same cell
	err = matrix.ValidateFinite(hide{m})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(1,1)")

	require.NoError(t, matrix.ValidateFinite(MustDense(t, 3, 3)))
}
