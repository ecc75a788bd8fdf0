// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
)

func TestValidateSameShape(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	b := mustRows(t, [][]float64{{1}, {2}})
	require.NoError(t, matrix.ValidateSameShape(a, a))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
}

func TestValidateMulCompatible(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	b := mustRows(t, [][]float64{{1}, {2}})
	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
}

func TestValidateRowMajor(t *testing.T) {
	require.NoError(t, matrix.ValidateRowMajor(2, 1, [][]float64{{1}, {2}}))
	require.ErrorIs(t, matrix.ValidateRowMajor(1, -1, nil), matrix.ErrInvalidDimensions)
	err := matrix.ValidateRowMajor(2, 2, [][]float64{{1, 2}, {3, 4, 5}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.Contains(t, err.Error(), "row 1")
}

func TestValidateFinite(t *testing.T) {
	require.NoError(t, matrix.ValidateFinite([][]float64{{1, -2}}))
	err := matrix.ValidateFinite([][]float64{{1}, {math.Inf(-1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(1,0)")
}
