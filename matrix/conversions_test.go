// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
)

func TestNewFromRows_ShapeErrors(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		data       [][]float64
		want       error
	}{
		{"zero rows", 0, 2, nil, matrix.ErrInvalidDimensions},
		{"too few rows", 2, 2, [][]float64{{1, 2}}, matrix.ErrBadShape},
		{"too many rows", 1, 2, [][]float64{{1, 2}, {3, 4}}, matrix.ErrBadShape},
		{"ragged row", 2, 2, [][]float64{{1, 2}, {3}}, matrix.ErrBadShape},
		{"nan", 1, 2, [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewFromRows(tc.rows, tc.cols, tc.data)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewFromRows_CopiesInput(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewFromRows(2, 2, data)
	require.NoError(t, err)

	data[0][0] = 100
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	out := rowsOf(t, m)
	out[1][1] = -1
	v, _ = m.At(1, 1)
	require.Equal(t, 4.0, v)
}

func TestToRows_GenericPath(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}})
	out, err := matrix.ToRows(hide{m})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}}, out)

	_, err = matrix.ToRows(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
