// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic (non-*Dense) path.
type hide struct{ matrix.Matrix }

// mustRows builds a Dense from row-major data or fails the test.
func mustRows(t *testing.T, data [][]float64) *matrix.Dense {
	t.Helper()
	require.NotEmpty(t, data)
	m, err := matrix.NewFromRows(len(data), len(data[0]), data)
	require.NoError(t, err)

	return m
}

// rowsOf unwraps a kernel result into [][]float64 or fails the test.
func rowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out, err := matrix.ToRows(m)
	require.NoError(t, err)

	return out
}

// randDense fills an r×c Dense with values in [-1, 1) from a seeded source.
func randDense(t *testing.T, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	data := make([][]float64, r)
	for i := range data {
		data[i] = make([]float64, c)
		for j := range data[i] {
			data[i][j] = rng.Float64()*2 - 1
		}
	}

	return mustRows(t, data)
}
