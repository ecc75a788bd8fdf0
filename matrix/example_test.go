// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
)

// ExampleMul multiplies two 2×2 matrices and prints the product.
func ExampleMul() {
	a, _ := matrix.NewFromRows(2, 2, [][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows(2, 2, [][]float64{{5, 6}, {7, 8}})

	p, _ := matrix.Mul(a, b)
	fmt.Println(p)

	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleTranspose swaps rows and columns.
func ExampleTranspose() {
	m, _ := matrix.NewFromRows(2, 3, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, _ := matrix.Transpose(m)
	rows, _ := matrix.ToRows(tr)
	fmt.Println(rows)

	// Output:
	// [[1 4] [2 5] [3 6]]
}

// ExampleMul_dimensionMismatch shows the typed failure for incompatible shapes.
func ExampleMul_dimensionMismatch() {
	a, _ := matrix.NewFromRows(1, 3, [][]float64{{1, 2, 3}})
	b, _ := matrix.NewFromRows(1, 3, [][]float64{{4, 5, 6}})

	_, err := matrix.Mul(a, b)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))

	// Output:
	// true
}
