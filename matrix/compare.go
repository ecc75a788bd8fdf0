// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Equal reports whether a and b have the same shape and bitwise-equal values
// under ==. NaN never equals NaN, matching float64 semantics.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//
// Complexity: O(r*c).
func Equal(a, b Matrix) (bool, error) {
	ra, rb, err := flatPair(a, b, opEqual)
	if err != nil || ra == nil {
		return false, err
	}

	return floats.Equal(ra, rb), nil
}

// AllClose reports whether a and b have the same shape and every pair of
// values satisfies |x-y| <= atol or |x-y| <= rtol*max(|x|,|y|).
// A shape difference yields (false, nil), not an error.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	ra, rb, err := flatPair(a, b, opAllClose)
	if err != nil || ra == nil {
		return false, err
	}
	for i := range ra {
		if !scalar.EqualWithinAbsOrRel(ra[i], rb[i], atol, rtol) {
			return false, nil
		}
	}

	return true, nil
}

// flatPair validates both operands and returns their values flattened in
// row-major order. A nil first slice with a nil error means "shapes differ".
func flatPair(a, b Matrix, tag string) ([]float64, []float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	if ValidateSameShape(a, b) != nil {
		return nil, nil, nil
	}
	ra, err := flatten(a)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	rb, err := flatten(b)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return ra, rb, nil
}

// flatten copies m into a row-major slice; *Dense shares nothing with the result.
func flatten(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return append([]float64(nil), d.data...), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	return out, nil
}
