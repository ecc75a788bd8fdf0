// SPDX-License-Identifier: MIT

package matrix

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Product is an alias of Mul.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias of Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }
