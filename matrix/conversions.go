// SPDX-License-Identifier: MIT

// Package matrix: conversions between the row-major [][]float64 form used by
// the parsing and export layers and the flat Dense storage.
package matrix

const (
	opFromRows = "NewFromRows"
	opToRows   = "ToRows"
)

// NewFromRows builds a rows×cols Dense from row-major data.
//
// Implementation:
//   - Stage 1: ValidateRowMajor (positive dims, exact row count, exact row lengths).
//   - Stage 2: under the numeric policy, ValidateFinite over every value.
//   - Stage 3: copy rows into the flat buffer in i→j order.
//
// The input slice is never retained; later edits to data do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape, ErrNaNInf (wrapped with "NewFromRows").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows, cols int, data [][]float64, opts ...Option) (*Dense, error) {
	if err := ValidateRowMajor(rows, cols, data); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(data); err != nil {
			return nil, matrixErrorf(opFromRows, err)
		}
	}

	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range data {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// ToRows returns a fresh row-major copy of m's values.
//
// Errors:
//   - ErrNilMatrix; any error surfaced by m.At on non-Dense implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToRows, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			out[i] = append([]float64(nil), d.data[i*cols:(i+1)*cols]...)
		}

		return out, nil
	}

	var err error
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToRows, err)
			}
		}
	}

	return out, nil
}
