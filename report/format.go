package report

import (
	"strconv"
	"strings"
)

// Formatter renders exact values as report cells.
// A negative Precision prints the shortest representation that parses back
// to the same float64; otherwise values use exactly Precision decimals.
type Formatter struct {
	Precision int
}

// DefaultFormatter prints exact values.
var DefaultFormatter = Formatter{Precision: -1}

// Float renders v.
func (f Formatter) Float(v float64) string {
	if f.Precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', f.Precision, 64)
}

// Floats renders xs space-separated inside brackets: "[5 7 9]".
func (f Formatter) Floats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = f.Float(x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Grid renders row-major data as "[[1, 2], [3, 4]]".
func (f Formatter) Grid(rows [][]float64) string {
	parts := make([]string, len(rows))
	for i, r := range rows {
		cells := make([]string, len(r))
		for j, v := range r {
			cells[j] = f.Float(v)
		}
		parts[i] = "[" + strings.Join(cells, ", ") + "]"
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Ints renders xs as "[1, 2]".
func Ints(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// IntSets renders a sequence of subsets as "[[], [1], [2], [1, 2]]".
func IntSets(sets [][]int) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = Ints(s)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Bool renders b as "true" or "false".
func Bool(b bool) string { return strconv.FormatBool(b) }

// errorCell is what a row shows when its operation failed.
func errorCell(err error) string { return "error: " + err.Error() }
