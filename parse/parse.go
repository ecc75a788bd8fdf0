package parse

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/katalvlaran/lvlalg/complexnum"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/set"
	"github.com/katalvlaran/lvlalg/vector"
)

// rowSeparator splits the rows of a one-line matrix literal.
const rowSeparator = ";"

// Float parses a single finite real.
func Float(line string) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, invalidf("want 1 number, got %d tokens", len(fields))
	}

	return float(fields[0])
}

// Floats parses every token of line as a finite real. An empty line yields
// an empty slice.
func Floats(line string) ([]float64, error) {
	fields := strings.Fields(line)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := float(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// Vector parses exactly three reals "x y z".
func Vector(line string) (vector.Vector, error) {
	xs, err := Floats(line)
	if err != nil {
		return vector.Vector{}, err
	}
	if len(xs) != 3 {
		return vector.Vector{}, invalidf("want 3 coordinates, got %d", len(xs))
	}

	return vector.New(xs[0], xs[1], xs[2]), nil
}

// Count parses a strictly positive integer such as a row or column count.
func Count(line string) (int, error) {
	n, err := Int(line)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, invalidf("count %d must be positive", n)
	}

	return n, nil
}

// Row parses exactly cols reals.
func Row(line string, cols int) ([]float64, error) {
	xs, err := Floats(line)
	if err != nil {
		return nil, err
	}
	if len(xs) != cols {
		return nil, invalidf("want %d values in row, got %d", cols, len(xs))
	}

	return xs, nil
}

// Matrix parses rows lines of cols reals each into a Dense.
func Matrix(rows, cols int, lines []string) (*matrix.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, invalidf("shape %dx%d must be positive", rows, cols)
	}
	if len(lines) != rows {
		return nil, invalidf("want %d rows, got %d", rows, len(lines))
	}
	data := make([][]float64, rows)
	for i, l := range lines {
		r, err := Row(l, cols)
		if err != nil {
			return nil, invalidf("row %d: %v", i+1, err)
		}
		data[i] = r
	}

	return toDense(rows, cols, data)
}

// MatrixLiteral parses a one-line matrix whose rows are separated by ';',
// e.g. "1 2; 3 4". The first row fixes the column count.
func MatrixLiteral(line string) (*matrix.Dense, error) {
	parts := strings.Split(line, rowSeparator)
	data := make([][]float64, 0, len(parts))
	for i, p := range parts {
		r, err := Floats(p)
		if err != nil {
			return nil, invalidf("row %d: %v", i+1, err)
		}
		if len(r) == 0 {
			return nil, invalidf("row %d is empty", i+1)
		}
		if len(data) > 0 && len(r) != len(data[0]) {
			return nil, invalidf("row %d has %d values, want %d", i+1, len(r), len(data[0]))
		}
		data = append(data, r)
	}

	return toDense(len(data), len(data[0]), data)
}

// Int parses a single integer.
func Int(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, invalidf("want 1 integer, got %d tokens", len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, invalidf("%q is not an integer", fields[0])
	}

	return n, nil
}

// Ints parses every token of line as an integer.
func Ints(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, invalidf("%q is not an integer", f)
		}
		out = append(out, n)
	}

	return out, nil
}

// Set parses a whitespace-separated list of integers into a Set. Repeated
// values collapse onto their first occurrence; an empty line is the empty set.
func Set(line string) (*set.Set, error) {
	xs, err := Ints(line)
	if err != nil {
		return nil, err
	}

	return set.New(xs...), nil
}

// Bool accepts "true" or "false" in any letter case.
func Bool(line string) (bool, error) {
	// A Caser is stateful, so each call gets its own.
	switch cases.Fold().String(strings.TrimSpace(line)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, invalidf("%q is neither true nor false", strings.TrimSpace(line))
	}
}

// Complex parses "re im" into a complex number.
func Complex(line string) (complexnum.Complex, error) {
	xs, err := Floats(line)
	if err != nil {
		return complexnum.Complex{}, err
	}
	if len(xs) != 2 {
		return complexnum.Complex{}, invalidf("want real and imaginary parts, got %d values", len(xs))
	}

	return complexnum.New(xs[0], xs[1]), nil
}

func float(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, invalidf("%q is not a number", tok)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalidf("%q is not finite", tok)
	}

	return v, nil
}

// toDense hands validated data to the matrix package; a shape error there
// means this package let something through, so it is reported as invalid input.
func toDense(rows, cols int, data [][]float64) (*matrix.Dense, error) {
	m, err := matrix.NewFromRows(rows, cols, data)
	if err != nil {
		return nil, invalidf("%v", err)
	}

	return m, nil
}
