package vector

import (
	"strconv"
	"strings"
)

// Vector is a point or direction in R³.
type Vector struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vector { return Vector{X: x, Y: y, Z: z} }

// Components returns the coordinates in x, y, z order.
func (v Vector) Components() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// String renders v as "Vector: (x, y, z)" using the shortest exact
// representation of each coordinate.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("Vector: (")
	for i, c := range v.Components() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}
