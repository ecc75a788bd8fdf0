package complexnum

import (
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// Complex is real + imag·i.
type Complex struct {
	Real, Imag float64
}

// New returns re + im·i.
func New(re, im float64) Complex { return Complex{Real: re, Imag: im} }

// FromBuiltin converts a complex128.
func FromBuiltin(c complex128) Complex { return Complex{Real: real(c), Imag: imag(c)} }

// Builtin converts c to complex128.
func (c Complex) Builtin() complex128 { return complex(c.Real, c.Imag) }

// Add returns a + b.
func Add(a, b Complex) Complex {
	return Complex{Real: a.Real + b.Real, Imag: a.Imag + b.Imag}
}

// Sub returns a - b.
func Sub(a, b Complex) Complex {
	return Complex{Real: a.Real - b.Real, Imag: a.Imag - b.Imag}
}

// Mul returns a·b = (ar·br − ai·bi) + (ar·bi + ai·br)i.
func Mul(a, b Complex) Complex {
	return Complex{
		Real: a.Real*b.Real - a.Imag*b.Imag,
		Imag: a.Real*b.Imag + a.Imag*b.Real,
	}
}

// ApproxEqual reports whether both parts of a and b agree within tol,
// absolutely or relative to their magnitude.
func ApproxEqual(a, b Complex, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(a.Real, b.Real, tol, tol) &&
		scalar.EqualWithinAbsOrRel(a.Imag, b.Imag, tol, tol)
}

// String renders c as "a+bi" or "a-bi".
func (c Complex) String() string {
	re := strconv.FormatFloat(c.Real, 'g', -1, 64)
	im := strconv.FormatFloat(c.Imag, 'g', -1, 64)
	if c.Imag >= 0 {
		im = "+" + im
	}

	return re + im + "i"
}
