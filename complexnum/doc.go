// Package complexnum implements complex numbers as an explicit (real, imag)
// pair with addition, subtraction and multiplication.
//
// Complex mirrors the builtin complex128 but keeps both parts as named
// fields so they can be exported as separate report columns. Builtin and
// FromBuiltin convert between the two.
package complexnum
