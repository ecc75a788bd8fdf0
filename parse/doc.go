// Package parse turns lines of user text into already-validated domain
// values: reals, vectors, matrices, integer sets, booleans and complex
// numbers.
//
// Tokens are separated by whitespace. Every failure wraps ErrInvalidInput
// and names the offending token, so a caller can print the error and ask
// again without inspecting it further. Non-finite reals (NaN, ±Inf) are
// rejected here so the algebra packages only ever see finite input.
package parse
