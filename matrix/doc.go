// Package matrix implements rectangular real matrices and the classical
// operations on them.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors that return
//     errors instead of panicking.
//   - NewFromRows / ToRows for moving between the row-major [][]float64 form
//     produced by the parsing layer and the flat Dense storage.
//   - Add, Sub, Mul and Transpose, each returning a fresh result and never
//     mutating operands.
//   - Equal and AllClose for exact and tolerance-based comparison.
//
// Shape contract: Add/Sub require identical shapes and Mul requires
// a.Cols() == b.Rows(). Violations are reported as ErrDimensionMismatch,
// never as an out-of-bounds read.
//
// Determinism: every kernel uses fixed loop orders. Mul accumulates each
// output cell from zero over k = 0..n-1 in row, column, inner order, so the
// floating-point summation order is reproducible across runs.
package matrix
