// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No exported function
// panics on a user-triggered condition.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so failures are easy to grep
// in logs and exported reports. Kernels wrap with fmt.Errorf("<Op>: %w", ErrX);
// callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimensions -> NaN/Inf -> dimension mismatch.

var (
	// ErrBadShape is returned when row-major input data does not agree with the
	// declared shape (wrong number of rows, or a row with the wrong length).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (construction, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
