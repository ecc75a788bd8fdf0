// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on
	// construction (NewFromRows) and on Set.
	DefaultValidateNaNInf = true

	// DefaultRelTol and DefaultAbsTol are the tolerances used by Equal-like
	// helpers in tests and reports when the caller has no better choice.
	DefaultRelTol = 1e-9
	DefaultAbsTol = 1e-12
)

// Options holds the resolved configuration for a constructor call.
// Fields are unexported; callers configure through Option values.
type Options struct {
	validateNaNInf bool // reject NaN/±Inf on ingestion and Set
}

// Option mutates Options. Options are applied in order; later ones win.
type Option func(*Options)

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// WithValidateNaNInf enables or disables rejection of NaN/±Inf values.
// With validation off, non-finite values propagate through kernels under
// IEEE-754 rules.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}

// NewMatrixOptions resolves opts over the defaults. Nil options are skipped.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidateNaNInf reports whether the numeric guard is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies opts in order over defaultOptions.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn == nil {
			continue
		}
		fn(&o)
	}

	return o
}
