// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for ingestion and the LU engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The pivot tolerance is RELATIVE: a pivot p is treated as zero when
//     |p| <= pivotTol * scale, where scale is the largest absolute entry of the
//     input matrix. This keeps the singular/non-singular decision invariant
//     under uniform scaling of the input (det(cA) == c^n det(A)).
//   - validateNaNInf controls whether Read/Set reject NaN and ±Inf.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the relative threshold below which a pivot is
	// considered numerically zero: |p| <= DefaultPivotTolerance * max|a_ij|.
	// Matrices whose dynamic range exceeds 1e12 therefore report det 0, e.g.
	// diag(1e13, 1) gives 0, not 1e13. Use WithPivotTolerance(0) to keep them.
	DefaultPivotTolerance = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithPivotTolerance sets the relative zero-pivot threshold used by Factorize.
// Panics when tol is negative, NaN or ±Inf.
//
// A tolerance of 0 only treats exact zeros as singular; larger values make
// near-singular inputs collapse to a determinant of 0 sooner.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf enables rejection of NaN/±Inf in Read and Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/±Inf rejection. Non-finite values then
// propagate through elimination into the determinant.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// PivotTolerance reports the resolved relative pivot threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// NewOptions resolves opts over the documented defaults.
// Exposed for callers (the driver, config layer) that want to inspect the
// effective policy before running a computation.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order; last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
