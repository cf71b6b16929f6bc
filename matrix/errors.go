// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (see options.go).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add context with matrixErrorf
// ("<Op>: <sentinel>"); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// size -> token syntax -> token count -> numeric policy -> shape/index.
//
// A numerically singular matrix is NOT an error: Factorize reports it through
// LU.Singular() and Det returns 0.

var (
	// ErrInvalidDimensions indicates that a requested size is non-positive.
	// The driver surfaces this text verbatim for the n == 0 input.
	ErrInvalidDimensions = errors.New("matrix: matrix size must be > 0")

	// ErrTooLarge indicates a declared size above MaxReadSize; the reader refuses
	// to allocate n*n values for it.
	ErrTooLarge = errors.New("matrix: matrix size exceeds limit")

	// ErrMalformedInput indicates a token that is not a valid number
	// (or, for the leading size token, not a base-10 integer).
	ErrMalformedInput = errors.New("matrix: malformed input")

	// ErrUnexpectedEOF indicates that the stream ended before n*n values were read.
	ErrUnexpectedEOF = errors.New("matrix: unexpected EOF")

	// ErrTrailingData indicates tokens left in the stream after the n*n values.
	ErrTrailingData = errors.New("matrix: trailing data after matrix")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. a data slice
	// whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
