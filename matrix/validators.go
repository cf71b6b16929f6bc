// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/finite checks here.
//  - Wrap sentinels with the validator tag so call sites can add their own op tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - ValidateFinite runs O(r*c); everything else is O(1).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Typed nil pointers (e.g. (*Dense)(nil)) are treated as nil too.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures Rows()==Cols(). Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateSize ensures n > 0. Used by the reader before any allocation.
func ValidateSize(n int) error {
	if n <= 0 {
		return validatorErrorf("ValidateSize", ErrInvalidDimensions)
	}

	return nil
}

// ValidateSquareNonNil is the composite guard used by the LU entry points:
// NotNil → Square → Size.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}

	return ValidateSize(m.Rows())
}

// ValidateFinite ensures every element of m is finite.
// Dense fast-path walks the flat buffer; other implementations go through At.
func ValidateFinite(m Matrix) error {
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite",
					fmt.Errorf("(%d,%d): %w", idx/d.c, idx%d.c, ErrNaNInf))
			}
		}

		return nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}
