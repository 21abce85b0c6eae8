// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still use errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Element checks scan in row-major order and stop at the first violation.

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
// A typed nil *Dense inside the interface is treated as nil as well.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil; see ValidateSquareNonNil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil composes ValidateNotNil → ValidateSquare.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateFinite rejects any NaN or ±Inf element.
// The error carries the offending coordinates.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	return scan(m, "ValidateFinite", func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		return nil
	})
}

// ValidateNonNegative rejects any element strictly below zero.
// NaN is reported as ErrNaNInf, since it is neither negative nor valid.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	return scan(m, "ValidateNonNegative", func(v float64) error {
		if math.IsNaN(v) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegativeEntry
		}
		return nil
	})
}

// scan applies check to every element in row-major order.
// Uses the flat buffer when m is *Dense, At otherwise.
func scan(m Matrix, tag string, check func(v float64) error) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tag, err)
	}

	var failure error
	if d, ok := m.(*Dense); ok {
		d.Do(func(i, j int, v float64) bool {
			if err := check(v); err != nil {
				failure = fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
				return false
			}
			return true
		})

		return failure
	}

	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
			}
		}
	}

	return nil
}
