// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return these sentinels (possibly wrapped with a
// call-site tag) and tests match them via errors.Is. Nothing in this package
// panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so log lines are greppable.
// Wrap with fmt.Errorf("ctx: %w", ErrX) when context matters; callers still
// match with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Column) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. ragged rows
	// handed to NewDenseFromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeEntry signals a strictly negative entry where only
	// non-negative weights are allowed (transition matrices).
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
