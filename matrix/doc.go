// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 storage used by lvmarkov to hold
// transition weights.
//
// What
//
//   - Dense: row-major r×c buffer with the explicit index formula i*cols + j.
//   - Safe accessors: At/Set/Column return errors instead of panicking.
//   - Validators: a single source of truth for nil/square/finite/non-negative
//     checks, returning package sentinels (see errors.go).
//
// Why
//
//	A transition matrix is read column by column (one column per source
//	state) and never mutated once a chain owns it. Dense keeps that read path
//	allocation-light and deterministic: every loop runs in a fixed i→j order
//	and there is no map iteration.
//
// Numeric policy
//
//	Dense rejects NaN and ±Inf on Set by default (DefaultValidateNaNInf).
//	Negative entries are legal in storage; ValidateNonNegative is the check
//	used by callers that need weights.
//
// Complexity quicksheet
//
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Column: O(r);
//     Clone: O(r*c).
//
// Usage
//
//	m, err := matrix.NewDenseFromRows([][]float64{
//	    {0.5, 0.5},
//	    {0.5, 0.5},
//	})
//	if err != nil {
//	    // ErrInvalidDimensions, ErrDimensionMismatch or ErrNaNInf
//	}
//	col, _ := m.Column(0) // []float64{0.5, 0.5}
package matrix
