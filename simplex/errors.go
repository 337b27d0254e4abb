// SPDX-License-Identifier: MIT
// Package simplex: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the simplex
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. Panics are reserved for programmer errors in option
// constructors.

package simplex

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "simplex: ..." for consistency and to allow
// easy grepping across logs. When context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the boundary — callers still match with
// errors.Is.
//
// Infeasibility, unboundedness and the iteration cap are NOT errors: they are
// Result statuses. Errors cover only malformed input, detected before any
// iteration and before any mutation of caller-owned arrays.

var (
	// ErrDimensionMismatch is returned when a constraint matrix's column count
	// disagrees with the objective length, a right-hand-side vector's length
	// disagrees with its matrix's row count, or the bounds list has the wrong
	// length. Always fatal, always pre-iteration.
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")

	// ErrInvalidBounds is returned when a bound pair has lower > upper, a NaN
	// endpoint, or collapses to an empty interval such as (+Inf, +Inf) or
	// (-Inf, -Inf). Always fatal, always pre-iteration.
	ErrInvalidBounds = errors.New("simplex: invalid variable bounds")

	// ErrNoObjective is returned when the cost vector is empty; a problem with
	// zero decision variables has nothing to solve.
	ErrNoObjective = errors.New("simplex: empty cost vector")
)
