// SPDX-License-Identifier: MIT
// Package simplex: public data model.
// Problem is the caller-facing description of a linear program; Result is the
// terminal verdict; Iteration is the per-pivot observation record handed to
// callbacks. All three are plain values — the solver never retains or mutates
// caller-owned memory.

package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Status is the terminal verdict of one Solve call.
//
// The numeric values are part of the public contract (they mirror the
// conventional LP status codes) and must not be reordered.
type Status int

const (
	// StatusOptimal: an optimal basic feasible solution was found.
	StatusOptimal Status = 0

	// StatusIterationLimit: the iteration cap was reached before any other
	// terminal condition. A soft verdict — Result.X holds the best basic
	// solution reached, not an error.
	StatusIterationLimit Status = 1

	// StatusInfeasible: the constraint system admits no feasible point.
	StatusInfeasible Status = 2

	// StatusUnbounded: the objective decreases without bound along a feasible
	// direction.
	StatusUnbounded Status = 3
)

// String returns the canonical lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusIterationLimit:
		return "iteration-limit"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Bound is a closed interval constraint l ≤ x ≤ u on a single variable.
// Either endpoint may be infinite: math.Inf(-1) for "no lower bound",
// math.Inf(1) for "no upper bound". The zero value is NOT a valid bound;
// use Free(), NonNegative() or Interval(l, u).
type Bound struct {
	Lower float64
	Upper float64
}

// NonNegative returns the default variable domain [0, +Inf).
func NonNegative() Bound { return Bound{Lower: 0, Upper: math.Inf(1)} }

// Free returns the unconstrained domain (-Inf, +Inf).
func Free() Bound { return Bound{Lower: math.Inf(-1), Upper: math.Inf(1)} }

// Interval returns the domain [l, u]. Validity (l ≤ u, no NaN) is checked by
// Solve, not here, so that invalid input surfaces as ErrInvalidBounds rather
// than a panic.
func Interval(l, u float64) Bound { return Bound{Lower: l, Upper: u} }

// Problem describes one linear program:
//
//	minimize    C·x
//	subject to  AEq·x  = BEq
//	            AUb·x ≤ BUb
//	            Bounds[i].Lower ≤ x[i] ≤ Bounds[i].Upper
//
// Any constraint block may be nil/empty. When Bounds is nil every variable
// defaults to [0, +Inf). Problem values are treated as immutable: Solve deep
// copies every matrix and slice before transforming anything, so the caller's
// arrays are byte-for-byte untouched after the call.
type Problem struct {
	// C holds the objective coefficients; its length fixes the number of
	// decision variables.
	C []float64

	// AUb and BUb describe inequality constraints AUb·x ≤ BUb.
	// AUb must have len(C) columns and len(BUb) rows.
	AUb *mat.Dense
	BUb []float64

	// AEq and BEq describe equality constraints AEq·x = BEq.
	// AEq must have len(C) columns and len(BEq) rows.
	AEq *mat.Dense
	BEq []float64

	// Bounds holds one Bound per variable, or nil for all-default [0, +Inf).
	Bounds []Bound
}

// NumVariables reports the number of decision variables.
func (p Problem) NumVariables() int { return len(p.C) }

// Result is the outcome of one Solve call.
type Result struct {
	// Success is true only for StatusOptimal.
	Success bool

	// Status is the terminal verdict.
	Status Status

	// X is the solution vector in the ORIGINAL variable space. On optimal
	// termination it is the optimizer; on iteration-limit it is the best
	// basic solution reached; on unbounded verdicts detected in presolve the
	// runaway variable is reported as ±Inf; on infeasibility it is the
	// all-zero vector.
	X []float64

	// Fun is C·X recomputed against the caller's original cost vector.
	Fun float64

	// NIter counts simplex pivots across both phases. Presolve
	// short-circuits report zero.
	NIter int

	// Message is a human-readable summary of Status.
	Message string

	// Warnings collects non-fatal diagnostics, e.g. unrecognized keys passed
	// through WithRawOptions. Never causes failure.
	Warnings []string
}

// Iteration is the observation record passed to a Callback after every pivot
// and once more at termination. All reference fields are snapshots owned by
// the callback: mutating them cannot influence the running solve.
type Iteration struct {
	// X is the current solution estimate in original variable space.
	X []float64

	// Tableau is a copy of the current augmented tableau (constraint rows,
	// objective row(s), right-hand-side column).
	Tableau *mat.Dense

	// Phase is 1 during the feasibility search, 2 during optimization.
	Phase int

	// NIter is the pivot count so far (both phases).
	NIter int

	// PivotRow and PivotCol identify the pivot just applied; both are -1 on
	// the terminal invocation and on zero-iteration presolve verdicts.
	PivotRow int
	PivotCol int

	// Basis is a copy of the current basic-variable index vector.
	Basis []int

	// Complete is false after each pivot and true exactly once, at
	// termination.
	Complete bool
}

// Callback observes solver progress. It is invoked synchronously on the
// solving goroutine; heavy work inside a callback slows the solve down.
type Callback func(Iteration)
