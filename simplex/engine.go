// SPDX-License-Identifier: MIT

// Package simplex: the two-phase iteration engine.
//
// Phase 1 minimizes the sum of the artificial variables to find a feasible
// basis; phase 2 minimizes the true objective from that basis. Both phases
// share one iteration body:
//
//	entering column — most negative reduced cost below -tol, ties broken by
//	                  lowest column index. This is NOT Bland's rule: there is
//	                  no formal anti-cycling guarantee, and the iteration cap
//	                  is the backstop on pathological inputs. Preserved
//	                  deliberately to keep numeric outputs stable.
//	leaving row     — minimum ratio RHS/coefficient over rows with a strictly
//	                  positive coefficient in the entering column, ties broken
//	                  by lowest basic-variable index.
//
// State machine per solve:
//
//	Initialized → Iterating → {Optimal | Infeasible | Unbounded |
//	                           IterationLimitReached}
//
// Iterating self-loops on each pivot; all four right-hand states are
// terminal.

package simplex

import (
	"log/slog"
	"math"
)

// engineState is the verdict of the iteration loops, before translation into
// the public Status (phase-1 optimality is not the caller's optimality).
type engineState int

const (
	stateIterating engineState = iota
	stateOptimal
	stateInfeasible
	stateUnbounded
	stateIterationLimit
)

// engine drives the pivot loop over one tableau.
type engine struct {
	tb  *tableau
	opt options

	phase int
	nit   int

	// toOriginal maps a standard-space basic solution to original variable
	// space; used only to populate callback and display records.
	toOriginal func(standard []float64) []float64
}

// sparseTol returns the elimination skip threshold for the configured walk.
func (e *engine) sparseTol() float64 {
	if e.opt.sparse {
		return e.opt.tol
	}

	return 0
}

// notify fires the observation hooks after a pivot (complete=false) or at
// termination (complete=true, pivot coordinates -1).
func (e *engine) notify(pivotRow, pivotCol int, complete bool) {
	if e.opt.callback == nil && !e.opt.disp {
		return
	}

	x := e.toOriginal(e.tb.solution())

	if e.opt.disp {
		e.opt.logger.Info("simplex iteration",
			slog.Int("phase", e.phase),
			slog.Int("nit", e.nit),
			slog.Int("pivot_row", pivotRow),
			slog.Int("pivot_col", pivotCol),
			slog.Bool("complete", complete),
		)
	}

	if e.opt.callback != nil {
		e.opt.callback(Iteration{
			X:        x,
			Tableau:  e.tb.snapshot(),
			Phase:    e.phase,
			NIter:    e.nit,
			PivotRow: pivotRow,
			PivotCol: pivotCol,
			Basis:    e.tb.basisSnapshot(),
			Complete: complete,
		})
	}
}

// selectEntering scans the pricing row for the most negative reduced cost
// below -tol over eligible columns. Artificial columns are never eligible in
// phase 2. Returns -1 when no column improves (phase optimality).
func (e *engine) selectEntering(pricingRow int) int {
	tol := e.opt.tol
	best := -1
	bestCost := -tol
	for j := 0; j < e.tb.rhsCol(); j++ {
		if e.phase == 2 && e.tb.artCol(j) {
			continue
		}
		rc := e.tb.t.At(pricingRow, j)
		// Strict < keeps the lowest index on exact ties.
		if rc < bestCost {
			bestCost = rc
			best = j
		}
	}

	return best
}

// selectLeaving runs the ratio test on the entering column. Returns -1 when
// no row limits the step (unboundedness).
func (e *engine) selectLeaving(col int) int {
	tol := e.opt.tol
	rhs := e.tb.rhsCol()

	best := -1
	bestRatio := math.Inf(1)
	for r := 0; r < e.tb.m; r++ {
		a := e.tb.t.At(r, col)
		if a <= tol {
			continue
		}
		ratio := e.tb.t.At(r, rhs) / a
		switch {
		case ratio < bestRatio-tol:
			bestRatio = ratio
			best = r
		case math.Abs(ratio-bestRatio) <= tol && best >= 0 &&
			e.tb.basis[r] < e.tb.basis[best]:
			// Tie: prefer the row whose basic variable has the lowest index.
			bestRatio = ratio
			best = r
		}
	}

	return best
}

// iterate runs the shared pivot loop pricing from pricingRow until a
// terminal condition. Returns stateOptimal when no reduced cost improves
// (the phase converged), stateUnbounded when the ratio test finds no
// limiting row, stateIterationLimit when the cap is hit.
func (e *engine) iterate(pricingRow int) engineState {
	for {
		col := e.selectEntering(pricingRow)
		if col < 0 {
			return stateOptimal
		}

		row := e.selectLeaving(col)
		if row < 0 {
			return stateUnbounded
		}

		if e.nit >= e.opt.maxIter {
			return stateIterationLimit
		}

		e.tb.pivot(row, col, e.sparseTol())
		e.nit++
		e.notify(row, col, false)
	}
}

// run executes phase 1 then phase 2 and returns the terminal state plus the
// pivot count.
func (e *engine) run() (engineState, int) {
	// Phase 1: minimize the sum of artificials.
	e.phase = 1
	st := e.iterate(e.tb.auxRow())
	switch st {
	case stateIterationLimit:
		return st, e.nit
	case stateUnbounded:
		// The phase-1 objective is bounded below by zero; an unbounded ray
		// here means the artificial subproblem is numerically broken, and
		// the only honest verdict is infeasibility.
		return stateInfeasible, e.nit
	}

	if e.tb.auxObjective() > e.opt.tol {
		return stateInfeasible, e.nit
	}

	e.evictArtificials()

	// Phase 2: minimize the true objective from the feasible basis.
	e.phase = 2
	return e.iterate(e.tb.objRow()), e.nit
}

// evictArtificials drives artificial variables still basic after phase 1 out
// of the basis via zero-cost pivots against real columns, so they cannot
// corrupt phase 2. A degenerate row with no usable real column is left
// alone: its artificial stays basic at value zero and is excluded from
// phase-2 pricing anyway.
func (e *engine) evictArtificials() {
	tol := e.opt.tol
	for r := 0; r < e.tb.m; r++ {
		if !e.tb.artCol(e.tb.basis[r]) {
			continue
		}
		for j := 0; j < e.tb.realCols; j++ {
			if math.Abs(e.tb.t.At(r, j)) > tol {
				e.tb.pivot(r, j, e.sparseTol())
				e.nit++
				e.notify(r, j, false)

				break
			}
		}
	}
}
