// SPDX-License-Identifier: MIT

// Package simplex: static presolve reductions.
// The presolver scans the standard form for structure that resolves without
// pivoting:
//
//	(a) zero rows      — 0·y = b is infeasible for b ≠ 0, vacuous for b = 0;
//	(b) zero columns   — an unconstrained column with improving cost rides to
//	                     +Inf (unbounded); otherwise it is fixed at zero;
//	(c) singleton rows — a·y_j = b pins y_j = b/a, which is substituted into
//	                     every remaining row and removed.
//
// The pass runs to a fixpoint, so applying it twice changes nothing further
// (idempotence is a tested property). Every verdict it produces reports zero
// simplex iterations.

package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// presolveVerdict is the outcome of the reduction pass.
type presolveVerdict int

const (
	// verdictNone: no terminal structure found; the engine must run.
	verdictNone presolveVerdict = iota

	// verdictInfeasible: a contradiction was found statically.
	verdictInfeasible

	// verdictUnbounded: an unconstrained improving column was found.
	verdictUnbounded
)

// presolveReport maps the reduced form back to the full standard form.
type presolveReport struct {
	verdict presolveVerdict

	// fixed holds values of standard-form columns removed by the pass,
	// keyed by their pre-reduction column index.
	fixed map[int]float64

	// unboundedCol is the standard-form column that rides to +Inf under
	// verdictUnbounded, -1 otherwise. Used for the best-effort X.
	unboundedCol int

	// keptCols maps each surviving (reduced) column to its pre-reduction
	// index. keptCols[i] == i for the identity pass.
	keptCols []int
}

// newIdentityReport returns the no-op report used when presolve is disabled.
func newIdentityReport(cols int) *presolveReport {
	kept := make([]int, cols)
	for i := range kept {
		kept[i] = i
	}

	return &presolveReport{
		verdict:      verdictNone,
		fixed:        map[int]float64{},
		unboundedCol: -1,
		keptCols:     kept,
	}
}

// presolve reduces sf in place and reports how to undo the reduction.
//
// Stages per sweep (repeated until a sweep changes nothing):
//  1. Zero-row scan: contradiction → verdictInfeasible; vacuous → drop.
//  2. Zero-column scan: improving cost → verdictUnbounded; else fix at 0.
//  3. First singleton row: pin the variable, substitute, drop row+column.
//  4. Re-normalize row signs so b stays non-negative for phase 1.
//
// Complexity: O(sweeps · rows · cols); each sweep removes at least one row
// or column, so sweeps ≤ rows + cols.
func presolve(sf *standardForm, tol float64) *presolveReport {
	rep := newIdentityReport(sf.numCols())

	for {
		changed := false

		// 1) Zero rows.
		dropRows := map[int]bool{}
		for r := 0; r < sf.numRows(); r++ {
			if !rowIsZero(sf, r, tol) {
				continue
			}
			if math.Abs(sf.b[r]) > tol {
				rep.verdict = verdictInfeasible

				return rep
			}
			dropRows[r] = true
		}
		if len(dropRows) > 0 {
			shrink(sf, rep, dropRows, nil)
			changed = true
		}

		// 2) Zero columns.
		dropCols := map[int]bool{}
		for c := 0; c < sf.numCols(); c++ {
			if !colIsZero(sf, c, tol) {
				continue
			}
			if sf.c[c] < -tol {
				// The column appears in no constraint and improves the
				// objective: the problem is unbounded along it.
				rep.verdict = verdictUnbounded
				rep.unboundedCol = rep.keptCols[c]

				return rep
			}
			rep.fixed[rep.keptCols[c]] = 0
			dropCols[c] = true
		}
		if len(dropCols) > 0 {
			shrink(sf, rep, nil, dropCols)
			changed = true
		}

		// 3) Singleton rows — one per sweep keeps the bookkeeping simple;
		//    the fixpoint loop picks up the rest.
		if row, col, ok := findSingletonRow(sf, tol); ok {
			v := sf.b[row] / sf.at(row, col)
			if v < -tol {
				// Pinned value violates y ≥ 0.
				rep.verdict = verdictInfeasible

				return rep
			}
			if v < 0 {
				v = 0
			}
			rep.fixed[rep.keptCols[col]] = v

			// Substitute into the remaining rows.
			for r := 0; r < sf.numRows(); r++ {
				if r == row {
					continue
				}
				if a := sf.at(r, col); a != 0 {
					sf.b[r] -= a * v
				}
			}
			shrink(sf, rep, map[int]bool{row: true}, map[int]bool{col: true})
			changed = true
		}

		// 4) Substitutions may have driven some b negative; restore the
		//    b ≥ 0 invariant phase 1 depends on.
		normalizeRowSigns(sf)

		if !changed {
			return rep
		}
	}
}

// rowIsZero reports whether every entry of row r is within tol of zero.
func rowIsZero(sf *standardForm, r int, tol float64) bool {
	for c := 0; c < sf.numCols(); c++ {
		if math.Abs(sf.at(r, c)) > tol {
			return false
		}
	}

	return true
}

// colIsZero reports whether every entry of column c is within tol of zero.
// Vacuously true when no rows remain.
func colIsZero(sf *standardForm, c int, tol float64) bool {
	for r := 0; r < sf.numRows(); r++ {
		if math.Abs(sf.at(r, c)) > tol {
			return false
		}
	}

	return true
}

// findSingletonRow locates the first row with exactly one entry above tol.
func findSingletonRow(sf *standardForm, tol float64) (row, col int, ok bool) {
	for r := 0; r < sf.numRows(); r++ {
		nz := -1
		count := 0
		for c := 0; c < sf.numCols(); c++ {
			if math.Abs(sf.at(r, c)) > tol {
				nz = c
				count++
				if count > 1 {
					break
				}
			}
		}
		if count == 1 {
			return r, nz, true
		}
	}

	return 0, 0, false
}

// normalizeRowSigns negates rows with negative right-hand side.
func normalizeRowSigns(sf *standardForm) {
	for r := 0; r < sf.numRows(); r++ {
		if sf.b[r] >= 0 {
			continue
		}
		sf.b[r] = -sf.b[r]
		for c := 0; c < sf.numCols(); c++ {
			if v := sf.at(r, c); v != 0 {
				sf.a.Set(r, c, -v)
			}
		}
	}
}

// shrink rebuilds sf without the given rows/columns and composes the
// kept-column map in rep. Either set may be nil.
func shrink(sf *standardForm, rep *presolveReport, dropRows, dropCols map[int]bool) {
	oldRows, oldCols := sf.numRows(), sf.numCols()

	keepRows := make([]int, 0, oldRows)
	for r := 0; r < oldRows; r++ {
		if !dropRows[r] {
			keepRows = append(keepRows, r)
		}
	}
	keepCols := make([]int, 0, oldCols)
	for c := 0; c < oldCols; c++ {
		if !dropCols[c] {
			keepCols = append(keepCols, c)
		}
	}

	var a *mat.Dense
	if len(keepRows) > 0 && len(keepCols) > 0 {
		a = mat.NewDense(len(keepRows), len(keepCols), nil)
		for i, r := range keepRows {
			for j, c := range keepCols {
				if v := sf.at(r, c); v != 0 {
					a.Set(i, j, v)
				}
			}
		}
	}

	b := make([]float64, len(keepRows))
	for i, r := range keepRows {
		b[i] = sf.b[r]
	}
	c := make([]float64, len(keepCols))
	kept := make([]int, len(keepCols))
	for j, cc := range keepCols {
		c[j] = sf.c[cc]
		kept[j] = rep.keptCols[cc]
	}

	sf.a = a
	sf.b = b
	sf.c = c
	sf.rows = len(keepRows)
	sf.cols = len(keepCols)
	rep.keptCols = kept
}
