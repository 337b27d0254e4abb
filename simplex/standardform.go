// SPDX-License-Identifier: MIT

// Package simplex: standard-form transformation.
// newStandardForm rewrites a general Problem
//
//	minimize    c·x
//	subject to  AEq·x  = bEq
//	            AUb·x ≤ bUb
//	            l ≤ x ≤ u        (per variable, either side may be infinite)
//
// into the canonical equality-constrained nonnegative form
//
//	minimize    c'·y
//	subject to  A·y = b,  y ≥ 0,  b ≥ 0
//
// by substituting each variable according to its bounds, appending one bound
// row per finite interval width, one slack per inequality row, and finally
// flipping the sign of any row whose right-hand side is negative.
//
// Each original variable carries exactly one tagged transform
// (identity | shift | negate-shift | split) that the result translator later
// inverts; no bound-specific branching leaks into the engine.

package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// transformKind tags how one original variable was rewritten into
// standard-form column(s).
type transformKind int

const (
	// transformIdentity: x = y. Used for the default [0, +Inf) domain.
	transformIdentity transformKind = iota

	// transformShift: x = y + offset, for finite lower bounds (offset = l).
	transformShift

	// transformNegateShift: x = offset - y, for variables unbounded below
	// with a finite upper bound (offset = u).
	transformNegateShift

	// transformSplit: x = y⁺ - y⁻, for variables unbounded in both
	// directions.
	transformSplit
)

// colTransform records the substitution applied to one original variable.
// col is the primary standard-form column; negCol is the negative half of a
// split pair and -1 otherwise.
type colTransform struct {
	kind   transformKind
	offset float64
	col    int
	negCol int
}

// standardForm is the canonical problem the presolver and engine operate on.
// All storage is owned by the solve call; nothing aliases caller memory.
//
// a is nil exactly when rows == 0 (gonum refuses zero-row matrices); every
// consumer goes through numRows/numCols instead of Dims on that account.
type standardForm struct {
	a    *mat.Dense // rows×cols equality constraint matrix, nil when rows == 0
	b    []float64  // length rows, non-negative after row normalization
	c    []float64  // length cols standard-space costs (slacks cost zero)
	rows int
	cols int

	numVars   int            // substituted variable columns (before slacks)
	numSlacks int            // one per inequality row
	transform []colTransform // one entry per ORIGINAL variable
}

// validateProblem performs every shape and bound check before anything is
// copied or transformed, so invalid input can never leave partial side
// effects.
//
// Check order (documented, enforced in tests):
// empty objective -> matrix shape mismatches -> RHS length mismatches ->
// bound count -> bound pair validity.
func validateProblem(p Problem) error {
	n := len(p.C)
	if n == 0 {
		return ErrNoObjective
	}

	// 1) Inequality block shape: AUb is rUb×n, len(BUb) == rUb.
	if p.AUb != nil {
		r, c := p.AUb.Dims()
		if c != n || r != len(p.BUb) {
			return ErrDimensionMismatch
		}
	} else if len(p.BUb) != 0 {
		return ErrDimensionMismatch
	}

	// 2) Equality block shape: AEq is rEq×n, len(BEq) == rEq.
	if p.AEq != nil {
		r, c := p.AEq.Dims()
		if c != n || r != len(p.BEq) {
			return ErrDimensionMismatch
		}
	} else if len(p.BEq) != 0 {
		return ErrDimensionMismatch
	}

	// 3) Bounds: nil (all default) or exactly one Bound per variable.
	if p.Bounds != nil && len(p.Bounds) != n {
		return ErrDimensionMismatch
	}

	// 4) Each bound pair must describe a non-empty interval.
	for _, bd := range p.Bounds {
		if math.IsNaN(bd.Lower) || math.IsNaN(bd.Upper) {
			return ErrInvalidBounds
		}
		// (+Inf, +Inf) and (-Inf, -Inf) are degenerate single-point-at-
		// infinity specs; both are rejected.
		if math.IsInf(bd.Lower, 1) || math.IsInf(bd.Upper, -1) {
			return ErrInvalidBounds
		}
		if bd.Lower > bd.Upper {
			return ErrInvalidBounds
		}
	}

	return nil
}

// resolveBounds returns the effective per-variable bounds, filling in the
// default [0, +Inf) domain when the caller supplied none.
func resolveBounds(p Problem) []Bound {
	n := len(p.C)
	bounds := make([]Bound, n)
	if p.Bounds == nil {
		for i := range bounds {
			bounds[i] = NonNegative()
		}

		return bounds
	}
	copy(bounds, p.Bounds)

	return bounds
}

// newStandardForm builds the canonical form. The Problem must already have
// passed validateProblem.
//
// Stages:
//  1. Assign a transform and standard column(s) to every variable.
//  2. Count bound rows (one per finite interval width) and slacks.
//  3. Assemble [ substituted AUb | slack I ; bound rows | slack I ;
//     substituted AEq | 0 ] with the adjusted right-hand sides.
//  4. Negate rows with negative RHS so that b ≥ 0 throughout.
//
// Complexity: O((mUb+mEq+nBound) · k) time and space, a single dense pass.
func newStandardForm(p Problem, bounds []Bound) *standardForm {
	n := len(p.C)

	// 1) Choose a transform per variable and lay out substituted columns.
	transform := make([]colTransform, n)
	numVars := 0
	for i, bd := range bounds {
		ct := colTransform{col: numVars, negCol: -1}
		switch {
		case math.IsInf(bd.Lower, -1) && math.IsInf(bd.Upper, 1):
			ct.kind = transformSplit
			ct.negCol = numVars + 1
			numVars += 2
		case math.IsInf(bd.Lower, -1):
			ct.kind = transformNegateShift
			ct.offset = bd.Upper
			numVars++
		case bd.Lower != 0:
			ct.kind = transformShift
			ct.offset = bd.Lower
			numVars++
		default:
			ct.kind = transformIdentity
			numVars++
		}
		transform[i] = ct
	}

	// 2) Bound rows: shifted/identity variables with a finite upper bound
	//    need an explicit y ≤ width row. Negate-shift and split variables
	//    never do (the substitution already encodes the only finite side).
	type boundRow struct {
		col   int
		width float64
	}
	var boundRows []boundRow
	for i, bd := range bounds {
		ct := transform[i]
		if ct.kind != transformIdentity && ct.kind != transformShift {
			continue
		}
		if math.IsInf(bd.Upper, 1) {
			continue
		}
		boundRows = append(boundRows, boundRow{col: ct.col, width: bd.Upper - bd.Lower})
	}

	var rUb, rEq int
	if p.AUb != nil {
		rUb, _ = p.AUb.Dims()
	}
	if p.AEq != nil {
		rEq, _ = p.AEq.Dims()
	}
	numSlacks := rUb + len(boundRows)
	m := numSlacks + rEq
	k := numVars + numSlacks

	sf := &standardForm{
		b:         make([]float64, m),
		c:         make([]float64, k),
		rows:      m,
		cols:      k,
		numVars:   numVars,
		numSlacks: numSlacks,
		transform: transform,
	}
	if m > 0 {
		sf.a = mat.NewDense(m, k, nil)
	}

	// 3a) Substituted costs: identity/shift keep c, negate-shift flips it,
	//     split pairs carry (c, -c). Constant offsets from shifts are not
	//     tracked — the translator recomputes the objective from the
	//     original cost vector.
	for i, ct := range transform {
		switch ct.kind {
		case transformNegateShift:
			sf.c[ct.col] = -p.C[i]
		case transformSplit:
			sf.c[ct.col] = p.C[i]
			sf.c[ct.negCol] = -p.C[i]
		default:
			sf.c[ct.col] = p.C[i]
		}
	}

	// 3b) Constraint rows: inequalities first, then bound rows, then
	//     equalities — slack identity spans the first numSlacks rows.
	fill := func(row int, src *mat.Dense, srcRow int, rhs float64) {
		adjusted := rhs
		for i, ct := range transform {
			aij := src.At(srcRow, i)
			if aij == 0 {
				continue
			}
			switch ct.kind {
			case transformShift:
				// x = y + l contributes a·l to the RHS.
				sf.a.Set(row, ct.col, aij)
				adjusted -= aij * ct.offset
			case transformNegateShift:
				// x = u - y flips the column and contributes a·u.
				sf.a.Set(row, ct.col, -aij)
				adjusted -= aij * ct.offset
			case transformSplit:
				sf.a.Set(row, ct.col, aij)
				sf.a.Set(row, ct.negCol, -aij)
			default:
				sf.a.Set(row, ct.col, aij)
			}
		}
		sf.b[row] = adjusted
	}

	row := 0
	for i := 0; i < rUb; i++ {
		fill(row, p.AUb, i, p.BUb[i])
		sf.a.Set(row, numVars+row, 1) // slack
		row++
	}
	for _, br := range boundRows {
		sf.a.Set(row, br.col, 1)
		sf.a.Set(row, numVars+row, 1) // slack
		sf.b[row] = br.width
		row++
	}
	for i := 0; i < rEq; i++ {
		fill(row, p.AEq, i, p.BEq[i])
		row++
	}

	// 4) Row-sign normalization: every row must end with b ≥ 0 so phase 1
	//    can start from the artificial identity basis.
	for r := 0; r < m; r++ {
		if sf.b[r] >= 0 {
			continue
		}
		sf.b[r] = -sf.b[r]
		for j := 0; j < k; j++ {
			if v := sf.a.At(r, j); v != 0 {
				sf.a.Set(r, j, -v)
			}
		}
	}

	return sf
}

// numRows reports the current constraint-row count (presolve shrinks it).
func (sf *standardForm) numRows() int { return sf.rows }

// numCols reports the current column count (presolve shrinks it).
func (sf *standardForm) numCols() int { return sf.cols }

// at reads a(r, c); the nil-matrix (zero-row) case cannot be reached because
// callers iterate r < rows.
func (sf *standardForm) at(r, c int) float64 { return sf.a.At(r, c) }
