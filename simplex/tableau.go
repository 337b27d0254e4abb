// SPDX-License-Identifier: MIT

// Package simplex: the mutable tableau.
// The tableau is the augmented matrix the engine pivots on:
//
//	column layout:  [ real columns | artificial columns | RHS ]
//	row layout:     [ m constraint rows ; true objective ; phase-1 objective ]
//
// Both objective rows are carried from construction onward and participate in
// every pivot, so the true objective row is already in reduced-cost form when
// phase 2 begins. The invariant maintained by pivot is that the basis columns
// always form an identity submatrix.
//
// One tableau is owned by exactly one solve call; nothing is shared.

package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// tableau holds the working matrix and the basis for one solve.
type tableau struct {
	t *mat.Dense // (m+2)×width augmented matrix

	m        int // constraint rows
	realCols int // standard-form columns (variables + slacks, post-presolve)
	width    int // realCols + m artificials + 1 RHS column

	basis []int // basis[r] is the column basic in row r; length m
}

// Row indices of the two objective rows.
func (tb *tableau) objRow() int { return tb.m }
func (tb *tableau) auxRow() int { return tb.m + 1 }

// rhsCol is the right-hand-side column index.
func (tb *tableau) rhsCol() int { return tb.width - 1 }

// artCol reports whether column j is an artificial column.
func (tb *tableau) artCol(j int) bool { return j >= tb.realCols && j < tb.rhsCol() }

// newTableau assembles [A | I_art | b] plus the two objective rows from a
// (presolved) standard form. The initial basis is the artificial identity.
//
// The phase-1 row starts as the negated column sums of the constraint block:
// with the artificial basis, the reduced cost of real column j under the
// sum-of-artificials objective is -Σ_r a[r][j], and the stored RHS entry
// -Σ_r b[r] keeps "aux objective value == -T[aux][rhs]" through every pivot.
func newTableau(sf *standardForm) *tableau {
	m := sf.numRows()
	realCols := sf.numCols()
	width := realCols + m + 1

	tb := &tableau{
		t:        mat.NewDense(m+2, width, nil),
		m:        m,
		realCols: realCols,
		width:    width,
		basis:    make([]int, m),
	}

	rhs := tb.rhsCol()
	for r := 0; r < m; r++ {
		for j := 0; j < realCols; j++ {
			if v := sf.at(r, j); v != 0 {
				tb.t.Set(r, j, v)
			}
		}
		tb.t.Set(r, realCols+r, 1)
		tb.t.Set(r, rhs, sf.b[r])
		tb.basis[r] = realCols + r
	}

	// True objective row: standard-space costs, zero on artificials.
	for j := 0; j < realCols; j++ {
		if sf.c[j] != 0 {
			tb.t.Set(tb.objRow(), j, sf.c[j])
		}
	}

	// Phase-1 objective row: negated column sums.
	for j := 0; j < realCols; j++ {
		var sum float64
		for r := 0; r < m; r++ {
			sum += tb.t.At(r, j)
		}
		if sum != 0 {
			tb.t.Set(tb.auxRow(), j, -sum)
		}
	}
	var bSum float64
	for r := 0; r < m; r++ {
		bSum += sf.b[r]
	}
	tb.t.Set(tb.auxRow(), rhs, -bSum)

	return tb
}

// pivot performs one Gauss-Jordan elimination step on (row, col): the pivot
// row is scaled to put 1 at the pivot, the pivot column is eliminated from
// every other row (both objective rows included), and the basis is updated.
//
// sparseTol > 0 selects the sparsity-aware walk: rows whose pivot-column
// entry is already within sparseTol of zero are skipped instead of being
// eliminated against. Pass 0 for the dense walk (skip exact zeros only).
func (tb *tableau) pivot(row, col int, sparseTol float64) {
	raw := tb.t.RawMatrix()
	stride := raw.Stride
	data := raw.Data

	// Scale the pivot row so T[row][col] == 1.
	pv := data[row*stride+col]
	base := row * stride
	inv := 1 / pv
	for j := 0; j < tb.width; j++ {
		data[base+j] *= inv
	}
	data[base+col] = 1 // kill round-off at the pivot itself

	// Eliminate the pivot column from every other row.
	for r := 0; r < tb.m+2; r++ {
		if r == row {
			continue
		}
		factor := data[r*stride+col]
		if factor == 0 || math.Abs(factor) <= sparseTol {
			continue
		}
		rbase := r * stride
		for j := 0; j < tb.width; j++ {
			data[rbase+j] -= factor * data[base+j]
		}
		data[rbase+col] = 0
	}

	tb.basis[row] = col
}

// solution reads the current basic solution in standard-form space: basic
// columns take their RHS value, everything else is zero. Artificial columns
// still basic (degenerate phase-1 leftovers) contribute nothing.
func (tb *tableau) solution() []float64 {
	x := make([]float64, tb.realCols)
	rhs := tb.rhsCol()
	for r, j := range tb.basis {
		if j < tb.realCols {
			x[j] = tb.t.At(r, rhs)
		}
	}

	return x
}

// auxObjective reports the current value of the phase-1 objective
// (sum of artificial variables).
func (tb *tableau) auxObjective() float64 {
	return -tb.t.At(tb.auxRow(), tb.rhsCol())
}

// snapshot returns an independent copy of the tableau matrix for observers.
func (tb *tableau) snapshot() *mat.Dense {
	return mat.DenseCopyOf(tb.t)
}

// basisSnapshot returns an independent copy of the basis vector.
func (tb *tableau) basisSnapshot() []int {
	b := make([]int, len(tb.basis))
	copy(b, tb.basis)

	return b
}
