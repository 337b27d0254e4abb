// SPDX-License-Identifier: MIT

package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/simplex"
)

// TestCallback_ObservesEveryPivot registers an observer on an iterative
// solve and checks the record stream: one entry per pivot plus exactly one
// terminal entry, monotone iteration counts, and consistent field shapes.
func TestCallback_ObservesEveryPivot(t *testing.T) {
	p := simplex.Problem{
		C:   []float64{-3, -2},
		AUb: mat.NewDense(3, 2, []float64{2, 1, 1, 1, 1, 0}),
		BUb: []float64{10, 8, 4},
	}

	var seen []simplex.Iteration
	res, err := simplex.Solve(p, simplex.WithCallback(func(it simplex.Iteration) {
		seen = append(seen, it)
	}))
	require.NoError(t, err)
	require.NotEmpty(t, seen, "an iterative solve must produce records")

	// One record per pivot plus the terminal one.
	assert.Len(t, seen, res.NIter+1)

	for i, it := range seen {
		last := i == len(seen)-1
		assert.Equal(t, last, it.Complete, "Complete must be true exactly on the final record")
		assert.Len(t, it.X, 2, "X is reported in original variable space")
		assert.NotNil(t, it.Tableau, "tableau snapshot present on engine records")
		assert.Len(t, it.Basis, 3, "one basic variable per constraint row")
		assert.Contains(t, []int{1, 2}, it.Phase)
		if last {
			assert.Equal(t, -1, it.PivotRow)
			assert.Equal(t, -1, it.PivotCol)
			assert.Equal(t, res.NIter, it.NIter)
		} else {
			assert.GreaterOrEqual(t, it.PivotRow, 0)
			assert.GreaterOrEqual(t, it.PivotCol, 0)
		}
		if i > 0 {
			assert.GreaterOrEqual(t, it.NIter, seen[i-1].NIter, "iteration count never decreases")
		}
	}

	// The terminal estimate and the reported solution must agree.
	final := seen[len(seen)-1]
	for i := range res.X {
		assert.InDelta(t, res.X[i], final.X[i], solveTol, "component %d", i)
	}
}

// TestCallback_SnapshotsAreIndependent mutates everything a record hands
// out and verifies the solve is unaffected.
func TestCallback_SnapshotsAreIndependent(t *testing.T) {
	p := simplex.Problem{
		C:   []float64{-3, -2},
		AUb: mat.NewDense(3, 2, []float64{2, 1, 1, 1, 1, 0}),
		BUb: []float64{10, 8, 4},
	}

	res, err := simplex.Solve(p, simplex.WithCallback(func(it simplex.Iteration) {
		for i := range it.X {
			it.X[i] = -1e12
		}
		for i := range it.Basis {
			it.Basis[i] = -1
		}
		it.Tableau.Set(0, 0, -1e12)
	}))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.InDelta(t, -18, res.Fun, solveTol, "vandalized snapshots must not leak into the solve")
}

// TestCallback_PresolveVerdict checks the single terminal record emitted
// when presolve decides the problem before any tableau exists.
func TestCallback_PresolveVerdict(t *testing.T) {
	p := simplex.Problem{
		C: []float64{1, 1, 1, 2},
		AEq: mat.NewDense(4, 4, []float64{
			1, 0, 0, 0,
			0, 2, 0, 0,
			1, 0, 0, 0,
			1, 1, 1, 1,
		}),
		BEq: []float64{1, 2, 2, 4},
	}

	var seen []simplex.Iteration
	res, err := simplex.Solve(p, simplex.WithCallback(func(it simplex.Iteration) {
		seen = append(seen, it)
	}))
	require.NoError(t, err)
	assert.Equal(t, simplex.StatusInfeasible, res.Status)

	require.Len(t, seen, 1, "presolve verdicts emit exactly one record")
	it := seen[0]
	assert.True(t, it.Complete)
	assert.Equal(t, 0, it.NIter)
	assert.Equal(t, -1, it.PivotRow)
	assert.Equal(t, -1, it.PivotCol)
	assert.Nil(t, it.Tableau, "no tableau was ever assembled")
}
