// SPDX-License-Identifier: MIT

package simplex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestPresolve_Idempotent runs the reduction pass twice on the same standard
// form: the second pass must find nothing left to do.
func TestPresolve_Idempotent(t *testing.T) {
	p := Problem{
		C: []float64{1, 1, 1, 2},
		AEq: mat.NewDense(4, 4, []float64{
			1, 0, 0, 0,
			0, 2, 0, 0,
			1, 0, 0, 0,
			1, 1, 1, 1,
		}),
		BEq: []float64{1, 2, 1, 4},
	}
	sf := newStandardForm(p, resolveBounds(p))

	rep := presolve(sf, DefaultTolerance)
	require.Equal(t, verdictNone, rep.verdict)
	assert.Equal(t, map[int]float64{0: 1, 1: 1}, rep.fixed, "x0 and x1 pinned by singleton rows")
	assert.Equal(t, []int{2, 3}, rep.keptCols)

	rows, cols := sf.numRows(), sf.numCols()
	again := presolve(sf, DefaultTolerance)
	assert.Equal(t, verdictNone, again.verdict)
	assert.Empty(t, again.fixed, "a second pass must fix nothing")
	assert.Equal(t, rows, sf.numRows())
	assert.Equal(t, cols, sf.numCols())
}

// TestPresolve_RHSStaysNonNegative checks that singleton substitution
// re-normalizes row signs, keeping the b ≥ 0 invariant phase 1 needs.
func TestPresolve_RHSStaysNonNegative(t *testing.T) {
	// x0 = 3 pinned; substituting into x0 - x1 = 1 leaves -x1 = -2, which
	// must be flipped back to a non-negative RHS before the next sweep.
	p := Problem{
		C: []float64{1, 1},
		AEq: mat.NewDense(2, 2, []float64{
			1, 0,
			1, -1,
		}),
		BEq: []float64{3, 1},
	}
	sf := newStandardForm(p, resolveBounds(p))

	rep := presolve(sf, DefaultTolerance)
	require.Equal(t, verdictNone, rep.verdict)
	assert.Equal(t, map[int]float64{0: 3, 1: 2}, rep.fixed)
	for r := 0; r < sf.numRows(); r++ {
		assert.GreaterOrEqual(t, sf.b[r], 0.0, "row %d", r)
	}
}

// TestStandardForm_TransformAssignment pins the substitution chosen for each
// bound shape and the derived column/slack counts.
func TestStandardForm_TransformAssignment(t *testing.T) {
	p := Problem{
		C: []float64{1, 1, 1, 1, 1},
		Bounds: []Bound{
			NonNegative(),                   // identity
			Free(),                          // split pair
			Interval(-3, math.Inf(1)),       // shift by -3
			Interval(math.Inf(-1), 4),       // negate-shift around 4
			Interval(1, 5),                  // shift by 1 plus a bound row
		},
	}
	sf := newStandardForm(p, resolveBounds(p))

	kinds := make([]transformKind, len(sf.transform))
	for i, ct := range sf.transform {
		kinds[i] = ct.kind
	}
	assert.Equal(t, []transformKind{
		transformIdentity,
		transformSplit,
		transformShift,
		transformNegateShift,
		transformShift,
	}, kinds)

	assert.Equal(t, 6, sf.numVars, "split pair adds one extra column")
	assert.Equal(t, 1, sf.numSlacks, "one slack for the single finite-width bound row")
	assert.Equal(t, 1, sf.numRows())
	assert.Equal(t, 4.0, sf.b[0], "bound row width is u - l")
}

// TestStandardForm_NegativeRHSNormalized verifies that inequality rows with
// negative right-hand side are negated whole, slack coefficient included.
func TestStandardForm_NegativeRHSNormalized(t *testing.T) {
	p := Problem{
		C:   []float64{1, 1},
		AUb: mat.NewDense(1, 2, []float64{-1, -1}),
		BUb: []float64{-2},
	}
	sf := newStandardForm(p, resolveBounds(p))

	require.Equal(t, 1, sf.numRows())
	assert.Equal(t, 2.0, sf.b[0])
	assert.Equal(t, 1.0, sf.at(0, 0))
	assert.Equal(t, 1.0, sf.at(0, 1))
	assert.Equal(t, -1.0, sf.at(0, 2), "slack flips sign with its row")
}
