// SPDX-License-Identifier: MIT

package simplex_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/simplex"
)

// ExampleSolve demonstrates a small production-planning program:
//
//	maximize  3x + 2y          (stated as minimize -3x - 2y)
//	s.t.      2x +  y ≤ 10     machine hours
//	           x +  y ≤  8     labor hours
//	           x       ≤  4    material stock
//	           x, y ≥ 0
//
// The optimum produces 2 units of x and 6 of y for a profit of 18.
func ExampleSolve() {
	p := simplex.Problem{
		C:   []float64{-3, -2},
		AUb: mat.NewDense(3, 2, []float64{2, 1, 1, 1, 1, 0}),
		BUb: []float64{10, 8, 4},
	}

	res, err := simplex.Solve(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("status: %s\n", res.Status)
	fmt.Printf("profit: %.0f\n", -res.Fun)
	fmt.Printf("plan:   x=%.0f y=%.0f\n", res.X[0], res.X[1])
	// Output:
	// status: optimal
	// profit: 18
	// plan:   x=2 y=6
}

// ExampleSolve_bounds shows per-variable domains: one free variable and one
// with a negative floor.
func ExampleSolve_bounds() {
	p := simplex.Problem{
		C:   []float64{1, -4},
		AUb: mat.NewDense(2, 2, []float64{-3, 1, 1, 2}),
		BUb: []float64{6, 4},
		Bounds: []simplex.Bound{
			simplex.Free(),
			simplex.Interval(-3, math.Inf(1)),
		},
	}

	res, _ := simplex.Solve(p)
	fmt.Printf("fun: %.4f\n", res.Fun)
	// Output:
	// fun: -11.4286
}

// ExampleWithCallback counts pivots through the observation hook.
func ExampleWithCallback() {
	p := simplex.Problem{
		C:   []float64{-3, -2},
		AUb: mat.NewDense(3, 2, []float64{2, 1, 1, 1, 1, 0}),
		BUb: []float64{10, 8, 4},
	}

	pivots := 0
	res, _ := simplex.Solve(p, simplex.WithCallback(func(it simplex.Iteration) {
		if !it.Complete {
			pivots++
		}
	}))

	fmt.Printf("observed matches reported: %v\n", pivots == res.NIter)
	// Output:
	// observed matches reported: true
}

// ExampleWithRawOptions drives the solver from a loosely typed option map;
// unknown keys become warnings instead of failures.
func ExampleWithRawOptions() {
	p := simplex.Problem{
		C:   []float64{-3, -2},
		AUb: mat.NewDense(3, 2, []float64{2, 1, 1, 1, 1, 0}),
		BUb: []float64{10, 8, 4},
	}

	res, _ := simplex.Solve(p, simplex.WithRawOptions(map[string]any{
		"maxiter": 500,
		"spam":    true,
	}))

	fmt.Println(res.Message)
	fmt.Println(res.Warnings[0])
	// Output:
	// Optimization terminated successfully.
	// unrecognized option "spam" ignored
}
