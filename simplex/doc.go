// SPDX-License-Identifier: MIT

// Package simplex solves linear programs with the classic two-phase
// tableau simplex method.
//
// 🚀 What is the simplex method?
//
//	A linear program asks for the cheapest point of a linear objective
//	inside a polyhedron of linear constraints. Simplex walks the vertices
//	of that polyhedron, each pivot moving to an adjacent vertex with a
//	better objective, until no improving direction remains. It powers:
//	  • Resource allocation & production planning
//	  • Network flow, routing and scheduling
//	  • Diet / blending problems
//	  • LP relaxations inside integer-programming solvers
//
// ✨ Key features:
//   - general problems: equalities, inequalities, per-variable bounds
//     (finite, half-open or fully free)
//   - static presolve: zero rows/columns and singleton rows resolve
//     without a single pivot
//   - two phases: artificial-variable feasibility search, then true
//     optimization from the feasible basis
//   - four terminal verdicts: optimal, iteration limit, infeasible,
//     unbounded — all reported in Result.Status, never as errors
//   - per-pivot observation via WithCallback, progress logging via
//     WithDisplay / WithLogger (log/slog)
//   - string-keyed configuration bridge via WithRawOptions; unknown keys
//     degrade to Result.Warnings
//
// ⚙️ Usage:
//
//	import (
//	  "gonum.org/v1/gonum/mat"
//
//	  "github.com/katalvlaran/linprog/simplex"
//	)
//
//	p := simplex.Problem{
//	  C:   []float64{-3, -2},
//	  AUb: mat.NewDense(3, 2, []float64{2, 1, 1, 1, 1, 0}),
//	  BUb: []float64{10, 8, 4},
//	}
//	res, err := simplex.Solve(p, simplex.WithMaxIter(5000))
//	// res.Fun == -18, res.X == [2 6]
//
// Performance:
//
//   - Per pivot:  O(rows · columns) dense Gauss-Jordan elimination
//   - Pivots:     bounded by WithMaxIter (default 1000); the classic
//     most-negative entering rule has no anti-cycling guarantee, and the
//     cap is the deliberate backstop
//
// See example_test.go and the runnable programs under examples/ for
// complete walkthroughs.
package simplex
