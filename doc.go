// Package linprog is an in-memory toolkit for modeling and solving
// linear programs — minimize a linear objective over linear equality,
// inequality and box-bound constraints.
//
// 🚀 What is linprog?
//
//	A pure-Go library built around a two-phase tableau simplex solver:
//		• Problem modeling: cost vector, A_eq·x = b_eq, A_ub·x ≤ b_ub, per-variable bounds
//		• Standard-form transformation: slacks, shifts, negations, free-variable splitting
//		• Presolve: zero rows/columns and singleton rows resolved before any pivot
//		• Two phases: artificial-variable feasibility search, then optimization
//		• First-class verdicts: optimal, infeasible, unbounded, iteration limit
//		• Observation hooks: per-pivot callbacks and structured iteration logging
//
// ✨ Why choose linprog?
//
//   - Deterministic – fixed pivot tie-breaks, no global state, explicit seeds in generators
//   - Safe – caller arrays are never mutated; every solve owns its tableau
//   - Honest numerics – configurable tolerance, objective recomputed from the
//     original cost vector rather than read off the drifting tableau
//   - Concurrent-friendly – independent Solve calls share nothing
//
// Everything lives under one subpackage:
//
//	simplex/ — problem types, options, the two-phase dense simplex engine
//
// Quick sketch:
//
//	minimize  -3x - 2y
//	s.t.      2x +  y ≤ 10
//	           x +  y ≤ 8
//	           x      ≤ 4
//	           x, y   ≥ 0
//
//	res, err := simplex.Solve(simplex.Problem{
//		C:   []float64{-3, -2},
//		AUb: mat.NewDense(3, 2, []float64{2, 1, 1, 1, 1, 0}),
//		BUb: []float64{10, 8, 4},
//	})
//	// res.Status == simplex.StatusOptimal, res.Fun == -18, res.X == [2 6]
//
// Dive into examples/ for production-planning, network-routing,
// feed-blending and magic-square walkthroughs.
package linprog
