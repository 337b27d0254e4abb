// SPDX-License-Identifier: MIT

// Package simplex: translation from terminal tableau back to caller space.
// The translator composes three layers of bookkeeping:
//
//	reduced standard solution  (engine basis/RHS, post-presolve columns)
//	→ full standard solution   (presolve kept-column map + fixed values)
//	→ original variables       (per-variable transform inversion)
//
// The objective is recomputed as C·x against the caller's original cost
// vector rather than read off the tableau objective row, so accumulated
// pivot round-off never leaks into Result.Fun.

package simplex

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Human-readable summaries, one per terminal status.
const (
	msgOptimal        = "Optimization terminated successfully."
	msgIterationLimit = "Iteration limit reached."
	msgInfeasible     = "Optimization failed. Unable to find a feasible starting point."
	msgUnbounded      = "Optimization failed. The problem appears to be unbounded."
)

// statusMessage maps a Status to its canonical message.
func statusMessage(s Status) string {
	switch s {
	case StatusOptimal:
		return msgOptimal
	case StatusIterationLimit:
		return msgIterationLimit
	case StatusInfeasible:
		return msgInfeasible
	case StatusUnbounded:
		return msgUnbounded
	default:
		return "unknown status"
	}
}

// translator undoes the standard-form construction and presolve reductions.
type translator struct {
	transform []colTransform
	rep       *presolveReport
	fullCols  int // standard-form column count before presolve
}

// newTranslator captures the restoration bookkeeping for one solve.
func newTranslator(transform []colTransform, rep *presolveReport, fullCols int) *translator {
	return &translator{transform: transform, rep: rep, fullCols: fullCols}
}

// expand lifts a reduced (post-presolve) standard solution to the full
// standard column space, merging in presolve-fixed values. Columns dropped
// with no recorded value sit at zero; the unbounded column, when present,
// rides to +Inf.
func (tr *translator) expand(reduced []float64) []float64 {
	full := make([]float64, tr.fullCols)
	for j, v := range reduced {
		full[tr.rep.keptCols[j]] = v
	}
	for col, v := range tr.rep.fixed {
		full[col] = v
	}
	if tr.rep.unboundedCol >= 0 {
		full[tr.rep.unboundedCol] = math.Inf(1)
	}

	return full
}

// restore inverts each variable's transform to produce the original-space
// solution vector.
func (tr *translator) restore(full []float64) []float64 {
	x := make([]float64, len(tr.transform))
	for i, ct := range tr.transform {
		switch ct.kind {
		case transformShift:
			x[i] = full[ct.col] + ct.offset
		case transformNegateShift:
			x[i] = ct.offset - full[ct.col]
		case transformSplit:
			x[i] = full[ct.col] - full[ct.negCol]
		default:
			x[i] = full[ct.col]
		}
	}

	return x
}

// toOriginal is the composed reduced→original mapping used by the engine's
// observation hooks.
func (tr *translator) toOriginal(reduced []float64) []float64 {
	return tr.restore(tr.expand(reduced))
}

// objective computes C·x, treating any infinite component as an unbounded
// descent (the only way ±Inf enters X is the unbounded verdict).
func objective(c, x []float64) float64 {
	for _, v := range x {
		if math.IsInf(v, 0) {
			return math.Inf(-1)
		}
	}

	return floats.Dot(c, x)
}

// buildResult packages a terminal verdict.
func buildResult(p Problem, status Status, x []float64, nit int, warnings []string) Result {
	return Result{
		Success:  status == StatusOptimal,
		Status:   status,
		X:        x,
		Fun:      objective(p.C, x),
		NIter:    nit,
		Message:  statusMessage(status),
		Warnings: warnings,
	}
}
