// SPDX-License-Identifier: MIT

// Package simplex: the Solve entry point.
//
// Solve wires the pipeline together:
//
//	validate → standard form → presolve → tableau → two-phase engine →
//	result translation
//
// Errors are reserved for malformed input (shape mismatches, invalid
// bounds, missing objective). Everything the solver discovers about the
// problem itself — optimality, infeasibility, unboundedness, the iteration
// cap — is a reportable verdict carried in Result.Status, never an error.

package simplex

import "log/slog"

// Solve minimizes C·x subject to the constraints in p.
//
//	res, err := simplex.Solve(p, simplex.WithMaxIter(5000))
//
// The call is self-contained and safe for concurrent use: every matrix and
// slice in p is read but never written, and all working storage is owned by
// this invocation.
func Solve(p Problem, opts ...Option) (Result, error) {
	opt := gatherOptions(opts...)

	// 1) Validation: reject malformed input before any transformation.
	if err := validateProblem(p); err != nil {
		return Result{}, err
	}

	// 2) Standard form: substitutions, bound rows, slacks, b ≥ 0.
	sf := newStandardForm(p, resolveBounds(p))
	fullCols := sf.numCols()

	// 3) Presolve: static reductions, possibly a terminal verdict.
	rep := newIdentityReport(fullCols)
	if opt.presolve {
		rep = presolve(sf, opt.tol)
	}
	tr := newTranslator(sf.transform, rep, fullCols)

	switch rep.verdict {
	case verdictInfeasible:
		return presolveResult(p, opt, tr, sf, StatusInfeasible), nil
	case verdictUnbounded:
		return presolveResult(p, opt, tr, sf, StatusUnbounded), nil
	}

	// 4) Two-phase iteration on the (reduced) tableau.
	tb := newTableau(sf)
	eng := &engine{tb: tb, opt: opt, toOriginal: tr.toOriginal}
	st, nit := eng.run()

	var status Status
	switch st {
	case stateOptimal:
		status = StatusOptimal
	case stateInfeasible:
		status = StatusInfeasible
	case stateUnbounded:
		status = StatusUnbounded
	default:
		status = StatusIterationLimit
	}

	// 5) Translate back to original space and fire the terminal observation.
	res := buildResult(p, status, tr.toOriginal(tb.solution()), nit, opt.warnings)
	eng.notify(-1, -1, true)

	return res, nil
}

// presolveResult packages a zero-iteration verdict reached without building a
// tableau, and fires the single terminal observation record.
func presolveResult(p Problem, opt options, tr *translator, sf *standardForm, status Status) Result {
	x := tr.toOriginal(make([]float64, sf.numCols()))
	res := buildResult(p, status, x, 0, opt.warnings)

	if opt.disp {
		opt.logger.Info("presolve verdict",
			slog.String("status", status.String()),
			slog.String("message", res.Message),
		)
	}
	if opt.callback != nil {
		// Fresh X so the observer cannot alias the Result vector. No tableau
		// was ever assembled, so the snapshot field stays nil.
		opt.callback(Iteration{
			X:        tr.toOriginal(make([]float64, sf.numCols())),
			Phase:    1,
			NIter:    0,
			PivotRow: -1,
			PivotCol: -1,
			Complete: true,
		})
	}

	return res
}
