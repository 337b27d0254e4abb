// SPDX-License-Identifier: MIT

// Package simplex: functional configuration for Solve.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults,
//   - WithRawOptions, the bridge from string-keyed option maps to typed
//     options, which downgrades unknown keys to warnings instead of failing.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Forward compatible: unrecognized raw options degrade to diagnostics.

package simplex

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in gatherOptions.
const (
	// DefaultMaxIter caps the total pivot count across both phases. Reaching
	// it yields StatusIterationLimit, a reportable verdict rather than an
	// error.
	DefaultMaxIter = 1000

	// DefaultTolerance is the numeric threshold below which reduced costs,
	// pivot candidates and the phase-1 residual are treated as zero.
	DefaultTolerance = 1e-9

	// DefaultPresolve enables the static reduction pass (zero rows/columns,
	// singleton rows) before the iterative phases.
	DefaultPresolve = true

	// DefaultSparsePivoting selects the elimination walk that skips
	// near-zero rows. Results are identical; only the traversal differs.
	DefaultSparsePivoting = false
)

// Recognized keys for WithRawOptions, kept aligned with the classic
// string-keyed configuration surface.
const (
	rawKeyMaxIter   = "maxiter"
	rawKeyPresolve  = "presolve"
	rawKeyDisp      = "disp"
	rawKeySparse    = "use_sparse_factorization"
	rawKeyTolerance = "tolerance"
)

// Internal panic messages (no magic strings).
const (
	panicMaxIterInvalid   = "simplex: WithMaxIter: limit must be > 0"
	panicToleranceInvalid = "simplex: WithTolerance: tol must be finite, non-negative"
	panicNilCallback      = "simplex: WithCallback: callback must be non-nil"
	panicNilLogger        = "simplex: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Unexported to prevent external mutation; Solve accepts ...Option and
// resolves them via gatherOptions.
type options struct {
	maxIter  int
	tol      float64
	presolve bool
	sparse   bool

	disp   bool
	logger *slog.Logger

	callback Callback

	// warnings accumulated while resolving options (unknown raw keys,
	// ill-typed raw values); copied into Result.Warnings.
	warnings []string
}

// WithMaxIter caps the total number of simplex pivots. Panics if limit ≤ 0.
func WithMaxIter(limit int) Option {
	if limit <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *options) { o.maxIter = limit }
}

// WithTolerance sets the zero threshold used by pricing, ratio tests and the
// phase-1 feasibility check. Panics on NaN, ±Inf or negative values.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithoutPresolve disables the static reduction pass; every problem goes
// straight to phase 1. Mostly useful for testing the iterative path.
func WithoutPresolve() Option {
	return func(o *options) { o.presolve = false }
}

// WithSparsePivoting selects the elimination walk that skips rows whose
// pivot-column entry is already within tolerance of zero. Cheaper on tall
// sparse tableaus, identical results on dense ones.
func WithSparsePivoting() Option {
	return func(o *options) { o.sparse = true }
}

// WithDisplay enables per-iteration progress records on the configured
// logger (slog.Default() unless WithLogger was applied).
func WithDisplay() Option {
	return func(o *options) { o.disp = true }
}

// WithLogger routes iteration display to the given structured logger.
// Implies nothing about verbosity: records are emitted only under
// WithDisplay. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithCallback registers an observer invoked synchronously after each pivot
// and once at termination. Panics on nil.
func WithCallback(cb Callback) Option {
	if cb == nil {
		panic(panicNilCallback)
	}

	return func(o *options) { o.callback = cb }
}

// WithRawOptions applies a string-keyed option map, the shape configuration
// dictionaries traditionally arrive in. Recognized keys:
//
//	"maxiter"                  int     — same as WithMaxIter
//	"presolve"                 bool    — false is WithoutPresolve
//	"disp"                     bool    — same as WithDisplay
//	"use_sparse_factorization" bool    — same as WithSparsePivoting
//	"tolerance"                float64 — same as WithTolerance
//
// Unknown keys and ill-typed values are collected into Result.Warnings and
// never abort the solve. Keys are visited in sorted order so the warning
// list is deterministic.
func WithRawOptions(raw map[string]any) Option {
	return func(o *options) {
		keys := make([]string, 0, len(raw))
		for k := range raw {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			v := raw[k]
			switch k {
			case rawKeyMaxIter:
				if n, ok := toInt(v); ok && n > 0 {
					o.maxIter = n
				} else {
					o.warnings = append(o.warnings, rawValueWarning(k, v))
				}
			case rawKeyPresolve:
				if b, ok := v.(bool); ok {
					o.presolve = b
				} else {
					o.warnings = append(o.warnings, rawValueWarning(k, v))
				}
			case rawKeyDisp:
				if b, ok := v.(bool); ok {
					o.disp = b
				} else {
					o.warnings = append(o.warnings, rawValueWarning(k, v))
				}
			case rawKeySparse:
				if b, ok := v.(bool); ok {
					o.sparse = b
				} else {
					o.warnings = append(o.warnings, rawValueWarning(k, v))
				}
			case rawKeyTolerance:
				if f, ok := toFloat(v); ok && !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0 {
					o.tol = f
				} else {
					o.warnings = append(o.warnings, rawValueWarning(k, v))
				}
			default:
				o.warnings = append(o.warnings,
					fmt.Sprintf("unrecognized option %q ignored", k))
			}
		}
	}
}

// rawValueWarning formats the diagnostic for a recognized key carrying an
// unusable value.
func rawValueWarning(key string, v any) string {
	return fmt.Sprintf("option %q: unusable value %v ignored", key, v)
}

// toInt accepts the integer shapes a loosely-typed map plausibly carries.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}

	return 0, false
}

// toFloat accepts numeric shapes convertible to float64.
func toFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	case int:
		return float64(f), true
	}

	return 0, false
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry used by Solve.
func gatherOptions(user ...Option) options {
	o := options{
		maxIter:  DefaultMaxIter,
		tol:      DefaultTolerance,
		presolve: DefaultPresolve,
		sparse:   DefaultSparsePivoting,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	if o.disp && o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
