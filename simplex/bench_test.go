// SPDX-License-Identifier: MIT

package simplex_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/simplex"
)

// transportProblem builds an m×n assignment-style program: m·n variables,
// m row-sum and n column-sum constraints, seeded random negative costs.
// The feasible region is the standard transportation polytope, so every
// generated instance has a bounded optimum.
func transportProblem(m, n int, seed int64) simplex.Problem {
	rng := rand.New(rand.NewSource(seed))

	vars := m * n
	c := make([]float64, vars)
	for i := range c {
		c[i] = -rng.ExpFloat64()
	}

	a := mat.NewDense(m+n, vars, nil)
	b := make([]float64, m+n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, i*n+j, 1)
		}
		b[i] = float64(n) / float64(m)
	}
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			a.Set(m+j, i*n+j, 1)
		}
		b[m+j] = 1
	}

	return simplex.Problem{C: c, AUb: a, BUb: b}
}

// TestSolve_GeneratedTransport solves a 10×10 generated instance and checks
// the reported plan is actually feasible: every constraint row holds and no
// component dips below zero.
func TestSolve_GeneratedTransport(t *testing.T) {
	p := transportProblem(10, 10, 42)

	res, err := simplex.Solve(p)
	require.NoError(t, err)
	require.True(t, res.Success, "transportation polytopes always admit an optimum")

	rows, _ := p.AUb.Dims()
	for r := 0; r < rows; r++ {
		var sum float64
		for j := range res.X {
			sum += p.AUb.At(r, j) * res.X[j]
		}
		assert.LessOrEqual(t, sum, p.BUb[r]+solveTol, "row %d violated", r)
	}
	for j, v := range res.X {
		assert.GreaterOrEqual(t, v, -solveTol, "component %d negative", j)
	}
}

// benchmarkSolve runs Solve on one generated instance per configuration.
// The timer excludes problem construction.
func benchmarkSolve(b *testing.B, m, n int, opts ...simplex.Option) {
	p := transportProblem(m, n, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := simplex.Solve(p, opts...)
		if err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
		if res.Status != simplex.StatusOptimal {
			b.Fatalf("unexpected status %v", res.Status)
		}
	}
}

// BenchmarkSolve_Small benchmarks a 4×4 transportation program (16 vars).
func BenchmarkSolve_Small(b *testing.B) {
	benchmarkSolve(b, 4, 4)
}

// BenchmarkSolve_Medium benchmarks an 8×8 transportation program (64 vars).
func BenchmarkSolve_Medium(b *testing.B) {
	benchmarkSolve(b, 8, 8)
}

// BenchmarkSolve_MediumSparse benchmarks the same instance with the
// sparsity-aware elimination walk.
func BenchmarkSolve_MediumSparse(b *testing.B) {
	benchmarkSolve(b, 8, 8, simplex.WithSparsePivoting())
}

// BenchmarkSolve_NoPresolve benchmarks the pure iterative path.
func BenchmarkSolve_NoPresolve(b *testing.B) {
	benchmarkSolve(b, 8, 8, simplex.WithoutPresolve())
}
