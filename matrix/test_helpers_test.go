// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the engine.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvkde/matrix"
	"gonum.org/v1/gonum/mat"
)

// Shared tolerance for factorization round-trips.
const tol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise (or via AllClose).
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// FromRows BUILDS a *Dense from a 2D literal or fails the test.
func FromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	vs := make([]matrix.Vector, len(rows))
	for i, r := range rows {
		vs[i] = matrix.VectorOf(r...)
	}
	m, err := matrix.NewDenseFromRows(vs)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Determinism: fixed per seed.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// RandSPD BUILDS a well-conditioned SPD matrix B·Bᵀ + n·I from a seed.
// Implementation:
//   - Stage 1: B = RandFilledDense(n, n, seed).
//   - Stage 2: Gram(B) then add n on the diagonal (diagonal dominance).
func RandSPD(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	g, err := matrix.Gram(RandFilledDense(t, n, n, seed))
	if err != nil {
		t.Fatalf("Gram: %v", err)
	}
	for i := 0; i < n; i++ {
		if err = g.Set(i, i, MustAt(t, g, i, i)+float64(n)); err != nil {
			t.Fatalf("Set(%d,%d): %v", i, i, err)
		}
	}

	return g
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
// Notes:
//   - Use only for integer-like or carefully crafted small matrices.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS AllClose(a,b) under (rtol, atol).
func CompareClose(t testing.TB, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ beyond rtol=%g atol=%g:\n%v\nvs\n%v", rtol, atol, a, b)
	}
}

// ToGonum COPIES a Matrix into a gonum *mat.Dense (oracle side of a comparison).
func ToGonum(t testing.TB, m matrix.Matrix) *mat.Dense {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			data = append(data, MustAt(t, m, i, j))
		}
	}

	return mat.NewDense(r, c, data)
}

// FromGonum COPIES a gonum matrix back into a *Dense.
func FromGonum(t testing.TB, g mat.Matrix) *matrix.Dense {
	t.Helper()
	r, c := g.Dims()
	m := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := m.Set(i, j, g.At(i, j)); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}
