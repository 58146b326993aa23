// SPDX-License-Identifier: MIT
package kernel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvkde/kernel"
	"github.com/katalvlaran/lvkde/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

// fromRows BUILDS a *Dense from a 2D literal or fails the test.
func fromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	vs := make([]matrix.Vector, len(rows))
	for i, r := range rows {
		vs[i] = matrix.VectorOf(r...)
	}
	m, err := matrix.NewDenseFromRows(vs)
	require.NoError(t, err)

	return m
}

// requireConsistent ASSERTS the dimensional invariants of a kernel:
// len(μ) == n, L is n×n and H == L·Lᵀ exactly.
func requireConsistent(t testing.TB, k *kernel.Kernel) {
	t.Helper()
	n := k.Dimensions()
	require.Len(t, k.Center(), n)

	base := k.Base()
	require.Equal(t, n, base.Rows(), "base rows")
	require.Equal(t, n, base.Cols(), "base cols")

	h := k.Smoothing()
	require.Equal(t, n, h.Rows(), "H rows")
	require.Equal(t, n, h.Cols(), "H cols")

	want, err := matrix.Gram(base)
	require.NoError(t, err)
	ok, err := matrix.AllClose(h, want, 0, 0)
	require.NoError(t, err)
	require.Truef(t, ok, "H != L·Lᵀ\nH:\n%v\nL·Lᵀ:\n%v", h, want)
}

// requireRows ASSERTS m equals the 2D literal exactly.
func requireRows(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols())
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equalf(t, want[i][j], v, "m[%d,%d]", i, j)
		}
	}
}

// symDense COPIES a square Matrix into a gonum *mat.SymDense (upper triangle).
func symDense(t testing.TB, m matrix.Matrix) *mat.SymDense {
	t.Helper()
	n := m.Rows()
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			s.SetSym(i, j, v)
		}
	}

	return s
}

func nan() float64 { return math.NaN() }
