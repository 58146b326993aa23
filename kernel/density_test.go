// SPDX-License-Identifier: MIT
// Package kernel_test - Gauss / Logistic densities, 1-D and N-D.
//
// N-D Gaussians are checked against gonum's distmv.Normal with Σ = H for
// dimensions where the diagonal-cycling determinant is exact.

package kernel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvkde/kernel"
	"github.com/katalvlaran/lvkde/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distmv"
)

func TestGauss1D(t *testing.T) {
	g, err := kernel.NewGauss1D(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), g.ProbabilityAt(0), tol)
	assert.InDelta(t, 0.3989423, g.ProbabilityAt(0), 1e-7)

	// The exponent is linear in (x-μ)/h: p(μ+2h) = exp(-1)/(h√(2π)).
	g, err = kernel.NewGauss1D(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-1)/(2*math.Sqrt(2*math.Pi)), g.ProbabilityAt(5), tol)
	assert.Greater(t, g.ProbabilityAt(-3), g.ProbabilityAt(1), "density grows to the left of μ")
}

func TestLogistic1D(t *testing.T) {
	l, err := kernel.NewLogistic1D(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, l.ProbabilityAt(0), tol)

	l, err = kernel.NewLogistic1D(0.5, 2)
	require.NoError(t, err)
	z := (3 - 2) / 0.5
	assert.InDelta(t, 1/(0.5*(2+math.Exp(z)+math.Exp(-z))), l.ProbabilityAt(3), tol)
	assert.InDelta(t, l.ProbabilityAt(1), l.ProbabilityAt(3), tol, "symmetric around μ")

	// Far tails underflow to 0 rather than NaN.
	assert.Equal(t, 0.0, l.ProbabilityAt(1e6))
}

func TestScalarValidation(t *testing.T) {
	for _, h := range []float64{0, -1, math.Inf(1), nan()} {
		_, err := kernel.NewScalar(h, 0)
		require.ErrorIs(t, err, kernel.ErrInvalidSmoothing, "h=%v", h)
		_, err = kernel.NewGauss1D(h, 0)
		require.ErrorIs(t, err, kernel.ErrInvalidSmoothing)
		_, err = kernel.NewLogistic1D(h, 0)
		require.ErrorIs(t, err, kernel.ErrInvalidSmoothing)
	}
	_, err := kernel.NewScalar(1, math.Inf(-1))
	require.ErrorIs(t, err, kernel.ErrInvalidMean)

	s, err := kernel.NewScalar(2, 3)
	require.NoError(t, err)
	require.Equal(t, 0.0, s.ProbabilityAt(3))
	require.ErrorIs(t, s.SetSmoothing(0), kernel.ErrInvalidSmoothing)
	require.ErrorIs(t, s.SetMean(nan()), kernel.ErrInvalidMean)
	require.Equal(t, 2.0, s.Smoothing())
	require.Equal(t, 3.0, s.Mean())

	require.NoError(t, s.SetSmoothing(0.5))
	require.NoError(t, s.SetMean(-1))
	require.Equal(t, 0.5, s.Smoothing())
	require.Equal(t, -1.0, s.Mean())
}

// TestGaussAgainstDistmv compares the N-D Gaussian with gonum for n ≤ 3.
func TestGaussAgainstDistmv(t *testing.T) {
	tests := []struct {
		name   string
		center matrix.Vector
		base   [][]float64
		points []matrix.Vector
	}{
		{
			name:   "1-D",
			center: matrix.VectorOf(0.5),
			base:   [][]float64{{1.5}},
			points: []matrix.Vector{{0.5}, {2}, {-3}},
		},
		{
			name:   "2-D correlated",
			center: matrix.VectorOf(1, -1),
			base:   [][]float64{{1, 0}, {0.5, 2}},
			points: []matrix.Vector{{1, -1}, {0, 0}, {2.5, -4}},
		},
		{
			name:   "3-D textbook",
			center: matrix.VectorOf(0, 0, 0),
			base:   [][]float64{{2, 0, 0}, {6, 1, 0}, {-8, 5, 3}},
			points: []matrix.Vector{{0, 0, 0}, {1, 2, 3}, {-0.5, 0.1, 0.2}},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := kernel.NewGauss(len(tc.center), kernel.WithCenter(tc.center), kernel.WithBase(fromRows(t, tc.base)))
			require.NoError(t, err)

			oracle, ok := distmv.NewNormal(tc.center, symDense(t, g.Smoothing()), nil)
			require.True(t, ok)

			for _, x := range tc.points {
				got, err := g.ProbabilityAt(x)
				require.NoError(t, err)
				want := oracle.Prob(x)
				assert.InDelta(t, want, got, 1e-9*math.Max(1, want), "x=%v", x)
			}
		})
	}
}

// TestGaussWrapDeterminant pins n=4 behavior: the density uses the
// diagonal-cycling determinant, which here is 2 while det(H) is 1.
func TestGaussWrapDeterminant(t *testing.T) {
	base := fromRows(t, [][]float64{{1, 0, 0, 0}, {1, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}})
	g, err := kernel.NewGauss(4, kernel.WithBase(base))
	require.NoError(t, err)

	det, err := matrix.Determinant(g.Smoothing())
	require.NoError(t, err)
	require.Equal(t, 2.0, det)

	x := matrix.VectorOf(0.3, -0.2, 0.1, 0.4)
	got, err := g.ProbabilityAt(x)
	require.NoError(t, err)

	oracle, ok := distmv.NewNormal(make([]float64, 4), symDense(t, g.Smoothing()), nil)
	require.True(t, ok)
	assert.InDelta(t, oracle.Prob(x)/math.Sqrt2, got, 1e-12)

	// Diagonal smoothing is unaffected by the rule.
	d, err := kernel.NewGauss(4, kernel.WithBase(fromRows(t,
		[][]float64{{1, 0, 0, 0}, {0, 2, 0, 0}, {0, 0, 3, 0}, {0, 0, 0, 4}})))
	require.NoError(t, err)
	oracle, ok = distmv.NewNormal(make([]float64, 4), symDense(t, d.Smoothing()), nil)
	require.True(t, ok)
	got, err = d.ProbabilityAt(x)
	require.NoError(t, err)
	assert.InDelta(t, oracle.Prob(x), got, 1e-12)
}

func TestGaussZeroDimensional(t *testing.T) {
	g, err := kernel.NewGauss(0)
	require.NoError(t, err)
	p, err := g.ProbabilityAt(nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	l, err := kernel.NewLogistic(0)
	require.NoError(t, err)
	p, err = l.ProbabilityAt(matrix.Vector{})
	require.NoError(t, err)
	assert.Equal(t, 0.25, p)
}

// TestDensityFallback checks that a singular H gives density 0, not an error.
func TestDensityFallback(t *testing.T) {
	tests := []struct {
		name string
		row  matrix.Vector // written with SetKernelBaseRow on a 2-D kernel
	}{
		{"zero last row", matrix.VectorOf(0, 0)},  // not positive definite
		{"zero first row", matrix.VectorOf(0)},    // singular pivot
		{"collinear rows", matrix.VectorOf(1, 0)}, // H rank 1
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := kernel.NewGauss(2)
			require.NoError(t, err)
			require.NoError(t, g.SetKernelBaseRow(tc.row))

			p, err := g.ProbabilityAt(matrix.VectorOf(0.1, 0.2))
			require.NoError(t, err)
			assert.Equal(t, 0.0, p)

			l, err := kernel.NewLogistic(2, kernel.WithBase(g.Base()))
			require.NoError(t, err)
			p, err = l.ProbabilityAt(matrix.VectorOf(0.1, 0.2))
			require.NoError(t, err)
			assert.Equal(t, 0.0, p)
		})
	}
}

// TestDensityNonFinite checks that NaN inputs reaching the quadratic form
// or the factorization yield density 0 instead of NaN.
func TestDensityNonFinite(t *testing.T) {
	g, err := kernel.NewGauss(2)
	require.NoError(t, err)
	l, err := kernel.NewLogistic(2)
	require.NoError(t, err)

	for _, x := range []matrix.Vector{
		matrix.VectorOf(nan(), 0),
		matrix.VectorOf(0, nan()),
		matrix.VectorOf(math.Inf(1), 0),
	} {
		p, err := g.ProbabilityAt(x)
		require.NoError(t, err)
		assert.Equal(t, 0.0, p, "gauss at %v", x)

		p, err = l.ProbabilityAt(x)
		require.NoError(t, err)
		assert.Equal(t, 0.0, p, "logistic at %v", x)
	}

	// A NaN base entry makes every entry of H that touches it NaN.
	require.NoError(t, g.SetKernelBaseRow(matrix.VectorOf(nan())))
	p, err := g.ProbabilityAt(matrix.VectorOf(0.1, 0.2))
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)
	assert.False(t, math.IsNaN(p))
}

func TestDensityDimensionMismatch(t *testing.T) {
	g, err := kernel.NewGauss(2)
	require.NoError(t, err)
	_, err = g.ProbabilityAt(matrix.VectorOf(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	l, err := kernel.NewLogistic(3)
	require.NoError(t, err)
	_, err = l.ProbabilityAt(matrix.VectorOf(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLogisticND(t *testing.T) {
	base := fromRows(t, [][]float64{{1, 0}, {0.5, 2}})
	center := matrix.VectorOf(1, -1)
	l, err := kernel.NewLogistic(2, kernel.WithCenter(center), kernel.WithBase(base))
	require.NoError(t, err)

	h := l.Smoothing()
	det, err := matrix.Determinant(h)
	require.NoError(t, err)

	// At the center C = 0.
	p, err := l.ProbabilityAt(center)
	require.NoError(t, err)
	assert.InDelta(t, 1/(4*math.Sqrt(det)), p, tol)

	// Off-center, C = dᵀ·H⁻¹·d computed through Solve.
	x := matrix.VectorOf(1.5, 0)
	d, err := x.Sub(center)
	require.NoError(t, err)
	hinvD, err := matrix.Solve(h, d)
	require.NoError(t, err)
	c, err := d.Dot(hinvD)
	require.NoError(t, err)

	p, err = l.ProbabilityAt(x)
	require.NoError(t, err)
	assert.InDelta(t, 1/(math.Sqrt(det)*(2+math.Exp(c)+math.Exp(-c))), p, tol)
}

// TestDensityFollowsEdits checks that evaluation sees dimension edits.
func TestDensityFollowsEdits(t *testing.T) {
	g, err := kernel.NewGauss(1)
	require.NoError(t, err)

	g.AddDimension()
	p, err := g.ProbabilityAt(matrix.VectorOf(0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 1/(2*math.Pi), p, tol)

	require.NoError(t, g.RemoveDimensionAt(0))
	p, err = g.ProbabilityAt(matrix.VectorOf(0))
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), p, tol)
}
