// SPDX-License-Identifier: MIT
// Package kernel - Gaussian kernels.
//
//	1-D:  p(x) = exp(-(x-μ)/(2h)) / (h·√(2π))
//	N-D:  p(x) = exp(-C/2) / √((2π)^k · det(H)),  C = (x-μ)ᵀ·H⁻¹·(x-μ)
//
// The 1-D exponent is linear in (x-μ)/h, not squared, so Gauss1D is not the
// normal PDF in x and grows without bound for x → -∞.
// The N-D form returns 0 (no error) when H is not invertible.

package kernel

import (
	"math"

	"github.com/katalvlaran/lvkde/matrix"
)

const opGaussProbabilityAt = "Gauss.ProbabilityAt"

var (
	_ Density       = (*Gauss)(nil)
	_ ScalarDensity = (*Gauss1D)(nil)
)

// Gauss1D is the 1-D Gaussian kernel.
type Gauss1D struct {
	*Scalar
}

// NewGauss1D builds a 1-D Gaussian with smoothing h and mean μ.
// Errors as NewScalar.
func NewGauss1D(smoothing, mean float64) (*Gauss1D, error) {
	s, err := NewScalar(smoothing, mean)
	if err != nil {
		return nil, err
	}

	return &Gauss1D{Scalar: s}, nil
}

// ProbabilityAt evaluates the 1-D Gaussian at x (unsquared exponent, see above).
func (g *Gauss1D) ProbabilityAt(x float64) float64 {
	return math.Exp(-0.5*g.standardized(x)) / (g.h * math.Sqrt(2*math.Pi))
}

// Gauss is the N-D Gaussian kernel. It embeds *Kernel, so every dimension
// edit (AddDimension, RemoveDimensionAt, SetKernelBaseRow, ...) is available
// and keeps H = L·Lᵀ current.
type Gauss struct {
	*Kernel
}

// NewGauss builds an N-D Gaussian; options and errors as New.
func NewGauss(dims int, opts ...Option) (*Gauss, error) {
	k, err := New(dims, opts...)
	if err != nil {
		return nil, err
	}

	return &Gauss{Kernel: k}, nil
}

// ProbabilityAt evaluates the N-D Gaussian at x.
// Returns 0 with a nil error when H is not positive definite.
// Errors: matrix.ErrDimensionMismatch if len(x) != Dimensions().
//
// Complexity: O(k³) per call (H⁻¹ is recomputed each time).
func (g *Gauss) ProbabilityAt(x matrix.Vector) (float64, error) {
	f, ok, err := g.evaluate(x, opGaussProbabilityAt)
	if err != nil || !ok {
		return 0, err
	}
	norm := math.Sqrt(math.Pow(2*math.Pi, float64(f.k)) * f.det)

	return math.Exp(-f.c/2) / norm, nil
}
