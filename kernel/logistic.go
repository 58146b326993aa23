// SPDX-License-Identifier: MIT
// Package kernel - logistic kernels.
//
//	1-D:  p(x) = 1 / (h · (2 + e^z + e^-z)),  z = (x-μ)/h
//	N-D:  p(x) = 1 / (√det(H) · (2 + e^C + e^-C)),  C = (x-μ)ᵀ·H⁻¹·(x-μ)
//
// The N-D form feeds the quadratic form C (not its square root) into the
// exponentials. It is the shape used by the estimators built on this package
// and is not re-normalized.

package kernel

import (
	"math"

	"github.com/katalvlaran/lvkde/matrix"
)

const opLogisticProbabilityAt = "Logistic.ProbabilityAt"

var (
	_ Density       = (*Logistic)(nil)
	_ ScalarDensity = (*Logistic1D)(nil)
)

// Logistic1D is the 1-D logistic kernel.
type Logistic1D struct {
	*Scalar
}

// NewLogistic1D builds a 1-D logistic kernel with smoothing h and mean μ.
func NewLogistic1D(smoothing, mean float64) (*Logistic1D, error) {
	s, err := NewScalar(smoothing, mean)
	if err != nil {
		return nil, err
	}

	return &Logistic1D{Scalar: s}, nil
}

// ProbabilityAt evaluates the 1-D logistic kernel at x.
// Far tails underflow to 0 instead of producing NaN.
func (l *Logistic1D) ProbabilityAt(x float64) float64 {
	z := l.standardized(x)

	return 1 / (l.h * (2 + math.Exp(z) + math.Exp(-z)))
}

// Logistic is the N-D logistic kernel; see Gauss for the embedding contract.
type Logistic struct {
	*Kernel
}

// NewLogistic builds an N-D logistic kernel; options and errors as New.
func NewLogistic(dims int, opts ...Option) (*Logistic, error) {
	k, err := New(dims, opts...)
	if err != nil {
		return nil, err
	}

	return &Logistic{Kernel: k}, nil
}

// ProbabilityAt evaluates the N-D logistic kernel at x.
// Returns 0 with a nil error when H is not positive definite.
// Errors: matrix.ErrDimensionMismatch if len(x) != Dimensions().
func (l *Logistic) ProbabilityAt(x matrix.Vector) (float64, error) {
	f, ok, err := l.evaluate(x, opLogisticProbabilityAt)
	if err != nil || !ok {
		return 0, err
	}

	return 1 / (math.Sqrt(f.det) * (2 + math.Exp(f.c) + math.Exp(-f.c))), nil
}
