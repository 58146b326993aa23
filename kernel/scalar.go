// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"
)

const (
	opNewScalar    = "NewScalar"
	opSetSmoothing = "SetSmoothing"
	opSetMean      = "SetMean"
)

// ScalarDensity is a 1-D density.
type ScalarDensity interface {
	ProbabilityAt(x float64) float64
}

// Scalar is the 1-D kernel state: smoothing h and mean μ.
// Its own ProbabilityAt is the neutral density 0; Gauss1D and Logistic1D
// embed it and override the evaluation.
type Scalar struct {
	h  float64
	mu float64
}

// NewScalar builds a 1-D kernel.
// Errors: ErrInvalidSmoothing unless smoothing is finite and > 0;
// ErrInvalidMean if mean is NaN or ±Inf.
func NewScalar(smoothing, mean float64) (*Scalar, error) {
	if err := validateSmoothing(smoothing); err != nil {
		return nil, kernelErrorf(opNewScalar, err)
	}
	if err := validateMean(mean); err != nil {
		return nil, kernelErrorf(opNewScalar, err)
	}

	return &Scalar{h: smoothing, mu: mean}, nil
}

func validateSmoothing(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return fmt.Errorf("h=%g: %w", h, ErrInvalidSmoothing)
	}

	return nil
}

func validateMean(mu float64) error {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return fmt.Errorf("mean=%g: %w", mu, ErrInvalidMean)
	}

	return nil
}

// Smoothing returns h.
func (s *Scalar) Smoothing() float64 { return s.h }

// Mean returns μ.
func (s *Scalar) Mean() float64 { return s.mu }

// SetSmoothing replaces h; invalid values leave the kernel unchanged.
func (s *Scalar) SetSmoothing(h float64) error {
	if err := validateSmoothing(h); err != nil {
		return kernelErrorf(opSetSmoothing, err)
	}
	s.h = h

	return nil
}

// SetMean replaces μ; invalid values leave the kernel unchanged.
func (s *Scalar) SetMean(mu float64) error {
	if err := validateMean(mu); err != nil {
		return kernelErrorf(opSetMean, err)
	}
	s.mu = mu

	return nil
}

// ProbabilityAt is the neutral 1-D density: always 0.
func (s *Scalar) ProbabilityAt(float64) float64 { return 0 }

// standardized returns (x-μ)/h.
func (s *Scalar) standardized(x float64) float64 { return (x - s.mu) / s.h }
