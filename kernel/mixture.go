// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvkde/matrix"
)

const (
	opNewMixture           = "NewMixture"
	opMixtureAdd           = "Mixture.Add"
	opMixtureProbabilityAt = "Mixture.ProbabilityAt"
)

var _ Density = (*Mixture)(nil)

// Mixture is a weighted kernel density estimate:
//
//	p(x) = Σ wᵢ·pᵢ(x) / Σ wᵢ
//
// An empty mixture has density 0 everywhere. Components are held by
// reference; editing a component's dimensionality after Add makes later
// evaluations fail with matrix.ErrDimensionMismatch.
type Mixture struct {
	dims    int
	weights []float64
	parts   []Density
	total   float64
}

// NewMixture returns an empty mixture over dims-dimensional points.
// Errors: matrix.ErrInvalidDimensions if dims < 0.
func NewMixture(dims int) (*Mixture, error) {
	if dims < 0 {
		return nil, kernelErrorf(opNewMixture, fmt.Errorf("dims=%d: %w", dims, matrix.ErrInvalidDimensions))
	}

	return &Mixture{dims: dims}, nil
}

// Add appends a component with the given weight.
// Errors:
//   - ErrInvalidWeight unless weight is finite and > 0.
//   - ErrNilDensity for a nil component.
//   - matrix.ErrDimensionMismatch if d.Dimensions() differs from the mixture's.
func (m *Mixture) Add(weight float64, d Density) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return kernelErrorf(opMixtureAdd, fmt.Errorf("weight=%g: %w", weight, ErrInvalidWeight))
	}
	if d == nil {
		return kernelErrorf(opMixtureAdd, ErrNilDensity)
	}
	if d.Dimensions() != m.dims {
		return kernelErrorf(opMixtureAdd, fmt.Errorf("component dims %d, mixture dims %d: %w",
			d.Dimensions(), m.dims, matrix.ErrDimensionMismatch))
	}
	m.weights = append(m.weights, weight)
	m.parts = append(m.parts, d)
	m.total += weight

	return nil
}

// Len returns the number of components.
func (m *Mixture) Len() int { return len(m.parts) }

// Dimensions returns the point dimensionality.
func (m *Mixture) Dimensions() int { return m.dims }

// ProbabilityAt returns the weighted average of the component densities at x.
// The first component error aborts the evaluation.
func (m *Mixture) ProbabilityAt(x matrix.Vector) (float64, error) {
	if err := matrix.ValidateVecLen(x, m.dims); err != nil {
		return 0, kernelErrorf(opMixtureProbabilityAt, err)
	}
	if len(m.parts) == 0 {
		return 0, nil
	}
	var sum float64
	for i, d := range m.parts {
		p, err := d.ProbabilityAt(x)
		if err != nil {
			return 0, kernelErrorf(opMixtureProbabilityAt, fmt.Errorf("component %d: %w", i, err))
		}
		sum += m.weights[i] * p
	}

	return sum / m.total, nil
}
