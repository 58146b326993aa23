// SPDX-License-Identifier: MIT
// Package kernel: sentinel error set.
// Shape problems reuse the matrix sentinels (matrix.ErrDimensionMismatch,
// matrix.ErrOutOfRange, matrix.ErrInvalidDimensions); only kernel-specific
// parameter errors live here.

package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSmoothing is returned when a 1-D smoothing value is not finite and > 0.
	ErrInvalidSmoothing = errors.New("kernel: smoothing must be finite and > 0")

	// ErrInvalidMean is returned when a 1-D mean is NaN or ±Inf.
	ErrInvalidMean = errors.New("kernel: mean must be finite")

	// ErrInvalidWeight is returned when a mixture weight is not finite and > 0.
	ErrInvalidWeight = errors.New("kernel: weight must be finite and > 0")

	// ErrNilDensity is returned when a nil component is added to a Mixture.
	ErrNilDensity = errors.New("kernel: nil density")
)

// kernelErrorf wraps err with an operation tag, preserving it for errors.Is.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("kernel.%s: %w", tag, err)
}
