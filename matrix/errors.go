// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON TAXONOMY
// ----------------
// Two failure families exist and callers pattern-match on them:
//
//   - shape: ErrDimensionMismatch, ErrInvalidDimensions, ErrOutOfRange, ErrNilMatrix.
//     Always a caller bug; never retried.
//   - numerical: ErrNotPositiveDefinite, ErrSingular. Both match ErrNumerical
//     via errors.Is, so density code can treat "undefined here" uniformly.
//
// Every message is prefixed with "matrix: ..." for consistency and easy grepping.

var (
	// ErrInvalidDimensions indicates that a requested shape is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row, column or coordinate) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add of different shapes, Mul where a.Cols != b.Rows, a non-square
	// input to Solve/Inverse/Determinant, or a row of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNumerical is the umbrella for numerically invalid inputs.
	ErrNumerical = errors.New("matrix: numerically invalid")

	// ErrNotPositiveDefinite is returned when a Cholesky radicand is <= 0,
	// i.e. the factorization does not exist over the reals.
	ErrNotPositiveDefinite = fmt.Errorf("%w: not positive definite", ErrNumerical)

	// ErrSingular is returned when a zero pivot/divisor is met during
	// factorization or substitution.
	ErrSingular = fmt.Errorf("%w: singular matrix", ErrNumerical)

	// ErrMatrixNotImplemented marks an intentionally unsupported operation (EigenPairs).
	ErrMatrixNotImplemented = errors.New("matrix: operation not implemented")
)

// ErrShapeMismatch names the shape-mismatch condition by its domain name.
// It aliases ErrDimensionMismatch so errors.Is matches either.
var ErrShapeMismatch = ErrDimensionMismatch
