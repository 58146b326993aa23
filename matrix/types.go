// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the kernels.
// This file intentionally contains ONLY the public Matrix interface; the
// concrete row-major implementation lives in dense.go and the coordinate
// container in vector.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept any Matrix and unlock flat-slice fast paths for *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix (0 when Rows() == 0).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
