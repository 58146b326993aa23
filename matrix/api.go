// SPDX-License-Identifier: MIT
// Package matrix - public constructors and comparison helpers.
//
// Purpose:
//   - Provide thin, well-documented entry points for common shapes.
//   - Offer a tolerance-based comparison (AllClose) for callers and tests,
//     since exact float equality is meaningless after a factorization.

package matrix

import "math"

const opAllClose = "AllClose"

// Default tolerances for AllClose-style comparisons (double precision data).
const (
	DefaultRTol = 1e-9
	DefaultATol = 1e-12
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as the neutral smoothing base of a kernel.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN/Inf tolerances are rejected with ErrNumerical.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNumerical)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	atA, atB := entryReader(a), entryReader(b)
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = atA(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = atB(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			// NaN never compares close, matching the usual allclose contract.
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
