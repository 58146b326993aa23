// SPDX-License-Identifier: MIT

// Package matrix - Vector: ordered float64 coordinates with shape-checked arithmetic.
//
// Purpose:
//   - Serve as the row type of Dense and the center type of kernels.
//   - Express the vector operators (+, -, unary -, scalar *, dot *, Hadamard)
//     as value-returning methods; operands are never mutated.
//
// Determinism & Performance:
//   - Slice arithmetic is delegated to gonum/floats after length validation
//     (floats panics on mismatched lengths, so every method checks first).
//
// AI-Hints:
//   - Use Clone before handing a Vector to code that may keep it.
//   - SetMagnitude is the only in-place mutator besides plain indexing.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation tags for Vector error wrapping.
const (
	opVecAdd      = "Vector.Add"
	opVecSub      = "Vector.Sub"
	opVecDot      = "Vector.Dot"
	opVecHadamard = "Vector.Hadamard"
	opVecSetMag   = "Vector.SetMagnitude"
	opVecInsert   = "Vector.Insert"
	opVecRemove   = "Vector.RemoveAt"
)

// Vector is an ordered sequence of float64 scalars, index 0..n-1.
type Vector []float64

// NewVector returns a zero Vector of length n, or ErrInvalidDimensions for n < 0.
func NewVector(n int) (Vector, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return make(Vector, n), nil
}

// VectorOf copies values into a new Vector.
func VectorOf(values ...float64) Vector {
	v := make(Vector, len(values))
	copy(v, values)

	return v
}

// Len returns the number of coordinates.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy of v (nil stays nil).
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	cp := make(Vector, len(v))
	copy(cp, v)

	return cp
}

// sameLen validates len(v) == len(w) and tags the failure with op.
func (v Vector) sameLen(w Vector, op string) error {
	if len(v) != len(w) {
		return matrixErrorf(op, fmt.Errorf("len %d vs %d: %w", len(v), len(w), ErrDimensionMismatch))
	}

	return nil
}

// Add returns v + w element-wise.
// Errors: ErrDimensionMismatch when lengths differ.
func (v Vector) Add(w Vector) (Vector, error) {
	if err := v.sameLen(w, opVecAdd); err != nil {
		return nil, err
	}

	return floats.AddTo(make(Vector, len(v)), v, w), nil
}

// Sub returns v - w element-wise.
// Errors: ErrDimensionMismatch when lengths differ.
func (v Vector) Sub(w Vector) (Vector, error) {
	if err := v.sameLen(w, opVecSub); err != nil {
		return nil, err
	}

	return floats.SubTo(make(Vector, len(v)), v, w), nil
}

// Neg returns -v.
func (v Vector) Neg() Vector { return v.Scale(-1) }

// Scale returns alpha*v.
func (v Vector) Scale(alpha float64) Vector {
	return floats.ScaleTo(make(Vector, len(v)), alpha, v)
}

// Dot returns the scalar product Σ v[i]*w[i].
// Errors: ErrDimensionMismatch when lengths differ.
func (v Vector) Dot(w Vector) (float64, error) {
	if err := v.sameLen(w, opVecDot); err != nil {
		return 0, err
	}

	return floats.Dot(v, w), nil
}

// Hadamard returns the element-wise product v ⊙ w.
// Errors: ErrDimensionMismatch when lengths differ.
func (v Vector) Hadamard(w Vector) (Vector, error) {
	if err := v.sameLen(w, opVecHadamard); err != nil {
		return nil, err
	}

	return floats.MulTo(make(Vector, len(v)), v, w), nil
}

// Magnitude returns the Euclidean norm ‖v‖₂ (0 for an empty vector).
func (v Vector) Magnitude() float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v, 2)
}

// SetMagnitude rescales v in place so that ‖v‖₂ == m, keeping its direction.
// A negative m flips the direction.
//
// Errors:
//   - ErrSingular when v has zero magnitude and m != 0 (no direction to keep).
//   - ErrNumerical when m is NaN or ±Inf.
func (v Vector) SetMagnitude(m float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return matrixErrorf(opVecSetMag, ErrNumerical)
	}
	cur := v.Magnitude()
	if cur == 0 {
		if m == 0 {
			return nil
		}
		return matrixErrorf(opVecSetMag, ErrSingular)
	}
	floats.Scale(m/cur, v)

	return nil
}

// Insert returns a copy of v with value inserted before index i (0 ≤ i ≤ len(v)).
// Errors: ErrOutOfRange for an invalid position.
func (v Vector) Insert(i int, value float64) (Vector, error) {
	if i < 0 || i > len(v) {
		return nil, matrixErrorf(opVecInsert, ErrOutOfRange)
	}
	out := make(Vector, 0, len(v)+1)
	out = append(out, v[:i]...)
	out = append(out, value)

	return append(out, v[i:]...), nil
}

// RemoveAt returns a copy of v without coordinate i.
// Errors: ErrOutOfRange for an invalid index.
func (v Vector) RemoveAt(i int) (Vector, error) {
	if i < 0 || i >= len(v) {
		return nil, matrixErrorf(opVecRemove, ErrOutOfRange)
	}
	out := make(Vector, 0, len(v)-1)
	out = append(out, v[:i]...)

	return append(out, v[i+1:]...), nil
}
