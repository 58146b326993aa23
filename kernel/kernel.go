// SPDX-License-Identifier: MIT
// Package kernel - N-D kernel state: center μ, Cholesky base L and the
// smoothing matrix H = L·Lᵀ.
//
// Purpose:
//   - Keep μ, L and H dimensionally consistent through every edit
//     (grow, shrink, remove an arbitrary dimension, rewrite the last base row).
//   - Provide the shared quadratic-form evaluation used by the concrete densities.
//
// Invariants (after every public call, successful or not):
//   - len(μ) == L.Rows() == L.Cols() == H.Rows() == H.Cols().
//   - H equals L·Lᵀ; it is rebuilt from scratch after each successful edit,
//     never patched incrementally.
//   - A failed call leaves μ, L and H untouched.

package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvkde/matrix"
)

const (
	opNew                = "New"
	opSetCenter          = "SetCenter"
	opSetCenterItem      = "SetCenterItem"
	opAddDimensionWith   = "AddDimensionWith"
	opRemoveDimension    = "RemoveDimension"
	opRemoveDimensionAt  = "RemoveDimensionAt"
	opSetKernelBaseRow   = "SetKernelBaseRow"
	opProbabilityAt      = "ProbabilityAt"
	panicInvariantBroken = "kernel: internal invariant violated: %v"
)

// Density is anything that assigns a probability density to an N-D point.
// *Kernel (always 0), *Gauss, *Logistic and *Mixture implement it.
type Density interface {
	Dimensions() int
	ProbabilityAt(x matrix.Vector) (float64, error)
}

// Kernel is the dimensionality-managing base of every N-D density.
// Its own ProbabilityAt is the neutral density 0; Gauss and Logistic embed
// it and override the evaluation.
//
// A Kernel is not safe for concurrent mutation.
type Kernel struct {
	mu   matrix.Vector // center μ
	base *matrix.Dense // Cholesky base L (lower-triangular by convention)
	h    *matrix.Dense // smoothing H = L·Lᵀ
}

// New builds a Kernel of the given dimensionality.
// Defaults: zero center and base DefaultBandwidth·I (so H = I).
// The default base is the identity, not an all-ones L (whose H would be rank 1).
//
// Errors:
//   - matrix.ErrInvalidDimensions if dims < 0.
//   - matrix.ErrDimensionMismatch if WithCenter/WithBase disagree with dims.
func New(dims int, opts ...Option) (*Kernel, error) {
	if dims < 0 {
		return nil, kernelErrorf(opNew, fmt.Errorf("dims=%d: %w", dims, matrix.ErrInvalidDimensions))
	}
	o := gatherOptions(opts...)

	var mu matrix.Vector
	if o.center != nil {
		if err := matrix.ValidateVecLen(o.center, dims); err != nil {
			return nil, kernelErrorf(opNew, fmt.Errorf("center: %w", err))
		}
		mu = o.center.Clone()
	} else {
		mu, _ = matrix.NewVector(dims) // dims >= 0 checked above
	}

	var base *matrix.Dense
	if o.base != nil {
		if o.base.Rows() != dims || o.base.Cols() != dims {
			return nil, kernelErrorf(opNew, fmt.Errorf("base %dx%d for dims=%d: %w",
				o.base.Rows(), o.base.Cols(), dims, matrix.ErrDimensionMismatch))
		}
		base = o.base.Copy()
	} else {
		id, err := matrix.NewIdentity(dims)
		if err != nil {
			return nil, kernelErrorf(opNew, err)
		}
		for i := 0; i < dims; i++ {
			_ = id.Set(i, i, o.bandwidth)
		}
		base = id
	}

	k := &Kernel{mu: mu, base: base}
	k.rebuild()

	return k, nil
}

// rebuild recomputes H = L·Lᵀ from the current base.
// The base is always a non-nil square *Dense here, so a failure means an
// invariant was broken by this package; that is a bug and panics.
func (k *Kernel) rebuild() {
	h, err := matrix.Gram(k.base)
	if err != nil {
		panic(fmt.Sprintf(panicInvariantBroken, err))
	}
	k.h = h
}

// must panics on internal errors that the surrounding validation rules out.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf(panicInvariantBroken, err))
	}
}

// Dimensions returns the current dimensionality n.
func (k *Kernel) Dimensions() int { return len(k.mu) }

// Center returns a copy of μ.
func (k *Kernel) Center() matrix.Vector { return k.mu.Clone() }

// Base returns a copy of the Cholesky base L.
func (k *Kernel) Base() *matrix.Dense { return k.base.Copy() }

// Smoothing returns a copy of H = L·Lᵀ.
func (k *Kernel) Smoothing() *matrix.Dense { return k.h.Copy() }

// SetCenter replaces μ and resizes the base to match len(c):
//   - growing appends identity rows/columns (new diagonal entries are 1),
//   - shrinking drops trailing rows/columns.
//
// H is rebuilt afterwards. The vector is copied.
// Errors: ErrInvalidMean if any coordinate is NaN or ±Inf (kernel unchanged).
func (k *Kernel) SetCenter(c matrix.Vector) error {
	for i, v := range c {
		if err := validateMean(v); err != nil {
			return kernelErrorf(opSetCenter, fmt.Errorf("center[%d]: %w", i, err))
		}
	}
	for k.base.Rows() > len(c) {
		last := k.base.Rows() - 1
		must(k.base.RemoveColumn(last))
		must(k.base.RemoveRow(last))
	}
	for k.base.Rows() < len(c) {
		k.growBase(nil)
	}
	k.mu = c.Clone()
	k.rebuild()

	return nil
}

// SetCenterItem sets μ[i] = v. H is unaffected.
// Errors: matrix.ErrOutOfRange if i ∉ [0, n); ErrInvalidMean if v is NaN or ±Inf.
func (k *Kernel) SetCenterItem(i int, v float64) error {
	if i < 0 || i >= len(k.mu) {
		return kernelErrorf(opSetCenterItem, fmt.Errorf("index %d of %d: %w", i, len(k.mu), matrix.ErrOutOfRange))
	}
	if err := validateMean(v); err != nil {
		return kernelErrorf(opSetCenterItem, err)
	}
	k.mu[i] = v

	return nil
}

// growBase widens L by one zero column and appends row; nil row means the
// identity row (zeros with 1 on the new diagonal).
func (k *Kernel) growBase(row matrix.Vector) {
	n := k.base.Rows()
	if row == nil {
		row, _ = matrix.NewVector(n + 1)
		row[n] = 1
	}
	must(k.base.InsertColumn(n))
	must(k.base.AppendRow(row))
}

// AddDimension appends a dimension with center 0 and identity base row,
// so the previous H is preserved as the leading block and H[n][n] = 1.
func (k *Kernel) AddDimension() {
	k.growBase(nil)
	k.mu = append(k.mu, 0)
	k.rebuild()
}

// AddDimensionWith appends a dimension with the given center coordinate and
// base row. The row must have n+1 entries (n = current dimensionality); the
// existing rows get a 0 in the new column.
// Errors: matrix.ErrDimensionMismatch if len(row) != n+1; ErrInvalidMean
// if center is NaN or ±Inf.
func (k *Kernel) AddDimensionWith(center float64, row matrix.Vector) error {
	if err := validateMean(center); err != nil {
		return kernelErrorf(opAddDimensionWith, err)
	}
	n := len(k.mu)
	if err := matrix.ValidateVecLen(row, n+1); err != nil {
		return kernelErrorf(opAddDimensionWith, err)
	}
	k.growBase(row.Clone())
	k.mu = append(k.mu, center)
	k.rebuild()

	return nil
}

// RemoveDimension drops the last dimension (last center coordinate, last
// base row and column).
// Errors: matrix.ErrOutOfRange when the kernel is already 0-dimensional.
func (k *Kernel) RemoveDimension() error {
	if len(k.mu) == 0 {
		return kernelErrorf(opRemoveDimension, fmt.Errorf("0-dimensional kernel: %w", matrix.ErrOutOfRange))
	}

	return k.removeAt(len(k.mu) - 1)
}

// RemoveDimensionAt drops dimension i: μ[i], base row i and base column i.
// Errors: matrix.ErrOutOfRange if i ∉ [0, n).
func (k *Kernel) RemoveDimensionAt(i int) error {
	if i < 0 || i >= len(k.mu) {
		return kernelErrorf(opRemoveDimensionAt, fmt.Errorf("index %d of %d: %w", i, len(k.mu), matrix.ErrOutOfRange))
	}

	return k.removeAt(i)
}

// removeAt assumes i is a valid dimension index.
func (k *Kernel) removeAt(i int) error {
	mu, err := k.mu.RemoveAt(i)
	if err != nil {
		return err
	}
	must(k.base.RemoveColumn(i))
	must(k.base.RemoveRow(i))
	k.mu = mu
	k.rebuild()

	return nil
}

// SetKernelBaseRow overwrites the leading len(row) entries of base row
// len(row)-1; a lower-triangular base stays lower-triangular. An empty row
// is a no-op (H is still rebuilt and therefore unchanged).
// Errors: matrix.ErrDimensionMismatch if len(row) > n.
func (k *Kernel) SetKernelBaseRow(row matrix.Vector) error {
	n := len(k.mu)
	if len(row) > n {
		return kernelErrorf(opSetKernelBaseRow, fmt.Errorf("row length %d > dims %d: %w", len(row), n, matrix.ErrDimensionMismatch))
	}
	if len(row) > 0 {
		r := len(row) - 1
		for j, v := range row {
			must(k.base.Set(r, j, v))
		}
	}
	k.rebuild()

	return nil
}

// ProbabilityAt is the neutral density: 0 for every correctly sized x.
// Errors: matrix.ErrDimensionMismatch if len(x) != n.
func (k *Kernel) ProbabilityAt(x matrix.Vector) (float64, error) {
	if err := matrix.ValidateVecLen(x, len(k.mu)); err != nil {
		return 0, kernelErrorf(opProbabilityAt, err)
	}

	return 0, nil
}

// form holds the pieces every concrete N-D density needs at x.
type form struct {
	c   float64 // quadratic form (x-μ)ᵀ·H⁻¹·(x-μ)
	det float64 // det(H)
	k   int     // dimensionality
}

// evaluate computes the quadratic form and det(H) at x.
// Implementation:
//   - Stage 1: d = x − μ (ErrDimensionMismatch on length mismatch).
//   - Stage 2: H⁻¹ via Cholesky; a numerical failure yields ok=false.
//   - Stage 3: det(H) by the diagonal-cycling rule; det <= 0 or non-finite yields ok=false.
//   - Stage 4: c = RowMatrix(d)·H⁻¹·ColMatrix(d); c = 0 for a 0-dimensional kernel;
//     a NaN c (non-finite x) yields ok=false.
//
// ok=false means the density is undefined at this smoothing and callers fall back to 0.
func (k *Kernel) evaluate(x matrix.Vector, opTag string) (form, bool, error) {
	d, err := x.Sub(k.mu)
	if err != nil {
		return form{}, false, kernelErrorf(opTag, err)
	}

	hInv, err := matrix.Inverse(k.h)
	if errors.Is(err, matrix.ErrNumerical) {
		return form{}, false, nil
	}
	if err != nil {
		return form{}, false, kernelErrorf(opTag, err)
	}

	det, err := matrix.Determinant(k.h)
	if err != nil {
		return form{}, false, kernelErrorf(opTag, err)
	}
	if !(det > 0) || math.IsInf(det, 1) {
		return form{}, false, nil
	}

	f := form{det: det, k: len(d)}
	if len(d) == 0 {
		return f, true, nil
	}
	left, err := matrix.Mul(matrix.RowMatrix(d), hInv)
	if err != nil {
		return form{}, false, kernelErrorf(opTag, err)
	}
	q, err := matrix.Mul(left, matrix.ColMatrix(d))
	if err != nil {
		return form{}, false, kernelErrorf(opTag, err)
	}
	if f.c, err = q.At(0, 0); err != nil {
		return form{}, false, kernelErrorf(opTag, err)
	}
	if math.IsNaN(f.c) {
		return form{}, false, nil
	}

	return f, true, nil
}
