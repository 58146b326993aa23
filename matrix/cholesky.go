// SPDX-License-Identifier: MIT
// Package matrix - Cholesky engine: factorization, direct solve and inverse
// for symmetric positive-definite (SPD) matrices.
//
// Purpose:
//   - Factor A = D·Dᵀ once and reuse the lower factor for forward/back
//     substitution (Solve) and for the triangular inverse (Inverse).
//
// Numerical policy:
//   - A diagonal radicand <= 0 is clamped to 0 and reported through the
//     isReal flag (not an error); public entry points translate it into
//     ErrNotPositiveDefinite.
//   - A zero divisor in the off-diagonal recurrence or during substitution
//     is ErrSingular. Nothing ever divides by zero.
//   - NaN or ±Inf anywhere in the factor is ErrNumerical; the radicand test
//     is written so that a NaN radicand is never taken as positive.
//   - No pivoting: results are a deterministic function of the input.
//
// AI-Hints:
//   - Check errors.Is(err, ErrNumerical) to treat "not SPD" and "singular" alike.

package matrix

import (
	"fmt"
	"math"
)

// zeroPivot is the divisor value that marks a singular pivot.
const zeroPivot = 0.0

const (
	opCholesky = "Cholesky"
	opSolve    = "Solve"
	opInverse  = "Inverse"
)

// lowerFactor is a jagged lower-triangular factor: row i holds i+1 entries.
type lowerFactor [][]float64

// cholesky factors a square matrix A into a jagged lower factor D with D·Dᵀ = A.
// MAIN DESCRIPTION:
//   - Running-sum recurrence, column by column:
//     D[i][i] = sqrt(A[i][i] - Σ_{k<i} D[i][k]²)
//     D[j][i] = (A[i][j] - Σ_{k<i} D[i][k]·D[j][k]) / D[i][i]   for j > i
//
// Behavior highlights:
//   - radicand <= 0 → clamped to 0, isReal=false, factorization continues.
//   - D[i][i] == 0 while rows below remain → ErrSingular (no Inf/NaN leaks out).
//   - non-finite entry or factor value → ErrNumerical.
//
// Inputs:
//   - a: square matrix (validated here).
//
// Returns:
//   - lowerFactor, isReal flag, error (ErrNilMatrix, ErrDimensionMismatch, ErrSingular, ErrNumerical).
//
// Complexity:
//   - Time O(n³), Space O(n²/2).
func cholesky(a Matrix) (lowerFactor, bool, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, false, matrixErrorf(opCholesky, err)
	}
	n := a.Rows()
	d := make(lowerFactor, n)
	for i := 0; i < n; i++ {
		d[i] = make([]float64, i+1)
	}

	at := entryReader(a)
	var (
		i, j, k  int
		sum, aij float64
		err      error
		isReal   = true
	)
	for i = 0; i < n; i++ {
		// Diagonal term.
		if aij, err = at(i, i); err != nil {
			return nil, false, matrixErrorf(opCholesky, err)
		}
		if !isFinite(aij) {
			return nil, false, matrixErrorf(opCholesky, fmt.Errorf("entry (%d,%d)=%g: %w", i, i, aij, ErrNumerical))
		}
		sum = zeroSum
		for k = 0; k < i; k++ {
			sum += d[i][k] * d[i][k]
		}
		radicand := aij - sum
		if !(radicand > 0) {
			radicand = 0
			isReal = false
		}
		d[i][i] = math.Sqrt(radicand)

		// Column i below the diagonal.
		for j = i + 1; j < n; j++ {
			if d[i][i] == zeroPivot {
				return nil, false, matrixErrorf(opCholesky, fmt.Errorf("pivot %d: %w", i, ErrSingular))
			}
			if aij, err = at(i, j); err != nil {
				return nil, false, matrixErrorf(opCholesky, err)
			}
			if !isFinite(aij) {
				return nil, false, matrixErrorf(opCholesky, fmt.Errorf("entry (%d,%d)=%g: %w", i, j, aij, ErrNumerical))
			}
			sum = zeroSum
			for k = 0; k < i; k++ {
				sum += d[i][k] * d[j][k]
			}
			d[j][i] = (aij - sum) / d[i][i]
			if !isFinite(d[j][i]) {
				return nil, false, matrixErrorf(opCholesky, fmt.Errorf("factor (%d,%d): %w", j, i, ErrNumerical))
			}
		}
	}

	return d, isReal, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// entryReader returns a bounds-checked reader with a flat-slice fast path for *Dense.
func entryReader(a Matrix) func(i, j int) (float64, error) {
	if da, ok := a.(*Dense); ok {
		return func(i, j int) (float64, error) { return da.data[i*da.c+j], nil }
	}

	return a.At
}

// factorSPD runs cholesky and maps the isReal flag onto ErrNotPositiveDefinite.
func factorSPD(a Matrix, opTag string) (lowerFactor, error) {
	d, isReal, err := cholesky(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if !isReal {
		return nil, matrixErrorf(opTag, ErrNotPositiveDefinite)
	}

	return d, nil
}

// Solve returns x with A·x = y for a symmetric positive-definite A.
// Implementation:
//   - Stage 1: validate A square, len(y) == A.Rows() (ErrDimensionMismatch) and y finite (ErrNumerical).
//   - Stage 2: factor A = D·Dᵀ; a non-real factor aborts with ErrNotPositiveDefinite.
//   - Stage 3: forward substitution D·z = y.
//   - Stage 4: back substitution Dᵀ·x = z on the same factor.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNotPositiveDefinite, ErrSingular,
//     ErrNumerical (NaN/±Inf in A). The returned Vector is nil on every failure.
//
// Complexity:
//   - O(n³) factorization + O(n²) substitutions.
func Solve(a Matrix, y Vector) (Vector, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(y, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	for i, v := range y {
		if !isFinite(v) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("y[%d]=%g: %w", i, v, ErrNumerical))
		}
	}
	d, err := factorSPD(a, opSolve)
	if err != nil {
		return nil, err
	}

	n := len(d)
	z := make(Vector, n)
	x := make(Vector, n)
	var i, k int
	var sum float64

	// Forward: D·z = y.
	for i = 0; i < n; i++ {
		sum = zeroSum
		for k = 0; k < i; k++ {
			sum += d[i][k] * z[k]
		}
		if d[i][i] == zeroPivot {
			return nil, matrixErrorf(opSolve, fmt.Errorf("forward pivot %d: %w", i, ErrSingular))
		}
		z[i] = (y[i] - sum) / d[i][i]
	}

	// Backward: Dᵀ·x = z, where Dᵀ[i][k] = D[k][i].
	for i = n - 1; i >= 0; i-- {
		sum = zeroSum
		for k = i + 1; k < n; k++ {
			sum += d[k][i] * x[k]
		}
		if d[i][i] == zeroPivot {
			return nil, matrixErrorf(opSolve, fmt.Errorf("backward pivot %d: %w", i, ErrSingular))
		}
		x[i] = (z[i] - sum) / d[i][i]
	}

	return x, nil
}

// Inverse returns A⁻¹ for a symmetric positive-definite A.
// MAIN DESCRIPTION:
//   - A⁻¹ = (D⁻¹)ᵀ·D⁻¹ where A = D·Dᵀ.
//
// Implementation:
//   - Stage 1: validate square; factor A (ErrNotPositiveDefinite on a non-real factor).
//   - Stage 2: invert the triangular factor:
//     C[i][i] = 1/D[i][i];  C[j][i] = -(Σ_{i≤k<j} D[j][k]·C[k][i]) / D[j][j]  for j > i.
//   - Stage 3: zero-pad C to n×n and return Cᵀ·C via Transpose/Mul.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNotPositiveDefinite, ErrSingular,
//     ErrNumerical (NaN/±Inf in A); nil result on every failure.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(a Matrix) (Matrix, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := factorSPD(a, opInverse)
	if err != nil {
		return nil, err
	}

	n := len(d)
	c, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		if d[i][i] == zeroPivot {
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot %d: %w", i, ErrSingular))
		}
		c.data[i*n+i] = 1 / d[i][i]
		for j = i + 1; j < n; j++ {
			sum = zeroSum
			for k = i; k < j; k++ {
				sum += d[j][k] * c.data[k*n+i]
			}
			if d[j][j] == zeroPivot {
				return nil, matrixErrorf(opInverse, fmt.Errorf("pivot %d: %w", j, ErrSingular))
			}
			c.data[j*n+i] = -sum / d[j][j]
		}
	}

	ct, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Mul(ct, c)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
