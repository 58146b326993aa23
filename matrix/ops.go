// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, negation, matrix
// multiplication, transpose, scalar scaling and matrix-vector products.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Express the arithmetic operators (+, -, unary -, scalar *, vector *, matrix *)
//     as value-returning, non-mutating functions.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel has a *Dense fast path (flat-slice loops) and an interface
//     fallback (At/Set with fixed i→j order) producing identical results.

package matrix

import "fmt"

// zeroSum is the initial sum value for products and substitutions.
const zeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opNeg       = "Neg"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opGram      = "Gram"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Neg returns -m (unary minus). It is Scale(m, -1) under its own tag.
func Neg(m Matrix) (Matrix, error) { return scale(m, -1, opNeg) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = zeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns alpha*m as a fresh Dense.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) { return scale(m, alpha, opScale) }

func scale(m Matrix, alpha float64, opTag string) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Hadamard returns the element-wise product a ⊙ b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}

// MatVec computes y = m·x (left-multiplication of a column vector).
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != m.Cols().
// Complexity: O(r*c).
func MatVec(m Matrix, x Vector) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make(Vector, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < rows; i++ {
			acc = zeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = zeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Gram returns the Gram matrix L·Lᵀ. The result is symmetric positive
// semi-definite by construction; kernels derive their smoothing matrix with it.
// Complexity: O(r²·c).
func Gram(l Matrix) (*Dense, error) {
	lt, err := Transpose(l)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	g, err := Mul(l, lt)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	return g.(*Dense), nil
}

// RowMatrix lifts v into a 1×n matrix (vᵀ as a matrix).
func RowMatrix(v Vector) *Dense {
	data := make([]float64, len(v))
	copy(data, v)

	return &Dense{r: 1, c: len(v), data: data}
}

// ColMatrix lifts v into an n×1 matrix. An empty v yields the 0×0 matrix.
func ColMatrix(v Vector) *Dense {
	if len(v) == 0 {
		return &Dense{}
	}
	data := make([]float64, len(v))
	copy(data, v)

	return &Dense{r: len(v), c: 1, data: data}
}
