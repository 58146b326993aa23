// SPDX-License-Identifier: MIT

// Package matrix provides dense linear-algebra primitives: a Vector type, a
// row-major Dense matrix behind the Matrix interface, shape-checked arithmetic
// and an exact Cholesky-based solve engine.
//
// 🚀 What is inside?
//
//   - Vector: add/sub/negate, scale, dot, Hadamard, settable magnitude.
//   - Dense: At/Set, Row/SetRow, AppendRow/RemoveRow, InsertColumn/RemoveColumn.
//   - Arithmetic: Add, Sub, Neg, Mul, Scale, MatVec, Transpose, Hadamard, Gram.
//   - Solve engine: Solve (A·x = y), Inverse, Determinant, Trace, and the
//     EigenPairs contract (intentionally unimplemented).
//
// ⚙️ Errors:
//
// Every fallible call returns (value, error). Shape problems match
// ErrDimensionMismatch / ErrOutOfRange / ErrNilMatrix / ErrInvalidDimensions;
// numerically invalid inputs match ErrNumerical (ErrNotPositiveDefinite or
// ErrSingular). Outputs are nil/zero whenever an error is returned.
//
//	a, _ := matrix.NewDenseFromRows([]matrix.Vector{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}})
//	x, err := matrix.Solve(a, matrix.VectorOf(1, 1, 1))
//	if errors.Is(err, matrix.ErrNumerical) {
//		// not SPD: no solution produced
//	}
//
// ⚠️ Determinant uses a diagonal-cycling rule that is exact only for n ≤ 3.
//
// Performance: Cholesky O(n³), substitutions O(n²), everything else O(r·c) or O(r·n·c).
package matrix
