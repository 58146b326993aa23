// SPDX-License-Identifier: MIT

package matrix

const opEigenPairs = "EigenPairs"

// EigenPairs is the eigenvalue/eigenvector contract for square matrices.
// It is NOT implemented: the input is validated and factored (the factor is
// discarded), then ErrMatrixNotImplemented is returned with nil outputs.
// Shape and numerical failures of the factorization are reported first.
func EigenPairs(a Matrix) ([]float64, Matrix, error) {
	if _, _, err := cholesky(a); err != nil {
		return nil, nil, matrixErrorf(opEigenPairs, err)
	}

	return nil, nil, matrixErrorf(opEigenPairs, ErrMatrixNotImplemented)
}
