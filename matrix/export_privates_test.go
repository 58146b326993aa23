// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the private Cholesky factorization.
// Compiled only with the package tests; invisible in production builds.

// CholeskyFactor_TestOnly forwards to the private cholesky and returns the
// jagged lower factor as plain rows (row i has i+1 entries).
func CholeskyFactor_TestOnly(a Matrix) ([][]float64, bool, error) {
	d, isReal, err := cholesky(a)
	if err != nil {
		return nil, false, err
	}
	out := make([][]float64, len(d))
	for i := range d {
		out[i] = append([]float64(nil), d[i]...)
	}

	return out, isReal, nil
}
