// SPDX-License-Identifier: MIT

// Package kernel provides multivariate kernel densities for kernel density
// estimation, built on the matrix package.
//
// 🚀 What is it?
//
//	A kernel is a center μ plus a smoothing matrix H, kept as its Cholesky
//	base L (H = L·Lᵀ). Densities are evaluated through the quadratic form
//	C = (x-μ)ᵀ·H⁻¹·(x-μ) and det(H).
//
// ✨ Key features
//
//   - Dimension editing: SetCenter, AddDimension, AddDimensionWith,
//     RemoveDimension, RemoveDimensionAt, SetKernelBaseRow. H is rebuilt from L
//     after every successful edit; a failed edit changes nothing.
//   - Densities: Gauss and Logistic (N-D), Gauss1D and Logistic1D (1-D).
//   - Mixture: weighted average of N-D densities (a KDE over samples).
//   - Graceful degradation: when H is not positive definite the N-D densities
//     return 0 instead of an error.
//
// ⚙️ Configuration
//
//	New(dims, WithCenter(μ), WithBase(L))  // explicit state
//	New(dims, WithBandwidth(0.5))          // isotropic, H = 0.25·I
//
// ⚠️ Notes
//
//   - det(H) uses matrix.Determinant, which is exact only up to 3 dimensions.
//   - Kernels are not safe for concurrent mutation; evaluation of an unchanged
//     kernel from many goroutines is fine.
//
// 📚 See also
//
//	matrix.Gram, matrix.Inverse, matrix.Determinant.
package kernel
