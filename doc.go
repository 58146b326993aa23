// Package lvkde is a small, exact linear-algebra core with a kernel density
// layer on top: dense vectors and matrices, a Cholesky solve engine, and
// Gaussian / logistic kernels whose dimensionality can be edited in place.
//
// 🚀 What is lvkde?
//
//	Two packages that build on each other:
//		• matrix – Vector, Dense, arithmetic, Solve, Inverse, Determinant, Trace
//		• kernel – N-D Kernel (center μ, Cholesky base L, smoothing H = L·Lᵀ),
//		  Gauss / Logistic densities in 1-D and N-D, weighted Mixture
//
// ✨ Why lvkde?
//
//   - Exact, deterministic results – no iterative solvers, no pivoting surprises
//   - Edit-safe kernels – add, remove or rewrite a dimension and H stays L·Lᵀ
//   - Clear failures – shape errors vs numerical errors, matched with errors.Is
//
// Under the hood:
//
//	matrix/   - Vector, Dense, validators, Cholesky engine, determinant rule
//	kernel/   - Kernel state machine, densities, functional options, Mixture
//	examples/ - runnable KDE walkthrough
//
// Quick example:
//
//	g, _ := kernel.NewGauss(2, kernel.WithCenter(matrix.VectorOf(1, -1)))
//	p, _ := g.ProbabilityAt(matrix.VectorOf(0, 0))
//
//	go get github.com/katalvlaran/lvkde
package lvkde
