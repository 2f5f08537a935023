// Package qinfo is a quantum-information toolkit: entropy and Schmidt
// primitives, symmetric-subspace constructions, and SDP relaxations
// that certify entanglement properties of bipartite states.
//
// 🚀 What is qinfo?
//
//	A numerical library built on gonum that brings together:
//		• Matrix kernel: dense complex/real matrices, eigendecomposition,
//		  partial trace/transpose, inner-product-preserving vectorization
//		• Entropy: von Neumann, Shannon, relative & conditional entropy
//		• Schmidt decomposition: coefficients, isometries, entanglement
//		  entropy of pure states
//		• Symmetric subspace: the bosonic-subspace isometry used to build
//		  hierarchy extensions
//		• Conic modeling: PSD variables over real or Hermitian cones, a
//		  bundled splitting solver, a relative-entropy epigraph driver
//		• DPS hierarchy: symmetric-extension + partial-transpose ladder
//		  constraint assembly at any level
//		• Estimators: random robustness, relative-entropy-of-entanglement
//		  bound, Schmidt-number visibility test
//
// ✨ Why choose qinfo?
//
//   - Fail-fast validation – Hermiticity, shapes and bipartitions are
//     checked before any model is built
//   - Swappable solvers – estimators talk to a narrow Solver interface;
//     the bundled ADMM solver works out of the box
//   - Pure Go – no cgo, no LAPACK binding required
//
// Under the hood, everything is organized per concern:
//
//	qmat/         — dense matrix kernel, eigensolver, vectorization codecs
//	entropy/      — entropy primitives over states and distributions
//	schmidt/      — bipartite pure-state decomposition
//	symmetric/    — symmetric-subspace isometry builder
//	conic/        — conic model, bundled solver, epigraph driver
//	dps/          — hierarchy constraint assembler
//	entanglement/ — relaxation-based estimators
//
// Quick example, certifying a Bell state:
//
//	rho := qmat.Ketbra(qmat.MaxEntangled(2, true))
//	lam, w, err := entanglement.RandomRobustness(ctx, rho, []int{2, 2}, 1)
//	// lam ≈ 0.5 > 0: entangled, with witness w.
//
// See each subpackage's doc.go for the full contracts.
package qinfo
