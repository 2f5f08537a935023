// Package schmidt computes the Schmidt decomposition of bipartite pure
// states and the pure-state entanglement entropy derived from it.
//
// A state vector ψ on ℂ^dA ⊗ ℂ^dB (row-major composition, first
// subsystem most significant) reshapes into the dA×dB matrix
// M[i][j] = ψ[i·dB + j]. Its singular value decomposition yields the
// Schmidt form
//
//	ψ = Σₖ λₖ · uₖ ⊗ vₖ
//
// with non-negative coefficients λₖ sorted in descending order. The
// returned V factor already carries the complex conjugation required by
// the physical convention, so reconstruction uses the columns of U and V
// directly, with no further transpose or conjugation.
//
// gonum's SVD is real-only, so the complex path goes through the Gram
// matrix: the smaller of M·M† and M†·M is eigendecomposed with qmat.EigH
// and the other factor is recovered as M†u/λ (resp. Mv/λ), completing
// the basis deterministically for zero Schmidt coefficients.
package schmidt
