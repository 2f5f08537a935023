// Package qmat provides the dense complex-matrix kernel used by the
// quantum-information packages: Kronecker products, partial trace and
// partial transpose over declared subsystem factorizations, Hermitian
// eigendecomposition, and the scaled vectorization codec that maps
// Hermitian matrices onto real coordinate vectors.
//
// 🚀 What lives here?
//
//   - Dense — a minimal row-major complex128 matrix with the handful of
//     operations the library needs (Mul, Add, Dagger, Trace, Kron, …).
//   - PartialTrace / PartialTranspose — subsystem operations over an
//     explicit dims factorization, row index = first subsystem.
//   - EigH — Hermitian eigendecomposition via the real symmetric
//     embedding [[A,−B],[B,A]] and gonum's EigenSym.
//   - HVec/UnHVec, SVec/UnSVec — inner-product-preserving codecs between
//     Hermitian (resp. real symmetric) matrices and real vectors, with
//     off-diagonal parts scaled by √2 so the Euclidean dot product of
//     two coded vectors equals the Hilbert–Schmidt inner product.
//
// Conventions:
//
//   - A d-dimensional system composed of subsystems dims = [d₁,…,dₖ]
//     uses row-major index composition: basis label (i₁,…,iₖ) maps to
//     ((i₁·d₂+i₂)·d₃+…), i.e. the first subsystem is the most
//     significant digit. This matches Kron(A, B) placing A on the first
//     subsystem.
//   - Shape misuse in the low-level kernel ops panics (programmer
//     error, as in gonum); user-facing validation (Hermiticity, dims
//     inference, subsystem lists) returns package sentinel errors.
//
// All numeric tolerances scale with the float64 machine epsilon.
package qmat
