// Package symmetric builds the isometry from the bosonic-symmetric
// subspace of n copies of a d-dimensional space into the full n-fold
// tensor power.
//
// Each basis vector of the symmetric subspace corresponds to a multiset
// of n local basis labels; its image is the normalized uniform
// superposition over every ordering of that multiset. The resulting
// matrix P has shape dⁿ × C(n+d−1, n), satisfies Pᵀ·P = I on the
// symmetric subspace, and its columns are invariant under any
// permutation of the n tensor factors. Those three properties are the
// contract; the column ordering (first appearance in row-major tuple
// enumeration) is an implementation detail callers must not rely on.
//
// The construction is purely combinatorial and real-valued, so the same
// isometry serves both the real-symmetric and Hermitian code paths.
package symmetric
