// Package dps assembles the Doherty–Parrilo–Spedalieri hierarchy
// constraints: the semidefinite relaxations certifying separability (or
// bounded Schmidt number) of bipartite quantum states.
//
// 🚀 The construction
//
// For a bipartition [dA, dB] and hierarchy level n, the assembler
//
//  1. extends the second subsystem to n bosonic copies: the extended
//     state lives on dims [dA, dB, …, dB] (n copies of dB);
//  2. allocates the PSD variable s on the symmetric-subspace coordinates,
//     size dA·K with K = C(n+dB−1, n);
//  3. lifts through V = I_dA ⊗ P_sym(dB, n): lifted = V·s·V†;
//  4. partial-traces the extension copies 2..n back down to the physical
//     dA·dB marginal;
//  5. equates the (optionally projected) marginal with the caller's
//     affine target expression;
//  6. with WithPPT, adds the cumulative partial-transpose ladder: for
//     every prefix of extension copies, the partially transposed lifted
//     state stays PSD.
//
// Level n+1 relaxations are contained in level n ones, so any bound
// certified through the assembler tightens monotonically with n while
// the variable size grows as C(n+dB−1, n).
//
// The optional projection is a general linear map, so estimators with
// lifted targets (Schmidt number) compose with the assembler by passing
// a different projection instead of branching inside it.
package dps
