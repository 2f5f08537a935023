// Package entropy computes von Neumann, Shannon, relative and conditional
// entropies of quantum states and probability distributions.
//
// 🚀 What lives here?
//
//   - Entropy / EntropyVec — von Neumann entropy of a density matrix,
//     Shannon entropy of a probability vector.
//   - BinaryEntropy — the two-outcome special case, exactly 0 at p ∈ {0,1}.
//   - RelativeEntropy / RelativeEntropyVec / BinaryRelativeEntropy —
//     quantum and classical Kullback–Leibler divergences.
//   - ConditionalEntropy / ConditionalEntropyVec — quantum H(ρ) − H(ρ_C)
//     over a declared subsystem split, and the classical joint-matrix form.
//
// Conventions:
//
//   - Every function takes the logarithm base as its first argument
//     (base 2 for bits, e for nats); base must be positive and ≠ 1.
//   - 0·log 0 = 0 throughout.
//   - Positive-semidefiniteness and non-negativity checks use a
//     tolerance scaled to the float64 machine epsilon, never exact zero.
//   - RelativeEntropy does NOT validate support inclusion: when
//     support(ρ) ⊄ support(σ) the result is +Inf. That is a documented
//     caller contract, not a runtime error.
//
// All failures are package sentinel errors (or qmat sentinels for
// Hermiticity/shape violations) matched with errors.Is.
package entropy
