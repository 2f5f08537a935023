// Package entanglement estimates entanglement quantifiers of bipartite
// states through conic relaxations of the separable set.
//
// 🚀 Estimators
//
//   - RandomRobustness: the least amount of white noise λ making ρ + λI
//     pass the level-n relaxation; a positive value certifies
//     entanglement and the dual of the marginal equality is returned as
//     a witness candidate.
//   - RelativeEntropyBound: a lower bound on the relative entropy of
//     entanglement, min D(ρ‖σ) in bits over σ in the relaxed separable
//     set, driven through the relative-entropy epigraph.
//   - SchmidtNumber: an upper-bound test on the Schmidt number, the
//     largest visibility λ at which λρ + (1−λ)I/d still admits a
//     Schmidt-number-s decomposition under the relaxation.
//
// All three build a conic model, hand the hierarchy constraints to the
// dps assembler, solve, and post-process the primal/dual output into a
// physical scalar. The solver is swappable through WithSolver; the
// bundled splitting solver is the default.
//
// 🔌 Failure model
//
// Argument problems (non-Hermitian input, bad dimensions) fail fast
// before a model is built. A solver that finishes without a usable
// point yields a *SolveFailure carrying the typed status and the raw
// solver diagnostics, matched with errors.As.
package entanglement
