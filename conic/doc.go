// Package conic is the narrow conic-optimization modeling layer used by
// the DPS hierarchy: declare PSD matrix variables (real-symmetric or
// complex-Hermitian), scalar variables, affine equality constraints,
// PSD membership constraints on affine matrix expressions, a
// relative-entropy epigraph constraint, and a linear objective; hand the
// model to a Solver; read back status, objective, primal values and the
// dual values of named constraints.
//
// 🚀 Layout
//
//   - Model / Expr — the problem container and affine matrix expressions
//     over its variables. All matrix data lives in the real coordinate
//     vectors of the qmat codecs (HVec/SVec), so a complex Hermitian
//     problem is already a real symmetric-cone problem by construction.
//   - Solver — the service contract: anything that can solve a conic
//     program. External solvers plug in here without touching the
//     assembler logic.
//   - SplitSolver — the bundled first-order solver: ADMM-style operator
//     splitting with a cached KKT factorization for the affine step and
//     eigenvalue clipping for the PSD projections. It rejects models
//     carrying the relative-entropy epigraph (ErrUnsupportedCone).
//   - SolveRelEntropy — a Frank–Wolfe driver for models whose objective
//     is the relative-entropy epigraph scalar, delegating the linearized
//     subproblems to any base Solver.
//
// Models are built and solved synchronously and owned by a single call;
// nothing here is safe for concurrent mutation. Solver invocations take
// a context.Context for cancellation.
package conic
