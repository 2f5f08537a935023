// SPDX-License-Identifier: MIT

// Package entropy: sentinel error set. Validation fails before any
// eigendecomposition or summation is performed.

package entropy

import "errors"

var (
	// ErrBase signals an invalid logarithm base (must be > 0 and ≠ 1).
	ErrBase = errors.New("entropy: invalid logarithm base")

	// ErrNegativeEigenvalue signals an eigenvalue below −tol where a
	// positive-semidefinite density matrix was required.
	ErrNegativeEigenvalue = errors.New("entropy: matrix has a negative eigenvalue beyond tolerance")

	// ErrNegativeProbability signals a probability entry below −tol.
	ErrNegativeProbability = errors.New("entropy: negative probability")

	// ErrProbability signals a scalar probability outside [0, 1].
	ErrProbability = errors.New("entropy: probability outside [0,1]")

	// ErrShapeMismatch signals operands of unequal shape or length.
	ErrShapeMismatch = errors.New("entropy: shape mismatch")

	// ErrEmpty signals an empty probability vector or matrix.
	ErrEmpty = errors.New("entropy: empty input")
)
