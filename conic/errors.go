// SPDX-License-Identifier: MIT

// Package conic: sentinel error set.

package conic

import "errors"

var (
	// ErrModel signals an invalid model operation: duplicate constraint
	// name, unknown variable id, a second relative-entropy epigraph, or
	// a solve without an objective.
	ErrModel = errors.New("conic: invalid model")

	// ErrNotHermitian signals a constant matrix that is not Hermitian
	// (or symmetric, real field) where the model requires one.
	ErrNotHermitian = errors.New("conic: constant matrix is not Hermitian")

	// ErrUnsupportedCone signals a model containing a cone the invoked
	// solver cannot handle (the split solver and the relative-entropy
	// epigraph, in either direction).
	ErrUnsupportedCone = errors.New("conic: unsupported cone for this solver")
)
