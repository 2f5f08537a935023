// SPDX-License-Identifier: MIT

// Package qmat: sentinel error set. All exported validation paths return
// these sentinels (possibly wrapped with context via fmt.Errorf and %w);
// tests match them with errors.Is. Panics are reserved for programmer
// errors in the low-level kernel ops, mirroring gonum's dense API.

package qmat

import "errors"

var (
	// ErrNotSquare signals that a square matrix was required but the
	// input has rows != cols.
	ErrNotSquare = errors.New("qmat: matrix is not square")

	// ErrShape indicates incompatible shapes between operands or between
	// a matrix and its declared subsystem dimensions.
	ErrShape = errors.New("qmat: shape mismatch")

	// ErrNotHermitian signals that a matrix expected to be Hermitian
	// (or symmetric, real case) violates Hermiticity beyond the
	// dimension-scaled tolerance.
	ErrNotHermitian = errors.New("qmat: matrix is not Hermitian within tolerance")

	// ErrDims indicates an invalid subsystem dimension list: non-positive
	// entries, a product that does not match the matrix dimension, or a
	// total dimension that cannot be inferred as an equal bipartition.
	ErrDims = errors.New("qmat: invalid subsystem dimensions")

	// ErrSubsystem indicates a subsystem index that is out of range or
	// repeated in a subsystem selection list.
	ErrSubsystem = errors.New("qmat: invalid subsystem selection")
)
