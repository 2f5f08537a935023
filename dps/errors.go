// SPDX-License-Identifier: MIT

package dps

import "errors"

var (
	// ErrArgs signals non-positive dimensions or an extension level < 1.
	ErrArgs = errors.New("dps: dimensions and level must be positive")

	// ErrTarget signals a target expression whose dimension does not match
	// the assembled marginal.
	ErrTarget = errors.New("dps: target dimension mismatch")

	// ErrProjection signals a projection whose column count does not match
	// the physical marginal dimension.
	ErrProjection = errors.New("dps: projection shape mismatch")
)
