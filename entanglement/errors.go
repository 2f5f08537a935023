// SPDX-License-Identifier: MIT

package entanglement

import (
	"errors"
	"fmt"

	"github.com/qinfo-go/qinfo/conic"
)

// ErrArgs signals an out-of-range level or Schmidt number.
var ErrArgs = errors.New("entanglement: level and schmidt number must be positive")

// SolveFailure reports a solver run that finished without a usable
// primal point. The typed status and the raw solver diagnostics travel
// with the error so callers can branch on the outcome without parsing
// text.
type SolveFailure struct {
	// Op is the estimator that issued the solve.
	Op string

	// Status is the typed solver outcome.
	Status conic.Status

	// Raw is the solver's diagnostic string.
	Raw string
}

// Error implements the error interface.
func (e *SolveFailure) Error() string {
	return fmt.Sprintf("entanglement: %s solve failed: %s (%s)", e.Op, e.Status, e.Raw)
}
