// SPDX-License-Identifier: MIT

package conic

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/qinfo-go/qinfo/qmat"
)

// Status is the typed solver outcome. The raw solver-specific status
// string travels alongside in Result.Raw so diagnostics survive the
// conversion to a typed result.
type Status int

const (
	// StatusUnknown is the zero value; never returned by a well-behaved
	// solver.
	StatusUnknown Status = iota

	// StatusOptimal: converged within tolerance.
	StatusOptimal

	// StatusInaccurate: terminated with residuals above tolerance but
	// close enough to be usable; callers may accept or reject.
	StatusInaccurate

	// StatusMaxIterations: iteration budget exhausted far from tolerance.
	StatusMaxIterations

	// StatusInfeasible: the solver certified (or strongly suspects)
	// primal infeasibility.
	StatusInfeasible
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInaccurate:
		return "inaccurate"
	case StatusMaxIterations:
		return "max_iterations"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Ok reports whether the outcome carries a usable primal point.
func (s Status) Ok() bool {
	return s == StatusOptimal || s == StatusInaccurate
}

// Result carries a solver outcome: typed status, raw solver status
// string, objective value, the primal coordinate vector and the dual
// values of named constraints.
type Result struct {
	Status    Status
	Raw       string
	Objective float64

	x     []float64
	duals map[string][]float64
	model *Model
}

// Matrix extracts the value of a PSD matrix variable.
func (r *Result) Matrix(id VarID) *qmat.Dense {
	v := r.model.psd[id]

	return qmat.UnVec(r.x[v.off:v.off+v.length], v.d, r.model.field)
}

// Scalar extracts the value of a scalar variable.
func (r *Result) Scalar(id ScalarID) float64 {
	return r.x[r.model.scalarOff[id]]
}

// Value evaluates an expression of this model at the primal point.
func (r *Result) Value(e *Expr) *qmat.Dense {
	return e.eval(r.x)
}

// Dual returns the raw dual vector of a named constraint (codec
// coordinates for matrix equalities, length 1 for scalar equalities).
func (r *Result) Dual(name string) ([]float64, bool) {
	d, ok := r.duals[name]

	return d, ok
}

// DualMatrix decodes the dual of a named matrix equality constraint.
func (r *Result) DualMatrix(name string) (*qmat.Dense, bool) {
	for _, eq := range r.model.eqs {
		if eq.name != name {
			continue
		}
		d, ok := r.duals[name]
		if !ok || len(d) != qmat.VecLen(eq.expr.d, r.model.field) {
			return nil, false
		}

		return qmat.UnVec(d, eq.expr.d, r.model.field), true
	}

	return nil, false
}

// Options configures a solver invocation. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// MaxIterations bounds the main iteration loop.
	MaxIterations int

	// Tolerance is the residual target for declaring optimality.
	Tolerance float64

	// Penalty is the ADMM penalty parameter ρ.
	Penalty float64

	// Logger receives per-iteration residuals at Debug level and a
	// termination summary at Info level. Defaults to a no-op logger so
	// the library is silent unless asked.
	Logger zerolog.Logger
}

// DefaultOptions returns the documented solver defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 50000,
		Tolerance:     1e-7,
		Penalty:       1.0,
		Logger:        zerolog.Nop(),
	}
}

// Solver is the service contract satisfied by conic solvers, bundled or
// external. Solve must honor ctx cancellation between iterations and
// must never retain the model after returning.
type Solver interface {
	Solve(ctx context.Context, m *Model, opts Options) (*Result, error)
}
