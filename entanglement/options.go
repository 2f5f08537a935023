// SPDX-License-Identifier: MIT

package entanglement

import (
	"github.com/qinfo-go/qinfo/conic"
	"github.com/qinfo-go/qinfo/qmat"
)

// Option customizes one estimator call.
type Option func(*options)

type options struct {
	solver     conic.Solver
	solverOpts conic.Options
	ppt        bool
	field      qmat.Field
}

func defaultOptions() options {
	return options{
		solver:     conic.NewSplitSolver(),
		solverOpts: conic.DefaultOptions(),
		ppt:        true,
		field:      qmat.Complex,
	}
}

// WithSolver swaps the conic solver (default: the bundled splitting
// solver). Passing nil panics.
func WithSolver(s conic.Solver) Option {
	if s == nil {
		panic("entanglement: WithSolver(nil)")
	}

	return func(o *options) { o.solver = s }
}

// WithSolverOptions overrides the solver invocation options.
func WithSolverOptions(opts conic.Options) Option {
	return func(o *options) { o.solverOpts = opts }
}

// WithPPT toggles the partial-transpose ladder of the hierarchy
// (default on). Disabling it loosens the relaxation considerably; at
// level 1 the ladder is what carries all the detection power.
func WithPPT(enabled bool) Option {
	return func(o *options) { o.ppt = enabled }
}

// WithField selects the coefficient field of the conic model (default
// Complex). Real restricts every variable to real symmetric matrices,
// roughly halving the model size for states with real entries.
func WithField(f qmat.Field) Option {
	return func(o *options) { o.field = f }
}
