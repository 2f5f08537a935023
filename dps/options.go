// SPDX-License-Identifier: MIT

package dps

import "github.com/qinfo-go/qinfo/qmat"

// Option customizes one AddExtension call.
type Option func(*options)

type options struct {
	ppt        bool
	projection *qmat.Dense
	name       string
}

func defaultOptions() options {
	return options{name: "dps_marginal"}
}

// WithPPT adds the cumulative partial-transpose ladder: for every prefix
// of extension copies the partially transposed extended state must stay
// PSD. At level 1 this is exactly the PPT criterion.
func WithPPT() Option {
	return func(o *options) { o.ppt = true }
}

// WithProjection post-composes the marginal with p: the equality becomes
// p·marginal·p† == target. p must have dA·dB columns; its row count sets
// the required target dimension. Passing nil panics.
func WithProjection(p *qmat.Dense) Option {
	if p == nil {
		panic("dps: WithProjection(nil)")
	}

	return func(o *options) { o.projection = p }
}

// WithName overrides the marginal equality constraint name (default
// "dps_marginal"); the name keys the constraint's dual in the solver
// result. Empty names panic.
func WithName(name string) Option {
	if name == "" {
		panic("dps: WithName with empty name")
	}

	return func(o *options) { o.name = name }
}
