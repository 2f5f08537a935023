// SPDX-License-Identifier: MIT

package entanglement

import (
	"context"
	"fmt"
	"math"

	"github.com/qinfo-go/qinfo/conic"
	"github.com/qinfo-go/qinfo/dps"
	"github.com/qinfo-go/qinfo/qmat"
)

// RelativeEntropyBound lower-bounds the relative entropy of entanglement of ρ
// at hierarchy level n: min D(ρ‖σ) in bits over normalized σ in the
// relaxed separable set. It returns the bound together with the
// minimizing σ*, the closest relaxed-separable state found.
//
// The epigraph is driven by conic.SolveRelEntropy over the configured
// base solver, so a solver error from the linearized subproblems
// propagates as-is while a non-Ok terminal status becomes a
// *SolveFailure like the other estimators.
func RelativeEntropyBound(ctx context.Context, rho *qmat.Dense, dims []int, n int, opts ...Option) (float64, *qmat.Dense, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if n < 1 {
		return 0, nil, fmt.Errorf("level n=%d: %w", n, ErrArgs)
	}
	bp, err := resolveDims(rho, dims)
	if err != nil {
		return 0, nil, err
	}
	d, _ := rho.Dims()

	m := conic.NewModel(o.field)
	sid := m.AddPSDVariable(d)
	sigma := m.PSDExpr(sid)
	if err = m.RequireScalarEqual("sigma_trace", m.TraceLin(sigma), 1); err != nil {
		return 0, nil, err
	}

	assemblerOpts := []dps.Option{dps.WithName("separable_marginal")}
	if o.ppt {
		assemblerOpts = append(assemblerOpts, dps.WithPPT())
	}
	if _, err = dps.AddExtension(m, sigma, bp, n, assemblerOpts...); err != nil {
		return 0, nil, err
	}

	tv := m.AddScalar()
	if err = m.RequireRelEntropyEpigraph(tv, rho, sigma); err != nil {
		return 0, nil, err
	}
	m.Minimize(m.ScalarLin(tv))

	res, err := conic.SolveRelEntropy(ctx, o.solver, m, o.solverOpts)
	if err != nil {
		return 0, nil, err
	}
	if !res.Status.Ok() {
		return 0, nil, &SolveFailure{Op: "relative_entropy_bound", Status: res.Status, Raw: res.Raw}
	}

	return res.Objective / math.Ln2, res.Matrix(sid), nil
}
