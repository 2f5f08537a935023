// SPDX-License-Identifier: MIT

package entanglement

import (
	"context"
	"fmt"

	"github.com/qinfo-go/qinfo/conic"
	"github.com/qinfo-go/qinfo/dps"
	"github.com/qinfo-go/qinfo/qmat"
)

// RandomRobustness lower-bounds the random robustness of ρ at hierarchy
// level n: the smallest λ for which ρ + λI passes the level-n
// relaxation. A strictly positive value certifies entanglement. On
// success it returns λ* together with the symmetrized dual of the
// marginal equality, the witness candidate W: tr(Wρ) recovers the bound
// for states detected by this relaxation level.
//
// dims may be nil to infer equal subsystem sizes.
func RandomRobustness(ctx context.Context, rho *qmat.Dense, dims []int, n int, opts ...Option) (float64, *qmat.Dense, error) {
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
	target, err := m.ConstExpr(rho)
	if err != nil {
		return 0, nil, err
	}
	lam := m.AddScalar()
	shift, err := m.ScaledExpr(lam, qmat.Eye(d))
	if err != nil {
		return 0, nil, err
	}

	assemblerOpts := []dps.Option{dps.WithName("robustness_marginal")}
	if o.ppt {
		assemblerOpts = append(assemblerOpts, dps.WithPPT())
	}
	ext, err := dps.AddExtension(m, target.Add(shift), bp, n, assemblerOpts...)
	if err != nil {
		return 0, nil, err
	}
	m.Minimize(m.ScalarLin(lam))

	res, err := o.solver.Solve(ctx, m, o.solverOpts)
	if err != nil {
		return 0, nil, err
	}
	if !res.Status.Ok() {
		return 0, nil, &SolveFailure{Op: "random_robustness", Status: res.Status, Raw: res.Raw}
	}

	var witness *qmat.Dense
	if w, ok := res.DualMatrix(ext.EqName); ok {
		witness = symmetrizeWitness(w)
	}

	return res.Scalar(lam), witness, nil
}
