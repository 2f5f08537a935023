// SPDX-License-Identifier: MIT

package entanglement

import (
	"context"
	"fmt"

	"github.com/qinfo-go/qinfo/conic"
	"github.com/qinfo-go/qinfo/dps"
	"github.com/qinfo-go/qinfo/qmat"
)

// SchmidtNumber tests whether ρ is compatible with Schmidt number at
// most s at hierarchy level n: the returned λ* is the largest
// visibility for which λρ + (1−λ)I/d still passes the relaxed
// Schmidt-number-s membership test. λ* ≈ 1 means the state is
// consistent with Schmidt number s at this level; λ* < 1 bounds the
// noise at which it stops being distinguishable from such states.
//
// For s == 1 the test is plain separability and delegates to
// RandomRobustness. For s > 1 the physical state is lifted into an
// A A' B' B space with an s-dimensional ancilla pair: the hierarchy
// runs on the [dA·s, s·dB] bipartition and the marginal is pulled back
// through Π = I_dA ⊗ ⟨Φ| ⊗ I_dB with Φ the unnormalized maximally
// entangled ket on the ancillas, together with the trace condition
// tr(extension marginal) = s.
func SchmidtNumber(ctx context.Context, rho *qmat.Dense, s int, dims []int, n int, opts ...Option) (float64, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if s < 1 || n < 1 {
		return 0, fmt.Errorf("s=%d, n=%d: %w", s, n, ErrArgs)
	}
	if s == 1 {
		lam, _, err := RandomRobustness(ctx, rho, dims, n, opts...)

		return lam, err
	}
	bp, err := resolveDims(rho, dims)
	if err != nil {
		return 0, err
	}
	dA, dB := bp[0], bp[1]
	d := dA * dB

	// Pull-back map from the ancilla-lifted space: Π contracts the A'B'
	// pair with the unnormalized maximally entangled ket.
	phi := qmat.MaxEntangled(s, false)
	bra := qmat.Zeros(1, s*s)
	for i, v := range phi {
		bra.Set(0, i, v)
	}
	pi := qmat.Kron(qmat.Kron(qmat.Eye(dA), bra), qmat.Eye(dB))

	m := conic.NewModel(o.field)
	lam := m.AddScalar()

	// Target λρ + (1−λ)I/d, grouped as λ(ρ − I/d) + I/d.
	mixed := qmat.Eye(d).Scale(complex(1/float64(d), 0))
	slope, err := m.ScaledExpr(lam, rho.Sub(mixed))
	if err != nil {
		return 0, err
	}
	offset, err := m.ConstExpr(mixed)
	if err != nil {
		return 0, err
	}

	assemblerOpts := []dps.Option{
		dps.WithName("schmidt_marginal"),
		dps.WithProjection(pi),
	}
	if o.ppt {
		assemblerOpts = append(assemblerOpts, dps.WithPPT())
	}
	ext, err := dps.AddExtension(m, slope.Add(offset), [2]int{dA * s, s * dB}, n, assemblerOpts...)
	if err != nil {
		return 0, err
	}
	if err = m.RequireScalarEqual("extension_trace", m.TraceLin(ext.Reduced), float64(s)); err != nil {
		return 0, err
	}

	// Visibility cap λ ≤ 1 as a 1×1 PSD block.
	one, err := m.ConstExpr(qmat.Eye(1))
	if err != nil {
		return 0, err
	}
	lamBlock, err := m.ScaledExpr(lam, qmat.Eye(1))
	if err != nil {
		return 0, err
	}
	m.RequirePSD(one.Sub(lamBlock))
	m.Maximize(m.ScalarLin(lam))

	res, err := o.solver.Solve(ctx, m, o.solverOpts)
	if err != nil {
		return 0, err
	}
	if !res.Status.Ok() {
		return 0, &SolveFailure{Op: "schmidt_number", Status: res.Status, Raw: res.Raw}
	}

	return res.Scalar(lam), nil
}
