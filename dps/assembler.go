// SPDX-License-Identifier: MIT

package dps

import (
	"fmt"

	"github.com/qinfo-go/qinfo/conic"
	"github.com/qinfo-go/qinfo/qmat"
	"github.com/qinfo-go/qinfo/symmetric"
)

// Extension is the handle returned by AddExtension, pointing back at the
// model objects the caller may want to constrain or extract further.
type Extension struct {
	// Var is the PSD variable holding the extended state in
	// symmetric-subspace coordinates, size dA·C(n+dB−1, n).
	Var conic.VarID

	// EqName names the marginal equality constraint; its dual in the
	// solver result is the witness candidate of the relaxation.
	EqName string

	// Reduced is the physical dA·dB marginal of the lifted extension,
	// before any projection is applied.
	Reduced *conic.Expr
}

// AddExtension adds a level-n symmetric extension of the bipartition dims
// to the model and equates its physical marginal (optionally pushed
// through a projection) with the affine target expression. It returns a
// handle to the extension variable, the marginal equality name and the
// unprojected marginal expression.
//
// The target carries its own validation history: constant targets built
// through Model.ConstExpr have already been checked for Hermiticity, so
// a non-Hermitian state never reaches the assembler.
func AddExtension(m *conic.Model, target *conic.Expr, dims [2]int, n int, opts ...Option) (*Extension, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dA, dB := dims[0], dims[1]
	if dA <= 0 || dB <= 0 || n < 1 {
		return nil, fmt.Errorf("dims=%v, n=%d: %w", dims, n, ErrArgs)
	}

	wantDim := dA * dB
	if o.projection != nil {
		pr, pc := o.projection.Dims()
		if pc != dA*dB {
			return nil, fmt.Errorf("projection is %d×%d, want %d columns: %w", pr, pc, dA*dB, ErrProjection)
		}
		wantDim = pr
	}
	if target.Dim() != wantDim {
		return nil, fmt.Errorf("target dim %d, want %d: %w", target.Dim(), wantDim, ErrTarget)
	}

	psym, err := symmetric.Projection(dB, n)
	if err != nil {
		return nil, err
	}
	v := qmat.Kron(qmat.Eye(dA), psym)
	vDag := v.Dagger()
	liftDim, _ := v.Dims()

	id := m.AddPSDVariable(dA * symmetric.SubspaceDim(dB, n))
	lifted := m.PSDExpr(id).ApplyLinear(liftDim, func(x *qmat.Dense) *qmat.Dense {
		return v.Mul(x).Mul(vDag)
	})

	// Extended factorization: subsystem 0 is A, 1..n are the B copies.
	// Bosonic symmetry makes the copies interchangeable, so keeping the
	// first copy and tracing the rest loses nothing.
	extDims := make([]int, n+1)
	extDims[0] = dA
	for i := 1; i <= n; i++ {
		extDims[i] = dB
	}
	traceOut := make([]int, 0, n-1)
	for i := 2; i <= n; i++ {
		traceOut = append(traceOut, i)
	}
	reduced := lifted
	if len(traceOut) > 0 {
		reduced = lifted.ApplyLinear(dA*dB, func(x *qmat.Dense) *qmat.Dense {
			return mustSubsystem(qmat.PartialTrace(x, traceOut, extDims))
		})
	}

	marginal := reduced
	if o.projection != nil {
		p, pDag := o.projection, o.projection.Dagger()
		marginal = reduced.ApplyLinear(wantDim, func(x *qmat.Dense) *qmat.Dense {
			return p.Mul(x).Mul(pDag)
		})
	}
	if err = m.RequireEqual(o.name, marginal, target); err != nil {
		return nil, err
	}

	if o.ppt {
		// Cumulative ladder: transpose the first j extension copies for
		// j = 1..n. Bosonic symmetry collapses non-prefix subsets into
		// these, so the ladder is exhaustive.
		for j := 1; j <= n; j++ {
			sys := make([]int, j)
			for i := range sys {
				sys[i] = i + 1
			}
			m.RequirePSD(lifted.ApplyLinear(liftDim, func(x *qmat.Dense) *qmat.Dense {
				return mustSubsystem(qmat.PartialTranspose(x, sys, extDims))
			}))
		}
	}

	return &Extension{Var: id, EqName: o.name, Reduced: reduced}, nil
}

// mustSubsystem unwraps subsystem-operation results inside linear-map
// closures; the assembler builds its own dims lists, so an error here is
// an internal bug.
func mustSubsystem(m *qmat.Dense, err error) *qmat.Dense {
	if err != nil {
		panic(err)
	}

	return m
}
