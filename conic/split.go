// SPDX-License-Identifier: MIT

// Package conic: the bundled operator-splitting solver.
//
// The model is flattened into
//
//	minimize cᵀx  subject to  Ax = b,  Sx + s₀ ∈ K
//
// with K a product of PSD cones in codec coordinates. ADMM splits the
// cone membership into a copy variable z: the x-update is an
// equality-constrained least-squares step solved through a KKT system
// factorized once per solve, the z-update is a blockwise PSD projection
// (eigenvalue clipping), and the scaled dual u accumulates the residual.

package conic

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/qinfo-go/qinfo/qmat"
)

// SplitSolver is the bundled ADMM solver. The zero value is ready to use;
// it carries no state between solves.
type SplitSolver struct{}

// NewSplitSolver returns a SplitSolver.
func NewSplitSolver() *SplitSolver { return &SplitSolver{} }

// flat is the assembled numeric form of a model.
type flat struct {
	nx     int
	c      []float64
	a      *mat.Dense // mA × nx, nil when mA == 0
	b      []float64
	s      *mat.Dense // mS × nx, nil when mS == 0
	s0     []float64
	blocks []coneBlock
	rows   map[string][2]int // constraint name → [start, end) rows of A
}

type coneBlock struct {
	start, length, d int
}

// assemble flattens the model. The objective sign is normalized to
// minimization; the caller flips the reported objective back.
func assemble(m *Model) (*flat, error) {
	if m.relEnt != nil {
		return nil, fmt.Errorf("relative-entropy epigraph: %w", ErrUnsupportedCone)
	}
	if !m.hasObj {
		return nil, fmt.Errorf("solve without objective: %w", ErrModel)
	}

	f := &flat{nx: m.nx, rows: make(map[string][2]int)}

	f.c = make([]float64, m.nx)
	sign := 1.0
	if m.maximize {
		sign = -1
	}
	for j, v := range m.objective.Coeffs {
		f.c[j] = sign * v
	}

	// Equality rows: matrix equalities first, scalar equalities after.
	mA := 0
	for _, eq := range m.eqs {
		mA += len(eq.expr.k)
	}
	mA += len(m.scalarEqs)
	if mA > 0 {
		f.a = mat.NewDense(mA, m.nx, nil)
		f.b = make([]float64, mA)
		row := 0
		for _, eq := range m.eqs {
			n := len(eq.expr.k)
			f.rows[eq.name] = [2]int{row, row + n}
			for j, col := range eq.expr.cols {
				for i, v := range col {
					f.a.Set(row+i, j, v)
				}
			}
			for i, v := range eq.expr.k {
				f.b[row+i] = -v
			}
			row += n
		}
		for _, se := range m.scalarEqs {
			f.rows[se.name] = [2]int{row, row + 1}
			for j, v := range se.lin.Coeffs {
				f.a.Set(row, j, v)
			}
			f.b[row] = se.rhs - se.lin.Const
			row += 1
		}
	}

	// Cone rows: one block per PSD variable, then per PSD constraint.
	mS := 0
	for _, v := range m.psd {
		mS += v.length
	}
	for _, e := range m.psdCons {
		mS += len(e.k)
	}
	if mS > 0 {
		f.s = mat.NewDense(mS, m.nx, nil)
		f.s0 = make([]float64, mS)
		row := 0
		for _, v := range m.psd {
			f.blocks = append(f.blocks, coneBlock{start: row, length: v.length, d: v.d})
			for i := 0; i < v.length; i++ {
				f.s.Set(row+i, v.off+i, 1)
			}
			row += v.length
		}
		for _, e := range m.psdCons {
			n := len(e.k)
			f.blocks = append(f.blocks, coneBlock{start: row, length: n, d: e.d})
			for j, col := range e.cols {
				for i, v := range col {
					f.s.Set(row+i, j, v)
				}
			}
			copy(f.s0[row:row+n], e.k)
			row += n
		}
	}

	return f, nil
}

// Solve runs the splitting iteration. It honors ctx between iterations.
func (s *SplitSolver) Solve(ctx context.Context, m *Model, opts Options) (*Result, error) {
	f, err := assemble(m)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	rho := opts.Penalty
	const ridge = 1e-9

	mA := 0
	if f.a != nil {
		mA, _ = f.a.Dims()
	}
	mS := 0
	if f.s != nil {
		mS, _ = f.s.Dims()
	}

	// KKT matrix [ρSᵀS + εI, Aᵀ; A, −εI], factorized once.
	n := f.nx + mA
	kkt := mat.NewDense(n, n, nil)
	if f.s != nil {
		var sts mat.Dense
		sts.Mul(f.s.T(), f.s)
		for i := 0; i < f.nx; i++ {
			for j := 0; j < f.nx; j++ {
				kkt.Set(i, j, rho*sts.At(i, j))
			}
		}
	}
	for i := 0; i < f.nx; i++ {
		kkt.Set(i, i, kkt.At(i, i)+ridge)
	}
	for i := 0; i < mA; i++ {
		for j := 0; j < f.nx; j++ {
			v := f.a.At(i, j)
			kkt.Set(f.nx+i, j, v)
			kkt.Set(j, f.nx+i, v)
		}
		kkt.Set(f.nx+i, f.nx+i, -ridge)
	}

	var lu mat.LU
	lu.Factorize(kkt)

	x := make([]float64, f.nx)
	nu := make([]float64, mA)
	z := make([]float64, mS)
	u := make([]float64, mS)
	v := make([]float64, mS)
	zPrev := make([]float64, mS)
	rhs := mat.NewVecDense(n, nil)
	sol := mat.NewVecDense(n, nil)

	status := StatusMaxIterations
	raw := ""
	var rPrim, rDual float64
	for iter := 0; iter < opts.MaxIterations; iter++ {
		if iter%128 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		// x-update: KKT solve with rhs [ρSᵀ(z−u−s₀) − c; b].
		for i := 0; i < f.nx; i++ {
			rhs.SetVec(i, -f.c[i])
		}
		if f.s != nil {
			for i := 0; i < mS; i++ {
				v[i] = z[i] - u[i] - f.s0[i]
			}
			for j := 0; j < f.nx; j++ {
				var acc float64
				for i := 0; i < mS; i++ {
					acc += f.s.At(i, j) * v[i]
				}
				rhs.SetVec(j, rhs.AtVec(j)+rho*acc)
			}
		}
		for i := 0; i < mA; i++ {
			rhs.SetVec(f.nx+i, f.b[i])
		}
		if err := lu.SolveVecTo(sol, false, rhs); err != nil {
			return nil, fmt.Errorf("conic: KKT solve failed: %w", err)
		}
		for i := 0; i < f.nx; i++ {
			x[i] = sol.AtVec(i)
		}
		for i := 0; i < mA; i++ {
			nu[i] = sol.AtVec(f.nx + i)
		}

		if mS == 0 {
			status = StatusOptimal
			raw = "optimal: no cone constraints, single KKT solve"

			break
		}

		// z-update: blockwise PSD projection of Sx + s₀ + u.
		for i := 0; i < mS; i++ {
			var acc float64
			for j := 0; j < f.nx; j++ {
				acc += f.s.At(i, j) * x[j]
			}
			v[i] = acc + f.s0[i]
		}
		copy(zPrev, z)
		for _, blk := range f.blocks {
			seg := make([]float64, blk.length)
			for i := range seg {
				seg[i] = v[blk.start+i] + u[blk.start+i]
			}
			proj, perr := qmat.ProjectPSD(qmat.UnVec(seg, blk.d, m.field))
			if perr != nil {
				return nil, fmt.Errorf("conic: cone projection: %w", perr)
			}
			copy(z[blk.start:blk.start+blk.length], qmat.Vec(proj, m.field))
		}

		// u-update and residuals.
		rPrim, rDual = 0, 0
		for i := 0; i < mS; i++ {
			r := v[i] - z[i]
			u[i] += r
			if a := math.Abs(r); a > rPrim {
				rPrim = a
			}
		}
		for j := 0; j < f.nx; j++ {
			var acc float64
			for i := 0; i < mS; i++ {
				acc += f.s.At(i, j) * (z[i] - zPrev[i])
			}
			if a := rho * math.Abs(acc); a > rDual {
				rDual = a
			}
		}

		if iter%1000 == 0 {
			log.Debug().Int("iter", iter).Float64("primal", rPrim).Float64("dual", rDual).Msg("split solver residuals")
		}

		if rPrim < opts.Tolerance && rDual < opts.Tolerance {
			status = StatusOptimal
			raw = fmt.Sprintf("optimal: primal=%.2e dual=%.2e", rPrim, rDual)

			break
		}
	}

	if status != StatusOptimal {
		if rPrim < 1e3*opts.Tolerance && rDual < 1e3*opts.Tolerance {
			status = StatusInaccurate
		}
		raw = fmt.Sprintf("%s: primal=%.2e dual=%.2e after %d iterations", status, rPrim, rDual, opts.MaxIterations)
	}

	obj := m.objective.eval(x)
	log.Info().Str("status", status.String()).Float64("objective", obj).Msg("split solver finished")

	duals := make(map[string][]float64, len(f.rows))
	for name, span := range f.rows {
		dv := make([]float64, span[1]-span[0])
		for i := range dv {
			dv[i] = -nu[span[0]+i]
		}
		duals[name] = dv
	}

	return &Result{
		Status:    status,
		Raw:       raw,
		Objective: obj,
		x:         x,
		duals:     duals,
		model:     m,
	}, nil
}
