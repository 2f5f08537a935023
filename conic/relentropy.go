// SPDX-License-Identifier: MIT

// Package conic: Frank–Wolfe driver for the relative-entropy epigraph.
//
// The epigraph cone has no cheap Euclidean projection, so models whose
// objective is the epigraph scalar are driven by conditional-gradient
// iterations instead: at the current feasible σ the convex objective
// D(ρ‖σ) is linearized through its Fréchet derivative, the linearized
// problem (a plain PSD/equality model) goes to the base solver, and an
// exact line search moves toward the returned vertex. The duality gap
// ⟨∇f, σ − σ̂⟩ upper-bounds the suboptimality and decides termination.

package conic

import (
	"context"
	"fmt"
	"math"

	"github.com/qinfo-go/qinfo/qmat"
)

const (
	fwMaxIterations = 80
	fwLineSearch    = 48
	eigFloor        = 1e-12
)

// SolveRelEntropy minimizes the relative-entropy epigraph scalar of m
// over the model's remaining (affine + PSD) feasible set, delegating
// linearized subproblems to base. The model must carry exactly one
// RequireRelEntropyEpigraph constraint and the objective Minimize(t) on
// its epigraph scalar. The reported objective is D(ρ‖σ*) in nats.
func SolveRelEntropy(ctx context.Context, base Solver, m *Model, opts Options) (*Result, error) {
	if m.relEnt == nil {
		return nil, fmt.Errorf("no relative-entropy epigraph in model: %w", ErrUnsupportedCone)
	}
	if err := checkEpigraphObjective(m); err != nil {
		return nil, err
	}

	rho := m.relEnt.rho
	sigma := m.relEnt.sigma
	log := opts.Logger

	// Feasible starting point: zero-objective solve of the plain model.
	feas := m.cloneStructure()
	feas.Minimize(LinExpr{})
	res0, err := base.Solve(ctx, feas, opts)
	if err != nil {
		return nil, err
	}
	if !res0.Status.Ok() {
		return &Result{Status: res0.Status, Raw: "feasibility stage: " + res0.Raw, model: m}, nil
	}

	x := append([]float64(nil), res0.x...)
	status := StatusMaxIterations
	raw := ""
	var f float64

	for k := 0; k < fwMaxIterations; k++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		var grad *qmat.Dense
		f, grad, err = relEntValueGrad(rho, sigma.eval(x))
		if err != nil {
			return nil, err
		}

		lin, lerr := m.InnerLin(grad, sigma)
		if lerr != nil {
			return nil, lerr
		}

		sub := m.cloneStructure()
		sub.Minimize(lin)
		vertex, serr := base.Solve(ctx, sub, opts)
		if serr != nil {
			return nil, serr
		}
		if !vertex.Status.Ok() {
			return &Result{Status: vertex.Status, Raw: fmt.Sprintf("linearized subproblem %d: %s", k, vertex.Raw), model: m}, nil
		}

		gap := lin.eval(x) - lin.eval(vertex.x)
		log.Debug().Int("iter", k).Float64("value", f).Float64("gap", gap).Msg("frank-wolfe step")
		if gap <= 1e-6+1e-4*math.Abs(f) {
			status = StatusOptimal
			raw = fmt.Sprintf("frank-wolfe converged: gap=%.2e after %d iterations", gap, k)

			break
		}

		gamma := lineSearch(rho, sigma, x, vertex.x)
		for i := range x {
			x[i] += gamma * (vertex.x[i] - x[i])
		}
	}

	f, _, err = relEntValueGrad(rho, sigma.eval(x))
	if err != nil {
		return nil, err
	}
	if status != StatusOptimal {
		raw = fmt.Sprintf("max_iterations: value=%.6e after %d frank-wolfe iterations", f, fwMaxIterations)
		status = StatusInaccurate
	}

	// Surface the epigraph scalar at its tight value.
	x[m.scalarOff[m.relEnt.t]] = f
	log.Info().Str("status", status.String()).Float64("objective", f).Msg("relative-entropy solve finished")

	return &Result{
		Status:    status,
		Raw:       raw,
		Objective: f,
		x:         x,
		duals:     map[string][]float64{},
		model:     m,
	}, nil
}

func checkEpigraphObjective(m *Model) error {
	if !m.hasObj || m.maximize {
		return fmt.Errorf("relative-entropy model must minimize its epigraph scalar: %w", ErrModel)
	}
	tOff := m.scalarOff[m.relEnt.t]
	if len(m.objective.Coeffs) != 1 || m.objective.Coeffs[tOff] != 1 || m.objective.Const != 0 {
		return fmt.Errorf("objective is not the epigraph scalar: %w", ErrModel)
	}

	return nil
}

// lineSearch ternary-searches the convex restriction γ ↦ D(ρ‖σ+γΔ) on
// [0, 1].
func lineSearch(rho *qmat.Dense, sigma *Expr, x, vert []float64) float64 {
	point := make([]float64, len(x))
	eval := func(gamma float64) float64 {
		for i := range x {
			point[i] = x[i] + gamma*(vert[i]-x[i])
		}
		f, _, err := relEntValueGrad(rho, sigma.eval(point))
		if err != nil {
			return math.Inf(1)
		}

		return f
	}

	lo, hi := 0.0, 1.0
	for i := 0; i < fwLineSearch; i++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if eval(m1) <= eval(m2) {
			hi = m2
		} else {
			lo = m1
		}
	}
	gamma := (lo + hi) / 2
	if gamma <= 0 || eval(gamma) > eval(0) {
		return 0
	}

	return gamma
}

// relEntValueGrad computes D(ρ‖σ) in nats and its gradient in σ.
// Eigenvalues of σ are floored at a small positive value, so a boundary
// σ yields a large finite value instead of +Inf; the support convention
// of entropy.RelativeEntropy is not needed inside the optimizer.
func relEntValueGrad(rho, sigma *qmat.Dense) (float64, *qmat.Dense, error) {
	rVals, _, err := qmat.EigH(rho)
	if err != nil {
		return 0, nil, err
	}
	var hRho float64
	for _, mu := range rVals {
		if mu > 0 {
			hRho += mu * math.Log(mu)
		}
	}

	sVals, sVecs, err := qmat.EigH(sigma)
	if err != nil {
		return 0, nil, err
	}
	d, _ := sigma.Dims()
	floor := eigFloor * (1 + math.Abs(sVals[d-1]))
	lam := make([]float64, d)
	logLam := make([]float64, d)
	for i, v := range sVals {
		if v < floor {
			v = floor
		}
		lam[i] = v
		logLam[i] = math.Log(v)
	}

	// ρ in the eigenbasis of σ.
	rhoTilde := sVecs.Dagger().Mul(rho).Mul(sVecs)

	f := hRho
	for i := 0; i < d; i++ {
		f -= real(rhoTilde.At(i, i)) * logLam[i]
	}

	// ∇σ D = −V (φ ∘ ρ̃) V†, φ the first divided difference of log.
	gTilde := qmat.Zeros(d, d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			var phi float64
			if math.Abs(lam[i]-lam[j]) < 1e-12*(lam[i]+lam[j]) {
				phi = 1 / lam[i]
			} else {
				phi = (logLam[i] - logLam[j]) / (lam[i] - lam[j])
			}
			gTilde.Set(i, j, -complex(phi, 0)*rhoTilde.At(i, j))
		}
	}
	grad := sVecs.Mul(gTilde).Mul(sVecs.Dagger())

	// Symmetrize away round-off so the gradient is exactly Hermitian.
	return f, grad.Add(grad.Dagger()).Scale(0.5), nil
}
