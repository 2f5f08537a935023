package conic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinfo-go/qinfo/conic"
	"github.com/qinfo-go/qinfo/qmat"
)

// solve is a test helper running the split solver with defaults.
func solve(t *testing.T, m *conic.Model) *conic.Result {
	t.Helper()

	res, err := conic.NewSplitSolver().Solve(context.Background(), m, conic.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Status.Ok(), "solver status %s (%s)", res.Status, res.Raw)

	return res
}

// TestSplitSolver_MaxEigenvalue: min t s.t. tI − C ⪰ 0 equals λmax(C).
func TestSplitSolver_MaxEigenvalue(t *testing.T) {
	c := qmat.NewDense(2, 2, []complex128{2, 1, 1, 2}) // spectrum {1, 3}

	m := conic.NewModel(qmat.Real)
	tv := m.AddScalar()
	tid, err := m.ScaledExpr(tv, qmat.Eye(2))
	require.NoError(t, err)
	ce, err := m.ConstExpr(c)
	require.NoError(t, err)
	m.RequirePSD(tid.Sub(ce))
	m.Minimize(m.ScalarLin(tv))

	res := solve(t, m)
	assert.InDelta(t, 3, res.Objective, 1e-4, "λmax of [[2,1],[1,2]]")
	assert.InDelta(t, 3, res.Scalar(tv), 1e-4)
}

// TestSplitSolver_MinEigenvalueSDP: min ⟨C,X⟩ s.t. tr X = 1, X ⪰ 0
// equals λmin(C); the dual of the trace constraint equals λmin as well.
func TestSplitSolver_MinEigenvalueSDP(t *testing.T) {
	c := qmat.NewDense(2, 2, []complex128{2, 1, 1, 2})

	m := conic.NewModel(qmat.Real)
	x := m.AddPSDVariable(2)
	xe := m.PSDExpr(x)
	lin, err := m.InnerLin(c, xe)
	require.NoError(t, err)
	require.NoError(t, m.RequireScalarEqual("trace", m.TraceLin(xe), 1))
	m.Minimize(lin)

	res := solve(t, m)
	assert.InDelta(t, 1, res.Objective, 1e-4, "λmin of [[2,1],[1,2]]")

	// Primal optimum is the projector onto the minimal eigenvector.
	xStar := res.Matrix(x)
	assert.InDelta(t, 0.5, real(xStar.At(0, 0)), 1e-3)
	assert.InDelta(t, -0.5, real(xStar.At(0, 1)), 1e-3)

	dual, ok := res.Dual("trace")
	require.True(t, ok)
	require.Len(t, dual, 1)
	assert.InDelta(t, 1, dual[0], 1e-2, "trace-constraint dual is λmin")
}

// TestSplitSolver_ComplexField solves a Hermitian problem end to end:
// λmax of σ_y through the Hermitian PSD cone.
func TestSplitSolver_ComplexField(t *testing.T) {
	y := qmat.NewDense(2, 2, []complex128{
		0, complex(0, -1),
		complex(0, 1), 0,
	})

	m := conic.NewModel(qmat.Complex)
	tv := m.AddScalar()
	tid, err := m.ScaledExpr(tv, qmat.Eye(2))
	require.NoError(t, err)
	ye, err := m.ConstExpr(y)
	require.NoError(t, err)
	m.RequirePSD(tid.Sub(ye))
	m.Minimize(m.ScalarLin(tv))

	res := solve(t, m)
	assert.InDelta(t, 1, res.Objective, 1e-4, "λmax(σ_y) = 1")
}

// TestSplitSolver_Maximize flips the objective sense correctly:
// max t s.t. C − tI ⪰ 0 equals λmin(C).
func TestSplitSolver_Maximize(t *testing.T) {
	c := qmat.NewDense(2, 2, []complex128{2, 1, 1, 2})

	m := conic.NewModel(qmat.Real)
	tv := m.AddScalar()
	ce, err := m.ConstExpr(c)
	require.NoError(t, err)
	tid, err := m.ScaledExpr(tv, qmat.Eye(2))
	require.NoError(t, err)
	m.RequirePSD(ce.Sub(tid))
	m.Maximize(m.ScalarLin(tv))

	res := solve(t, m)
	assert.InDelta(t, 1, res.Objective, 1e-4, "λmin via maximization")
}

// TestSplitSolver_EqualityOnly solves a model with no cones in one KKT
// step.
func TestSplitSolver_EqualityOnly(t *testing.T) {
	m := conic.NewModel(qmat.Real)
	s := m.AddScalar()
	require.NoError(t, m.RequireScalarEqual("pin", m.ScalarLin(s), 4))
	m.Minimize(m.ScalarLin(s))

	res := solve(t, m)
	assert.InDelta(t, 4, res.Objective, 1e-6)
}

// TestSplitSolver_RejectsEpigraph: the ADMM solver cannot handle the
// relative-entropy cone.
func TestSplitSolver_RejectsEpigraph(t *testing.T) {
	m := conic.NewModel(qmat.Complex)
	sigma := m.PSDExpr(m.AddPSDVariable(2))
	tv := m.AddScalar()
	require.NoError(t, m.RequireRelEntropyEpigraph(tv, qmat.Eye(2).Scale(0.5), sigma))
	m.Minimize(m.ScalarLin(tv))

	_, err := conic.NewSplitSolver().Solve(context.Background(), m, conic.DefaultOptions())
	assert.ErrorIs(t, err, conic.ErrUnsupportedCone)
}

// TestSplitSolver_NoObjective rejects a model without an objective.
func TestSplitSolver_NoObjective(t *testing.T) {
	m := conic.NewModel(qmat.Real)
	m.AddPSDVariable(2)

	_, err := conic.NewSplitSolver().Solve(context.Background(), m, conic.DefaultOptions())
	assert.ErrorIs(t, err, conic.ErrModel)
}

// TestSplitSolver_ContextCancel honors an already-cancelled context.
func TestSplitSolver_ContextCancel(t *testing.T) {
	m := conic.NewModel(qmat.Real)
	tv := m.AddScalar()
	tid, err := m.ScaledExpr(tv, qmat.Eye(2))
	require.NoError(t, err)
	m.RequirePSD(tid)
	m.Minimize(m.ScalarLin(tv))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = conic.NewSplitSolver().Solve(ctx, m, conic.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSolveRelEntropy_Unconstrained: min D(ρ‖σ) over all states σ is 0,
// attained at σ = ρ.
func TestSolveRelEntropy_Unconstrained(t *testing.T) {
	rho := qmat.NewDense(2, 2, []complex128{0.75, 0, 0, 0.25})

	m := conic.NewModel(qmat.Real)
	sid := m.AddPSDVariable(2)
	sigma := m.PSDExpr(sid)
	require.NoError(t, m.RequireScalarEqual("trace", m.TraceLin(sigma), 1))
	tv := m.AddScalar()
	require.NoError(t, m.RequireRelEntropyEpigraph(tv, rho, sigma))
	m.Minimize(m.ScalarLin(tv))

	res, err := conic.SolveRelEntropy(context.Background(), conic.NewSplitSolver(), m, conic.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Status.Ok(), "status %s (%s)", res.Status, res.Raw)

	assert.InDelta(t, 0, res.Objective, 0.05, "D(ρ‖σ*) should approach 0")
	sStar := res.Matrix(sid)
	assert.InDelta(t, 0.75, real(sStar.At(0, 0)), 0.1, "σ* should approach ρ")
	assert.InDelta(t, 1, real(sStar.Trace()), 1e-3, "σ* stays normalized")
}

// TestSolveRelEntropy_RequiresEpigraph validates the driver's contract.
func TestSolveRelEntropy_RequiresEpigraph(t *testing.T) {
	m := conic.NewModel(qmat.Real)
	tv := m.AddScalar()
	m.Minimize(m.ScalarLin(tv))

	_, err := conic.SolveRelEntropy(context.Background(), conic.NewSplitSolver(), m, conic.DefaultOptions())
	assert.ErrorIs(t, err, conic.ErrUnsupportedCone)

	// Wrong objective: not the epigraph scalar.
	m2 := conic.NewModel(qmat.Real)
	sigma := m2.PSDExpr(m2.AddPSDVariable(2))
	tv2 := m2.AddScalar()
	require.NoError(t, m2.RequireRelEntropyEpigraph(tv2, qmat.Eye(2).Scale(0.5), sigma))
	other := m2.AddScalar()
	m2.Minimize(m2.ScalarLin(other))
	_, err = conic.SolveRelEntropy(context.Background(), conic.NewSplitSolver(), m2, conic.DefaultOptions())
	assert.ErrorIs(t, err, conic.ErrModel)
}
