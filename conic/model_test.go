package conic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinfo-go/qinfo/conic"
	"github.com/qinfo-go/qinfo/qmat"
)

// TestModel_ConstExprValidation rejects non-Hermitian constants before
// any constraint is built.
func TestModel_ConstExprValidation(t *testing.T) {
	m := conic.NewModel(qmat.Complex)

	_, err := m.ConstExpr(qmat.NewDense(2, 2, []complex128{0, 1, 2, 0}))
	assert.ErrorIs(t, err, conic.ErrNotHermitian)

	_, err = m.ConstExpr(qmat.Eye(2))
	assert.NoError(t, err)
}

// TestModel_DuplicateName rejects reusing a constraint name.
func TestModel_DuplicateName(t *testing.T) {
	m := conic.NewModel(qmat.Real)
	x := m.PSDExpr(m.AddPSDVariable(2))
	c, err := m.ConstExpr(qmat.Eye(2))
	require.NoError(t, err)

	require.NoError(t, m.RequireEqual("fix", x, c))
	err = m.RequireEqual("fix", x, c)
	assert.ErrorIs(t, err, conic.ErrModel)

	err = m.RequireScalarEqual("", m.TraceLin(x), 1)
	assert.ErrorIs(t, err, conic.ErrModel, "empty names are rejected")
}

// TestModel_TraceLin evaluates tr through the codec inner product.
func TestModel_TraceLin(t *testing.T) {
	m := conic.NewModel(qmat.Complex)
	id := m.AddPSDVariable(2)
	lin := m.TraceLin(m.PSDExpr(id))

	// tr over the hvec coordinates touches exactly the diagonal slots.
	assert.Len(t, lin.Coeffs, 2)
	assert.Zero(t, lin.Const)
}

// TestModel_SecondEpigraphRejected allows at most one relative-entropy
// epigraph per model.
func TestModel_SecondEpigraphRejected(t *testing.T) {
	m := conic.NewModel(qmat.Complex)
	sigma := m.PSDExpr(m.AddPSDVariable(2))
	tt := m.AddScalar()
	rho := qmat.Eye(2).Scale(0.5)

	require.NoError(t, m.RequireRelEntropyEpigraph(tt, rho, sigma))
	err := m.RequireRelEntropyEpigraph(tt, rho, sigma)
	assert.ErrorIs(t, err, conic.ErrModel)
}

// TestStatus_Strings pins the raw status vocabulary.
func TestStatus_Strings(t *testing.T) {
	assert.Equal(t, "optimal", conic.StatusOptimal.String())
	assert.Equal(t, "infeasible", conic.StatusInfeasible.String())
	assert.True(t, conic.StatusOptimal.Ok())
	assert.True(t, conic.StatusInaccurate.Ok())
	assert.False(t, conic.StatusMaxIterations.Ok())
	assert.False(t, conic.StatusUnknown.Ok())
}
