package entropy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinfo-go/qinfo/entropy"
	"github.com/qinfo-go/qinfo/qmat"
)

// TestRelativeEntropy_SelfIsZero: D(ρ‖ρ) ≈ 0 for mixed and rotated states.
func TestRelativeEntropy_SelfIsZero(t *testing.T) {
	states := []*qmat.Dense{
		maxMixed(3),
		qmat.NewDense(2, 2, []complex128{
			0.7, complex(0.1, 0.2),
			complex(0.1, -0.2), 0.3,
		}),
	}
	for _, rho := range states {
		d, err := entropy.RelativeEntropy(2, rho, rho)
		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	}
}

// TestRelativeEntropy_KnownValue: D(|0⟩⟨0| ‖ I/2) = 1 bit.
func TestRelativeEntropy_KnownValue(t *testing.T) {
	rho := qmat.Ketbra([]complex128{1, 0})
	d, err := entropy.RelativeEntropy(2, rho, maxMixed(2))
	require.NoError(t, err)
	assert.InDelta(t, 1, d, 1e-9)
}

// TestRelativeEntropy_SupportMismatch: σ with smaller support yields +Inf
// (documented caller contract, not an error).
func TestRelativeEntropy_SupportMismatch(t *testing.T) {
	rho := maxMixed(2)
	sigma := qmat.Ketbra([]complex128{1, 0})
	d, err := entropy.RelativeEntropy(2, rho, sigma)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1), "support mismatch must give +Inf, got %v", d)
}

// TestRelativeEntropy_ShapeMismatch validates shapes before eigenwork.
func TestRelativeEntropy_ShapeMismatch(t *testing.T) {
	_, err := entropy.RelativeEntropy(2, maxMixed(2), maxMixed(3))
	assert.ErrorIs(t, err, entropy.ErrShapeMismatch)
}

// TestRelativeEntropyVec agrees with the diagonal quantum case.
func TestRelativeEntropyVec(t *testing.T) {
	p := []float64{0.75, 0.25}
	q := []float64{0.5, 0.5}

	dv, err := entropy.RelativeEntropyVec(2, p, q)
	require.NoError(t, err)

	dp := qmat.Zeros(2, 2)
	dq := qmat.Zeros(2, 2)
	for i := range p {
		dp.Set(i, i, complex(p[i], 0))
		dq.Set(i, i, complex(q[i], 0))
	}
	dm, err := entropy.RelativeEntropy(2, dp, dq)
	require.NoError(t, err)
	assert.InDelta(t, dv, dm, 1e-9)

	_, err = entropy.RelativeEntropyVec(2, p, []float64{1})
	assert.ErrorIs(t, err, entropy.ErrShapeMismatch)

	inf, err := entropy.RelativeEntropyVec(2, []float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.True(t, math.IsInf(inf, 1))
}

// TestBinaryRelativeEntropy matches the vector form and validates range.
func TestBinaryRelativeEntropy(t *testing.T) {
	d, err := entropy.BinaryRelativeEntropy(2, 0.75, 0.5)
	require.NoError(t, err)
	dv, err := entropy.RelativeEntropyVec(2, []float64{0.75, 0.25}, []float64{0.5, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, dv, d, 1e-12)

	_, err = entropy.BinaryRelativeEntropy(2, -0.1, 0.5)
	assert.ErrorIs(t, err, entropy.ErrProbability)
}

// TestConditionalEntropyVec: H(A|B) of a product distribution is H(A).
func TestConditionalEntropyVec(t *testing.T) {
	// pAB[i][j] = pA[i]·pB[j] with pA = (1/2, 1/2), pB = (3/4, 1/4).
	pAB := [][]float64{
		{0.375, 0.125},
		{0.375, 0.125},
	}
	h, err := entropy.ConditionalEntropyVec(2, pAB)
	require.NoError(t, err)
	assert.InDelta(t, 1, h, 1e-10, "independent A is one full bit given B")

	// Perfectly correlated: H(A|B) = 0.
	h, err = entropy.ConditionalEntropyVec(2, [][]float64{
		{0.5, 0},
		{0, 0.5},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0, h, 1e-10)

	_, err = entropy.ConditionalEntropyVec(2, [][]float64{{0.5}, {0.25, 0.25}})
	assert.ErrorIs(t, err, entropy.ErrShapeMismatch)
}

// TestConditionalEntropy_Quantum covers the edge cases and the Bell state.
func TestConditionalEntropy_Quantum(t *testing.T) {
	bell := qmat.Ketbra(qmat.MaxEntangled(2, true))
	dims := []int{2, 2}

	// Empty csys → plain entropy (0 for a pure state).
	h, err := entropy.ConditionalEntropy(2, bell, nil, dims)
	require.NoError(t, err)
	assert.InDelta(t, 0, h, 1e-10)

	// Full csys → exactly 0.
	h, err = entropy.ConditionalEntropy(2, bell, []int{0, 1}, dims)
	require.NoError(t, err)
	assert.Zero(t, h)

	// Conditioning on one half of a Bell pair: S(ρ) − S(ρ_B) = 0 − 1 = −1.
	h, err = entropy.ConditionalEntropy(2, bell, []int{1}, dims)
	require.NoError(t, err)
	assert.InDelta(t, -1, h, 1e-9, "negative conditional entropy flags entanglement")

	_, err = entropy.ConditionalEntropy(2, bell, []int{3}, dims)
	assert.ErrorIs(t, err, qmat.ErrSubsystem)
}
