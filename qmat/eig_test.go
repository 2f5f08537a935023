package qmat_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinfo-go/qinfo/qmat"
)

// reconstruct rebuilds Σ λₖ vₖvₖ† from an eigendecomposition.
func reconstruct(vals []float64, vecs *qmat.Dense) *qmat.Dense {
	d, _ := vecs.Dims()
	out := qmat.Zeros(d, d)
	for k := 0; k < d; k++ {
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				out.Set(i, j, out.At(i, j)+complex(vals[k], 0)*vecs.At(i, k)*cmplx.Conj(vecs.At(j, k)))
			}
		}
	}

	return out
}

// TestEigH_PauliY exercises the complex embedding path on σ_y, whose
// spectrum is {−1, +1}.
func TestEigH_PauliY(t *testing.T) {
	y := qmat.NewDense(2, 2, []complex128{
		0, complex(0, -1),
		complex(0, 1), 0,
	})

	vals, vecs, err := qmat.EigH(y)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.InDelta(t, -1, vals[0], 1e-10)
	assert.InDelta(t, 1, vals[1], 1e-10)

	assert.InDelta(t, 0, reconstruct(vals, vecs).Sub(y).MaxAbs(), 1e-9, "eigendecomposition must reconstruct σ_y")
}

// TestEigH_RealSymmetric exercises the real fast path.
func TestEigH_RealSymmetric(t *testing.T) {
	m := qmat.NewDense(2, 2, []complex128{
		2, 1,
		1, 2,
	})
	vals, vecs, err := qmat.EigH(m)
	require.NoError(t, err)
	assert.InDelta(t, 1, vals[0], 1e-10)
	assert.InDelta(t, 3, vals[1], 1e-10)
	assert.InDelta(t, 0, reconstruct(vals, vecs).Sub(m).MaxAbs(), 1e-9)
}

// TestEigH_Degenerate checks that a degenerate Hermitian spectrum still
// yields a full orthonormal eigenbasis through the embedding.
func TestEigH_Degenerate(t *testing.T) {
	// 2·I plus a tiny Hermitian perturbation keeps the embedding path
	// honest about doubled eigenvalues.
	m := qmat.NewDense(3, 3, []complex128{
		2, complex(0, 1e-3), 0,
		complex(0, -1e-3), 2, 0,
		0, 0, 2,
	})
	vals, vecs, err := qmat.EigH(m)
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.InDelta(t, 0, reconstruct(vals, vecs).Sub(m).MaxAbs(), 1e-9)

	// Orthonormality of the extracted complex eigenbasis.
	g := vecs.Dagger().Mul(vecs)
	assert.InDelta(t, 0, g.Sub(qmat.Eye(3)).MaxAbs(), 1e-9)
}

// TestEigH_NotHermitian rejects non-Hermitian input.
func TestEigH_NotHermitian(t *testing.T) {
	m := qmat.NewDense(2, 2, []complex128{0, 1, 2, 0})
	_, _, err := qmat.EigH(m)
	assert.ErrorIs(t, err, qmat.ErrNotHermitian)
}

// TestProjectPSD clips the negative part of an indefinite matrix.
func TestProjectPSD(t *testing.T) {
	m := qmat.NewDense(2, 2, []complex128{
		1, 0,
		0, -2,
	})
	p, err := qmat.ProjectPSD(m)
	require.NoError(t, err)

	vals, err := qmat.Eigvals(p)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, vals[0], -1e-10, "projection must be PSD")
	assert.InDelta(t, 1, real(p.At(0, 0)), 1e-10, "positive part survives")
	assert.InDelta(t, 0, real(p.At(1, 1)), 1e-10, "negative part clipped")
}
