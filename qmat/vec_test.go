package qmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinfo-go/qinfo/qmat"
)

// hs computes the Hilbert–Schmidt inner product tr(X†Y) (real part).
func hs(x, y *qmat.Dense) float64 {
	return real(x.Dagger().Mul(y).Trace())
}

// TestHVec_RoundTrip verifies the codec is a bijection on Hermitian input.
func TestHVec_RoundTrip(t *testing.T) {
	m := qmat.NewDense(3, 3, []complex128{
		1, complex(0.3, 0.4), complex(-0.1, 0.2),
		complex(0.3, -0.4), 2, complex(0.5, -0.6),
		complex(-0.1, -0.2), complex(0.5, 0.6), 3,
	})
	require.True(t, m.IsHermitian(-1))

	v := qmat.HVec(m)
	require.Len(t, v, 9, "Hermitian 3×3 codes into 9 real coordinates")

	back := qmat.UnHVec(v, 3)
	assert.InDelta(t, 0, back.Sub(m).MaxAbs(), 1e-12)
}

// TestHVec_PreservesInnerProduct is the defining property of the scaled
// vectorization: Euclidean dot of codes equals Hilbert–Schmidt of matrices.
func TestHVec_PreservesInnerProduct(t *testing.T) {
	x := qmat.NewDense(2, 2, []complex128{
		0.7, complex(0.1, -0.9),
		complex(0.1, 0.9), -0.2,
	})
	y := qmat.NewDense(2, 2, []complex128{
		-1.5, complex(0.4, 0.3),
		complex(0.4, -0.3), 2.2,
	})
	require.True(t, x.IsHermitian(-1))
	require.True(t, y.IsHermitian(-1))

	vx, vy := qmat.HVec(x), qmat.HVec(y)
	var dot float64
	for i := range vx {
		dot += vx[i] * vy[i]
	}
	assert.InDelta(t, hs(x, y), dot, 1e-12)
}

// TestSVec_RoundTrip verifies the real-symmetric codec and its length.
func TestSVec_RoundTrip(t *testing.T) {
	m := qmat.NewDense(3, 3, []complex128{
		1, 0.5, -0.25,
		0.5, 2, 0.75,
		-0.25, 0.75, 3,
	})
	v := qmat.SVec(m)
	require.Len(t, v, 6, "symmetric 3×3 codes into 6 real coordinates")

	back := qmat.UnSVec(v, 3)
	assert.InDelta(t, 0, back.Sub(m).MaxAbs(), 1e-12)
}

// TestVecLen covers both fields.
func TestVecLen(t *testing.T) {
	assert.Equal(t, 16, qmat.VecLen(4, qmat.Complex))
	assert.Equal(t, 10, qmat.VecLen(4, qmat.Real))
}
