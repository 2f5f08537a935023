package symmetric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinfo-go/qinfo/qmat"
	"github.com/qinfo-go/qinfo/symmetric"
)

// TestProjection_Isometry: PᵀP = I on the symmetric subspace for a grid
// of dimensions and copy counts.
func TestProjection_Isometry(t *testing.T) {
	cases := []struct{ d, n, subDim int }{
		{2, 1, 2},
		{2, 2, 3},
		{2, 3, 4},
		{3, 2, 6},
		{3, 3, 10},
	}
	for _, tc := range cases {
		p, err := symmetric.Projection(tc.d, tc.n)
		require.NoError(t, err)

		rows, cols := p.Dims()
		wantRows := 1
		for i := 0; i < tc.n; i++ {
			wantRows *= tc.d
		}
		assert.Equal(t, wantRows, rows, "d=%d n=%d", tc.d, tc.n)
		assert.Equal(t, tc.subDim, cols, "d=%d n=%d", tc.d, tc.n)
		assert.Equal(t, tc.subDim, symmetric.SubspaceDim(tc.d, tc.n))

		gram := p.Dagger().Mul(p)
		assert.InDelta(t, 0, gram.Sub(qmat.Eye(cols)).MaxAbs(), 1e-12, "PᵀP must be the identity (d=%d n=%d)", tc.d, tc.n)
	}
}

// swapFactors permutes tensor factors a and b of an n-fold d-dimensional
// tensor-power vector index.
func swapFactors(v []complex128, d, n, a, b int) []complex128 {
	out := make([]complex128, len(v))
	digits := make([]int, n)
	for idx := range v {
		rem := idx
		for k := n - 1; k >= 0; k-- {
			digits[k] = rem % d
			rem /= d
		}
		digits[a], digits[b] = digits[b], digits[a]
		j := 0
		for k := 0; k < n; k++ {
			j = j*d + digits[k]
		}
		out[j] = v[idx]
	}

	return out
}

// TestProjection_PermutationInvariant: every column is fixed by swapping
// any pair of tensor factors.
func TestProjection_PermutationInvariant(t *testing.T) {
	const d, n = 3, 3
	p, err := symmetric.Projection(d, n)
	require.NoError(t, err)
	rows, cols := p.Dims()

	for c := 0; c < cols; c++ {
		col := make([]complex128, rows)
		for i := 0; i < rows; i++ {
			col[i] = p.At(i, c)
		}
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				swapped := swapFactors(col, d, n, a, b)
				for i := range col {
					assert.InDelta(t, real(col[i]), real(swapped[i]), 1e-12,
						"column %d must be invariant under swap (%d,%d)", c, a, b)
				}
			}
		}
	}
}

// TestProjection_SingleCopy: n=1 is the identity.
func TestProjection_SingleCopy(t *testing.T) {
	p, err := symmetric.Projection(4, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0, p.Sub(qmat.Eye(4)).MaxAbs(), 1e-12)
}

// TestProjection_BadArgs rejects non-positive parameters.
func TestProjection_BadArgs(t *testing.T) {
	_, err := symmetric.Projection(0, 2)
	assert.ErrorIs(t, err, symmetric.ErrArgs)
	_, err = symmetric.Projection(2, 0)
	assert.ErrorIs(t, err, symmetric.ErrArgs)
}
