// SPDX-License-Identifier: MIT

package schmidt

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qinfo-go/qinfo/entropy"
	"github.com/qinfo-go/qinfo/qmat"
)

var (
	// ErrDimCount signals a dims list that is not exactly two entries.
	ErrDimCount = errors.New("schmidt: exactly two subsystem dimensions required")

	// ErrLengthMismatch signals len(ψ) != dims[0]·dims[1].
	ErrLengthMismatch = errors.New("schmidt: state length does not match dims product")

	// ErrEmpty signals an empty state vector.
	ErrEmpty = errors.New("schmidt: empty state vector")
)

// Decompose computes the Schmidt decomposition of a bipartite pure state.
// Returns the Schmidt coefficients sorted descending (non-negative, with
// Σλₖ² = ‖ψ‖²), and the isometries U (dA×r) and V (dB×r), r = min(dA,dB),
// such that ψ = Σₖ λₖ · kron(uₖ, vₖ). A nil dims infers an equal
// bipartition from len(ψ).
func Decompose(psi []complex128, dims []int) ([]float64, *qmat.Dense, *qmat.Dense, error) {
	dA, dB, err := checkBipartition(len(psi), dims)
	if err != nil {
		return nil, nil, nil, err
	}

	// Reshape: row index = first subsystem.
	m := qmat.NewDense(dA, dB, append([]complex128(nil), psi...))

	coeffs, u, v, err := svdComplex(m)
	if err != nil {
		return nil, nil, nil, err
	}

	// Conjugate the B-side factor into the physical Schmidt convention:
	// M = U Σ V† means ψ = Σ λₖ uₖ ⊗ conj(vₖ).
	return coeffs, u, v.Conj(), nil
}

// EntanglementEntropy computes the entanglement entropy of a bipartite
// pure state: the von Neumann entropy of the reduced density matrix on
// the larger-dimensioned subsystem. A nil dims infers an equal
// bipartition.
func EntanglementEntropy(base float64, psi []complex128, dims []int) (float64, error) {
	dA, dB, err := checkBipartition(len(psi), dims)
	if err != nil {
		return 0, err
	}

	// Trace out the smaller subsystem, keeping the larger one.
	traceOut := []int{1}
	if dB > dA {
		traceOut = []int{0}
	}
	reduced, err := qmat.PartialTrace(qmat.Ketbra(psi), traceOut, []int{dA, dB})
	if err != nil {
		return 0, err
	}

	return entropy.Entropy(base, reduced)
}

func checkBipartition(n int, dims []int) (int, int, error) {
	if n == 0 {
		return 0, 0, ErrEmpty
	}
	if dims == nil {
		inferred, err := qmat.InferDims(n)
		if err != nil {
			return 0, 0, err
		}

		return inferred[0], inferred[1], nil
	}
	if len(dims) != 2 {
		return 0, 0, fmt.Errorf("got %d dims: %w", len(dims), ErrDimCount)
	}
	if dims[0] <= 0 || dims[1] <= 0 || dims[0]*dims[1] != n {
		return 0, 0, fmt.Errorf("dims %v for length %d: %w", dims, n, ErrLengthMismatch)
	}

	return dims[0], dims[1], nil
}

// svdComplex computes a thin SVD M = U Σ V† of a complex matrix through
// the Gram matrix of the smaller side. Singular values return descending.
func svdComplex(m *qmat.Dense) ([]float64, *qmat.Dense, *qmat.Dense, error) {
	rows, cols := m.Dims()
	if rows <= cols {
		vals, u, err := gramEig(m)
		if err != nil {
			return nil, nil, nil, err
		}
		v := recoverFactor(m.Dagger(), u, vals)

		return vals, u, v, nil
	}

	vals, v, err := gramEig(m.Dagger())
	if err != nil {
		return nil, nil, nil, err
	}
	u := recoverFactor(m, v, vals)

	return vals, u, v, nil
}

// gramEig eigendecomposes M·M† and returns singular values descending
// with the matching left factor.
func gramEig(m *qmat.Dense) ([]float64, *qmat.Dense, error) {
	gram := m.Mul(m.Dagger())
	vals, vecs, err := qmat.EigH(gram)
	if err != nil {
		return nil, nil, err
	}

	d, _ := gram.Dims()
	sv := make([]float64, d)
	out := qmat.Zeros(d, d)
	// EigH sorts ascending; reverse into descending singular values.
	for k := 0; k < d; k++ {
		src := d - 1 - k
		if vals[src] > 0 {
			sv[k] = math.Sqrt(vals[src])
		}
		for i := 0; i < d; i++ {
			out.Set(i, k, vecs.At(i, src))
		}
	}

	return sv, out, nil
}

// recoverFactor computes the other SVD factor columns wₖ = (A·uₖ)/λₖ and
// completes the basis deterministically where λₖ vanishes.
func recoverFactor(a, u *qmat.Dense, vals []float64) *qmat.Dense {
	rows, acols := a.Dims()
	_, r := u.Dims()
	out := qmat.Zeros(rows, r)

	tol := float64(rows) * qmat.Eps * (1 + a.MaxAbs()) * 64
	cols := make([][]complex128, 0, r)
	for k := 0; k < r; k++ {
		if vals[k] <= tol {
			break
		}
		col := make([]complex128, rows)
		for i := 0; i < rows; i++ {
			var s complex128
			for j := 0; j < acols; j++ {
				s += a.At(i, j) * u.At(j, k)
			}
			col[i] = s / complex(vals[k], 0)
		}
		cols = append(cols, col)
	}

	cols = completeBasis(cols, rows, r)
	for k, col := range cols {
		for i := 0; i < rows; i++ {
			out.Set(i, k, col[i])
		}
	}

	return out
}

// completeBasis extends an orthonormal column set to width r by
// orthogonalizing standard basis vectors against it.
func completeBasis(cols [][]complex128, dim, r int) [][]complex128 {
	for e := 0; e < dim && len(cols) < r; e++ {
		cand := make([]complex128, dim)
		cand[e] = 1
		for _, c := range cols {
			var ip complex128
			for i := 0; i < dim; i++ {
				ip += cmplx.Conj(c[i]) * cand[i]
			}
			for i := 0; i < dim; i++ {
				cand[i] -= ip * c[i]
			}
		}
		var norm float64
		for i := 0; i < dim; i++ {
			norm += real(cand[i])*real(cand[i]) + imag(cand[i])*imag(cand[i])
		}
		norm = math.Sqrt(norm)
		if norm < 1e-6 {
			continue
		}
		for i := 0; i < dim; i++ {
			cand[i] /= complex(norm, 0)
		}
		cols = append(cols, cand)
	}

	return cols
}
