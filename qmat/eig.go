// SPDX-License-Identifier: MIT

// Package qmat: Hermitian eigendecomposition. gonum carries no complex
// Hermitian eigensolver, so the complex path embeds H = A + iB into the
// real symmetric matrix [[A,−B],[B,A]], factorizes with mat.EigenSym and
// extracts one complex eigenvector per doubled real eigenpair.

package qmat

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// EigH computes the eigendecomposition of a Hermitian matrix.
// Returns eigenvalues in ascending order and the matrix whose columns are
// the corresponding orthonormal eigenvectors. Fails with ErrNotHermitian
// when m violates Hermiticity beyond the dimension-scaled tolerance.
func EigH(m *Dense) ([]float64, *Dense, error) {
	if !m.IsSquare() {
		return nil, nil, ErrNotSquare
	}
	if !m.IsHermitian(-1) {
		return nil, nil, ErrNotHermitian
	}

	d := m.rows
	tol := HermTol(m)

	// Cheap path: a real symmetric matrix needs no embedding.
	if maxImag(m) <= tol {
		return eigReal(m)
	}

	return eigEmbedded(m, d)
}

// Eigvals returns only the ascending eigenvalues of a Hermitian matrix.
func Eigvals(m *Dense) ([]float64, error) {
	vals, _, err := EigH(m)

	return vals, err
}

func maxImag(m *Dense) float64 {
	var mx float64
	for _, v := range m.data {
		if a := math.Abs(imag(v)); a > mx {
			mx = a
		}
	}

	return mx
}

func eigReal(m *Dense) ([]float64, *Dense, error) {
	d := m.rows
	sym := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			sym.SetSym(i, j, real(m.data[i*d+j]))
		}
	}

	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		return nil, nil, fmt.Errorf("eigendecomposition failed for %d×%d matrix: %w", d, d, ErrNotHermitian)
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	out := Zeros(d, d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			out.data[i*d+j] = complex(vecs.At(i, j), 0)
		}
	}

	return vals, out, nil
}

func eigEmbedded(m *Dense, d int) ([]float64, *Dense, error) {
	// E = [[A, −B], [B, A]] is symmetric for Hermitian m = A + iB, and
	// every Hermitian eigenvalue of m appears in E with multiplicity 2.
	sym := mat.NewSymDense(2*d, nil)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			a := real(m.data[i*d+j])
			b := imag(m.data[i*d+j])
			if j >= i {
				sym.SetSym(i, j, a)
				sym.SetSym(d+i, d+j, a)
			}
			sym.SetSym(i, d+j, -b)
		}
	}

	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		return nil, nil, fmt.Errorf("eigendecomposition failed for %d×%d embedding: %w", 2*d, 2*d, ErrNotHermitian)
	}
	vals2 := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// Each real eigenvector [x; y] encodes the complex vector x + iy.
	// The doubled spectrum means consecutive pairs span the same complex
	// eigenvector up to a phase, so Gram–Schmidt against the accepted set
	// keeps exactly one representative per pair.
	vals := make([]float64, 0, d)
	accepted := make([][]complex128, 0, d)
	for k := 0; k < 2*d && len(accepted) < d; k++ {
		cv := make([]complex128, d)
		for i := 0; i < d; i++ {
			cv[i] = complex(vecs.At(i, k), vecs.At(d+i, k))
		}
		for _, a := range accepted {
			var ip complex128
			for i := 0; i < d; i++ {
				ip += cmplx.Conj(a[i]) * cv[i]
			}
			for i := 0; i < d; i++ {
				cv[i] -= ip * a[i]
			}
		}
		var norm float64
		for i := 0; i < d; i++ {
			norm += real(cv[i])*real(cv[i]) + imag(cv[i])*imag(cv[i])
		}
		norm = math.Sqrt(norm)
		if norm < 0.5 {
			continue
		}
		for i := 0; i < d; i++ {
			cv[i] /= complex(norm, 0)
		}
		accepted = append(accepted, cv)
		vals = append(vals, vals2[k])
	}
	if len(accepted) != d {
		return nil, nil, fmt.Errorf("embedded eigenbasis extraction got %d of %d vectors: %w", len(accepted), d, ErrNotHermitian)
	}

	out := Zeros(d, d)
	for j, cv := range accepted {
		for i := 0; i < d; i++ {
			out.data[i*d+j] = cv[i]
		}
	}

	return vals, out, nil
}

// ProjectPSD returns the nearest (Frobenius) positive-semidefinite matrix
// to a Hermitian m: eigenvalues clipped at zero in the eigenbasis of m.
func ProjectPSD(m *Dense) (*Dense, error) {
	vals, vecs, err := EigH(m)
	if err != nil {
		return nil, err
	}
	d := m.rows
	out := Zeros(d, d)
	for k := 0; k < d; k++ {
		if vals[k] <= 0 {
			continue
		}
		lam := complex(vals[k], 0)
		for i := 0; i < d; i++ {
			vi := vecs.data[i*d+k]
			if vi == 0 {
				continue
			}
			for j := 0; j < d; j++ {
				out.data[i*d+j] += lam * vi * cmplx.Conj(vecs.data[j*d+k])
			}
		}
	}

	return out, nil
}
