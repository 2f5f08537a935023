// SPDX-License-Identifier: MIT

// Package qmat: inner-product-preserving vectorization codecs.
//
// HVec maps a d×d Hermitian matrix onto a real vector of length d² and
// SVec maps a real symmetric matrix onto a vector of length d(d+1)/2,
// both with off-diagonal parts scaled by √2 so that for any two coded
// matrices ⟨Vec(X), Vec(Y)⟩ = tr(X†Y). The codecs are pure bijections:
// only the diagonal real parts and the upper triangle are read, so a
// slightly non-Hermitian input is silently Hermitized on the round trip.

package qmat

import "math"

const sqrt2 = math.Sqrt2

// VecLen returns the coded vector length for a d×d matrix over field f:
// d² for Complex, d(d+1)/2 for Real.
func VecLen(d int, f Field) int {
	if f == Complex {
		return d * d
	}

	return d * (d + 1) / 2
}

// Vec codes a Hermitian (or real symmetric) matrix into its real
// coordinate vector for field f. Panics when m is not square.
func Vec(m *Dense, f Field) []float64 {
	if f == Complex {
		return HVec(m)
	}

	return SVec(m)
}

// UnVec decodes a coordinate vector of VecLen(d, f) entries back into a
// d×d Hermitian (or real symmetric) matrix. Panics on a length mismatch.
func UnVec(v []float64, d int, f Field) *Dense {
	if f == Complex {
		return UnHVec(v, d)
	}

	return UnSVec(v, d)
}

// HVec codes a Hermitian matrix: for each row i, the real diagonal entry
// followed by √2·Re and √2·Im of each strict-upper entry.
func HVec(m *Dense) []float64 {
	if !m.IsSquare() {
		panic("qmat: HVec of non-square matrix")
	}
	d := m.rows
	out := make([]float64, 0, d*d)
	for i := 0; i < d; i++ {
		out = append(out, real(m.data[i*d+i]))
		for j := i + 1; j < d; j++ {
			v := m.data[i*d+j]
			out = append(out, sqrt2*real(v), sqrt2*imag(v))
		}
	}

	return out
}

// UnHVec is the inverse of HVec.
func UnHVec(v []float64, d int) *Dense {
	if len(v) != d*d {
		panic("qmat: UnHVec length mismatch")
	}
	out := Zeros(d, d)
	k := 0
	for i := 0; i < d; i++ {
		out.data[i*d+i] = complex(v[k], 0)
		k++
		for j := i + 1; j < d; j++ {
			re := v[k] / sqrt2
			im := v[k+1] / sqrt2
			k += 2
			out.data[i*d+j] = complex(re, im)
			out.data[j*d+i] = complex(re, -im)
		}
	}

	return out
}

// SVec codes a real symmetric matrix: diagonal entries as-is, strict-upper
// entries scaled by √2. Imaginary parts are ignored.
func SVec(m *Dense) []float64 {
	if !m.IsSquare() {
		panic("qmat: SVec of non-square matrix")
	}
	d := m.rows
	out := make([]float64, 0, d*(d+1)/2)
	for i := 0; i < d; i++ {
		out = append(out, real(m.data[i*d+i]))
		for j := i + 1; j < d; j++ {
			out = append(out, sqrt2*real(m.data[i*d+j]))
		}
	}

	return out
}

// UnSVec is the inverse of SVec.
func UnSVec(v []float64, d int) *Dense {
	if len(v) != d*(d+1)/2 {
		panic("qmat: UnSVec length mismatch")
	}
	out := Zeros(d, d)
	k := 0
	for i := 0; i < d; i++ {
		out.data[i*d+i] = complex(v[k], 0)
		k++
		for j := i + 1; j < d; j++ {
			re := v[k] / sqrt2
			k++
			out.data[i*d+j] = complex(re, 0)
			out.data[j*d+i] = complex(re, 0)
		}
	}

	return out
}
