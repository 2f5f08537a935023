// SPDX-License-Identifier: MIT

package qmat

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Field selects the coefficient field of a matrix problem: real symmetric
// matrices over ℝ or Hermitian matrices over ℂ. It is a runtime flag so
// callers choose the code path explicitly rather than through overload
// resolution.
type Field int

const (
	// Real selects the real-symmetric path (smaller coordinate vectors,
	// real symmetric PSD cones).
	Real Field = iota

	// Complex selects the Hermitian path.
	Complex
)

// String returns "real" or "complex".
func (f Field) String() string {
	if f == Real {
		return "real"
	}

	return "complex"
}

// Eps is the float64 machine epsilon; all qmat tolerances scale with it.
const Eps = 0x1p-52

// Dense is a row-major dense complex128 matrix. The zero value is not
// usable; construct with NewDense, Zeros, Eye or the kernel operations.
type Dense struct {
	rows, cols int
	data       []complex128
}

// NewDense builds an r×c matrix backed by data (row-major). A nil data
// slice allocates zeros. Panics on non-positive dimensions or a data
// slice of the wrong length (programmer error).
func NewDense(r, c int, data []complex128) *Dense {
	if r <= 0 || c <= 0 {
		panic(fmt.Sprintf("qmat: NewDense with non-positive shape %d×%d", r, c))
	}
	if data == nil {
		data = make([]complex128, r*c)
	}
	if len(data) != r*c {
		panic(fmt.Sprintf("qmat: NewDense data length %d, want %d", len(data), r*c))
	}

	return &Dense{rows: r, cols: c, data: data}
}

// Zeros builds an r×c zero matrix.
func Zeros(r, c int) *Dense { return NewDense(r, c, nil) }

// Eye builds the d×d identity.
func Eye(d int) *Dense {
	m := Zeros(d, d)
	for i := 0; i < d; i++ {
		m.data[i*d+i] = 1
	}

	return m
}

// Dims returns (rows, cols).
func (m *Dense) Dims() (int, int) { return m.rows, m.cols }

// IsSquare reports rows == cols.
func (m *Dense) IsSquare() bool { return m.rows == m.cols }

// At returns the (i, j) entry. Panics when out of range.
func (m *Dense) At(i, j int) complex128 {
	m.checkIndex(i, j)

	return m.data[i*m.cols+j]
}

// Set assigns the (i, j) entry. Panics when out of range.
func (m *Dense) Set(i, j int, v complex128) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Dense) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("qmat: index (%d,%d) out of range for %d×%d", i, j, m.rows, m.cols))
	}
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	out := make([]complex128, len(m.data))
	copy(out, m.data)

	return &Dense{rows: m.rows, cols: m.cols, data: out}
}

// Add returns m + b. Panics on shape mismatch.
func (m *Dense) Add(b *Dense) *Dense {
	m.checkSameShape(b)
	out := m.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}

	return out
}

// Sub returns m − b. Panics on shape mismatch.
func (m *Dense) Sub(b *Dense) *Dense {
	m.checkSameShape(b)
	out := m.Clone()
	for i := range out.data {
		out.data[i] -= b.data[i]
	}

	return out
}

// Scale returns a·m.
func (m *Dense) Scale(a complex128) *Dense {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= a
	}

	return out
}

// Mul returns the matrix product m·b. Panics when m.cols != b.rows.
func (m *Dense) Mul(b *Dense) *Dense {
	if m.cols != b.rows {
		panic(fmt.Sprintf("qmat: Mul shape mismatch %d×%d · %d×%d", m.rows, m.cols, b.rows, b.cols))
	}
	out := Zeros(m.rows, b.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.data[i*m.cols+k]
			if a == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				out.data[i*b.cols+j] += a * b.data[k*b.cols+j]
			}
		}
	}

	return out
}

// Dagger returns the conjugate transpose m†.
func (m *Dense) Dagger() *Dense {
	out := Zeros(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = cmplx.Conj(m.data[i*m.cols+j])
		}
	}

	return out
}

// Conj returns the entrywise complex conjugate (no transpose).
func (m *Dense) Conj() *Dense {
	out := m.Clone()
	for i := range out.data {
		out.data[i] = cmplx.Conj(out.data[i])
	}

	return out
}

// Trace returns the matrix trace. Panics when m is not square.
func (m *Dense) Trace() complex128 {
	if !m.IsSquare() {
		panic("qmat: Trace of non-square matrix")
	}
	var t complex128
	for i := 0; i < m.rows; i++ {
		t += m.data[i*m.cols+i]
	}

	return t
}

// MaxAbs returns the largest entry magnitude (0 for the empty matrix).
func (m *Dense) MaxAbs() float64 {
	var mx float64
	for _, v := range m.data {
		if a := cmplx.Abs(v); a > mx {
			mx = a
		}
	}

	return mx
}

// IsHermitian reports whether m is square and Hermitian within tol.
// A negative tol selects the default dimension-scaled tolerance.
func (m *Dense) IsHermitian(tol float64) bool {
	if !m.IsSquare() {
		return false
	}
	if tol < 0 {
		tol = HermTol(m)
	}
	for i := 0; i < m.rows; i++ {
		if math.Abs(imag(m.data[i*m.cols+i])) > tol {
			return false
		}
		for j := i + 1; j < m.cols; j++ {
			if cmplx.Abs(m.data[i*m.cols+j]-cmplx.Conj(m.data[j*m.cols+i])) > tol {
				return false
			}
		}
	}

	return true
}

// HermTol is the default Hermiticity/PSD tolerance for m: machine epsilon
// scaled by dimension and magnitude.
func HermTol(m *Dense) float64 {
	d, _ := m.Dims()

	return Eps * float64(max(d, 2)) * (1 + m.MaxAbs()) * 64
}

func (m *Dense) checkSameShape(b *Dense) {
	if m.rows != b.rows || m.cols != b.cols {
		panic(fmt.Sprintf("qmat: shape mismatch %d×%d vs %d×%d", m.rows, m.cols, b.rows, b.cols))
	}
}

// InferDims infers an equal bipartition [√d, √d] for a total dimension d.
// Returns ErrDims when d is not a perfect square.
func InferDims(d int) ([2]int, error) {
	if d <= 0 {
		return [2]int{}, fmt.Errorf("non-positive dimension %d: %w", d, ErrDims)
	}
	r := int(math.Round(math.Sqrt(float64(d))))
	if r*r != d {
		return [2]int{}, fmt.Errorf("dimension %d is not a perfect square: %w", d, ErrDims)
	}

	return [2]int{r, r}, nil
}
