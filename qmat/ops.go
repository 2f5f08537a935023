// SPDX-License-Identifier: MIT

// Package qmat: subsystem operations. Index composition is row-major over
// the declared dims list, first subsystem most significant.

package qmat

import (
	"fmt"
	"math"
)

// Kron returns the Kronecker product a ⊗ b, with a acting on the first
// (most significant) subsystem.
func Kron(a, b *Dense) *Dense {
	out := Zeros(a.rows*b.rows, a.cols*b.cols)
	for ia := 0; ia < a.rows; ia++ {
		for ja := 0; ja < a.cols; ja++ {
			av := a.data[ia*a.cols+ja]
			if av == 0 {
				continue
			}
			for ib := 0; ib < b.rows; ib++ {
				row := (ia*b.rows + ib) * out.cols
				for jb := 0; jb < b.cols; jb++ {
					out.data[row+ja*b.cols+jb] = av * b.data[ib*b.cols+jb]
				}
			}
		}
	}

	return out
}

// Ketbra returns the outer product |v⟩⟨v| of a pure-state vector.
func Ketbra(v []complex128) *Dense {
	d := len(v)
	if d == 0 {
		panic("qmat: Ketbra of empty vector")
	}
	out := Zeros(d, d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			out.data[i*d+j] = v[i] * conj(v[j])
		}
	}

	return out
}

func conj(v complex128) complex128 { return complex(real(v), -imag(v)) }

// MaxEntangled returns the maximally entangled vector Σᵢ|ii⟩ on ℂ^d ⊗ ℂ^d.
// When normalized is true the vector is divided by √d.
func MaxEntangled(d int, normalized bool) []complex128 {
	if d <= 0 {
		panic(fmt.Sprintf("qmat: MaxEntangled with non-positive dimension %d", d))
	}
	v := make([]complex128, d*d)
	amp := complex(1, 0)
	if normalized {
		amp = complex(1/math.Sqrt(float64(d)), 0)
	}
	for i := 0; i < d; i++ {
		v[i*d+i] = amp
	}

	return v
}

// checkDims validates a subsystem dimension list against a square matrix.
func checkDims(m *Dense, dims []int) error {
	if !m.IsSquare() {
		return ErrNotSquare
	}
	prod := 1
	for _, d := range dims {
		if d <= 0 {
			return fmt.Errorf("subsystem dimension %d: %w", d, ErrDims)
		}
		prod *= d
	}
	if prod != m.rows {
		return fmt.Errorf("dims product %d does not match matrix dimension %d: %w", prod, m.rows, ErrDims)
	}

	return nil
}

// checkSubsystems validates a subsystem selection list against dims:
// indices must be unique and in [0, len(dims)).
func checkSubsystems(sel, dims []int) error {
	seen := make(map[int]bool, len(sel))
	for _, s := range sel {
		if s < 0 || s >= len(dims) {
			return fmt.Errorf("subsystem %d out of range [0,%d): %w", s, len(dims), ErrSubsystem)
		}
		if seen[s] {
			return fmt.Errorf("subsystem %d repeated: %w", s, ErrSubsystem)
		}
		seen[s] = true
	}

	return nil
}

// decompose splits a flat basis index into its per-subsystem digits.
func decompose(idx int, dims []int, out []int) {
	for k := len(dims) - 1; k >= 0; k-- {
		out[k] = idx % dims[k]
		idx /= dims[k]
	}
}

// compose is the inverse of decompose.
func compose(digits, dims []int) int {
	idx := 0
	for k := 0; k < len(dims); k++ {
		idx = idx*dims[k] + digits[k]
	}

	return idx
}

// PartialTrace traces out the listed subsystems of m (declared
// factorization dims) and returns the marginal on the remaining
// subsystems, in their original order.
func PartialTrace(m *Dense, traceOut, dims []int) (*Dense, error) {
	if err := checkDims(m, dims); err != nil {
		return nil, err
	}
	if err := checkSubsystems(traceOut, dims); err != nil {
		return nil, err
	}

	traced := make(map[int]bool, len(traceOut))
	for _, s := range traceOut {
		traced[s] = true
	}
	keep := make([]int, 0, len(dims)-len(traceOut))
	for k := range dims {
		if !traced[k] {
			keep = append(keep, k)
		}
	}

	keepDims := make([]int, len(keep))
	dKeep := 1
	for i, k := range keep {
		keepDims[i] = dims[k]
		dKeep *= dims[k]
	}
	trDims := make([]int, len(traceOut))
	dTr := 1
	for i, k := range traceOut {
		trDims[i] = dims[k]
		dTr *= dims[k]
	}
	if dKeep == 0 || len(keep) == 0 {
		// Tracing out everything yields the 1×1 matrix holding tr(m).
		out := Zeros(1, 1)
		out.data[0] = m.Trace()

		return out, nil
	}

	full := make([]int, len(dims))
	rowDigits := make([]int, len(keep))
	colDigits := make([]int, len(keep))
	trDigits := make([]int, len(traceOut))

	out := Zeros(dKeep, dKeep)
	for r := 0; r < dKeep; r++ {
		decompose(r, keepDims, rowDigits)
		for c := 0; c < dKeep; c++ {
			decompose(c, keepDims, colDigits)
			var sum complex128
			for t := 0; t < dTr; t++ {
				decompose(t, trDims, trDigits)
				for i, k := range keep {
					full[k] = rowDigits[i]
				}
				for i, k := range traceOut {
					full[k] = trDigits[i]
				}
				i := compose(full, dims)
				for ii, k := range keep {
					full[k] = colDigits[ii]
				}
				j := compose(full, dims)
				sum += m.data[i*m.cols+j]
			}
			out.data[r*dKeep+c] = sum
		}
	}

	return out, nil
}

// PartialTranspose transposes m over the listed subsystems of the
// declared factorization dims.
func PartialTranspose(m *Dense, transpose, dims []int) (*Dense, error) {
	if err := checkDims(m, dims); err != nil {
		return nil, err
	}
	if err := checkSubsystems(transpose, dims); err != nil {
		return nil, err
	}

	flip := make(map[int]bool, len(transpose))
	for _, s := range transpose {
		flip[s] = true
	}

	d := m.rows
	rowDigits := make([]int, len(dims))
	colDigits := make([]int, len(dims))
	out := Zeros(d, d)
	for i := 0; i < d; i++ {
		decompose(i, dims, rowDigits)
		for j := 0; j < d; j++ {
			decompose(j, dims, colDigits)
			for k := range dims {
				if flip[k] {
					rowDigits[k], colDigits[k] = colDigits[k], rowDigits[k]
				}
			}
			i2 := compose(rowDigits, dims)
			j2 := compose(colDigits, dims)
			out.data[i2*d+j2] = m.data[i*d+j]
			// Restore digits for the next column.
			decompose(i, dims, rowDigits)
		}
	}

	return out, nil
}
