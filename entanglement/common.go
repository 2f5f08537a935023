// SPDX-License-Identifier: MIT

package entanglement

import (
	"fmt"

	"github.com/qinfo-go/qinfo/qmat"
)

// resolveDims validates ρ against the declared bipartition, inferring
// equal subsystem sizes when dims is nil or empty.
func resolveDims(rho *qmat.Dense, dims []int) ([2]int, error) {
	if !rho.IsSquare() {
		return [2]int{}, qmat.ErrNotSquare
	}
	d, _ := rho.Dims()
	if len(dims) == 0 {
		return qmat.InferDims(d)
	}
	if len(dims) != 2 {
		return [2]int{}, fmt.Errorf("bipartition needs exactly 2 dims, got %d: %w", len(dims), qmat.ErrDims)
	}
	if dims[0] <= 0 || dims[1] <= 0 || dims[0]*dims[1] != d {
		return [2]int{}, fmt.Errorf("dims %v incompatible with dimension %d: %w", dims, d, qmat.ErrDims)
	}

	return [2]int{dims[0], dims[1]}, nil
}

// symmetrizeWitness halves the off-diagonal of a dual witness, keeping
// the diagonal: Diag(W) + (W − Diag(W))/2. Splitting solvers report the
// dual of an elementwise matrix equality with each off-diagonal pair
// counted twice.
func symmetrizeWitness(w *qmat.Dense) *qmat.Dense {
	d, _ := w.Dims()
	out := qmat.Zeros(d, d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			v := w.At(i, j)
			if i != j {
				v *= 0.5
			}
			out.Set(i, j, v)
		}
	}

	return out
}
