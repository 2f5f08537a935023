// SPDX-License-Identifier: MIT

package symmetric

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/qinfo-go/qinfo/qmat"
)

// ErrArgs signals a non-positive local dimension or copy count.
var ErrArgs = errors.New("symmetric: dimension and copy count must be positive")

// SubspaceDim returns the dimension C(n+d−1, n) of the symmetric subspace
// of n copies of a d-dimensional space.
func SubspaceDim(d, n int) int {
	return combin.Binomial(n+d-1, n)
}

// Projection builds the isometry embedding the n-copy symmetric subspace
// of a d-dimensional space into the full tensor power: a dⁿ × C(n+d−1, n)
// matrix with orthonormal columns, each the normalized indicator of one
// multiset class of basis tuples.
func Projection(d, n int) (*qmat.Dense, error) {
	if d <= 0 || n <= 0 {
		return nil, fmt.Errorf("d=%d, n=%d: %w", d, n, ErrArgs)
	}

	k := SubspaceDim(d, n)
	rows := 1
	for i := 0; i < n; i++ {
		rows *= d
	}

	// Group all basis tuples by their sorted multiset key; the column
	// index of a class is fixed by first appearance in row-major order.
	lens := make([]int, n)
	for i := range lens {
		lens[i] = d
	}
	tuples := combin.Cartesian(lens)

	colOf := make(map[string]int, k)
	classes := make([][]int, 0, k) // class → row indices
	key := make([]int, n)
	for row, t := range tuples {
		copy(key, t)
		sort.Ints(key)
		ks := fmt.Sprint(key)
		col, ok := colOf[ks]
		if !ok {
			col = len(classes)
			colOf[ks] = col
			classes = append(classes, nil)
		}
		classes[col] = append(classes[col], row)
	}
	if len(classes) != k {
		return nil, fmt.Errorf("enumerated %d multiset classes, want %d: %w", len(classes), k, ErrArgs)
	}

	p := qmat.Zeros(rows, k)
	for col, members := range classes {
		amp := complex(1/math.Sqrt(float64(len(members))), 0)
		for _, row := range members {
			p.Set(row, col, amp)
		}
	}

	return p, nil
}
