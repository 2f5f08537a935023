// SPDX-License-Identifier: MIT

package entropy

import (
	"fmt"
	"math"

	"github.com/qinfo-go/qinfo/qmat"
)

// ConditionalEntropyVec computes the classical conditional entropy
// H(A|B) = H(AB) − H(B) from a joint probability matrix pAB, where rows
// index A and columns index the conditioning variable B. The marginal
// over B is obtained by summing each column. Entries must be non-negative
// within tolerance.
func ConditionalEntropyVec(base float64, pAB [][]float64) (float64, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	if len(pAB) == 0 || len(pAB[0]) == 0 {
		return 0, ErrEmpty
	}
	nb := len(pAB[0])
	joint := make([]float64, 0, len(pAB)*nb)
	pb := make([]float64, nb)
	for i, row := range pAB {
		if len(row) != nb {
			return 0, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), nb, ErrShapeMismatch)
		}
		for j, v := range row {
			joint = append(joint, v)
			pb[j] += v
		}
	}
	if err := checkNonNegative(joint); err != nil {
		return 0, err
	}

	return (shannon(joint) - shannon(pb)) / math.Log(base), nil
}

// ConditionalEntropy computes the quantum conditional entropy
//
//	S(rest | C) = S(ρ) − S(ρ_C)
//
// where ρ_C is the marginal on the subsystems listed in csys, obtained by
// partial-tracing out every subsystem not in csys (declared factorization
// dims). An empty csys returns S(ρ); csys covering all subsystems returns
// exactly 0.
func ConditionalEntropy(base float64, rho *qmat.Dense, csys, dims []int) (float64, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}

	seen := make(map[int]bool, len(csys))
	for _, s := range csys {
		if s < 0 || s >= len(dims) || seen[s] {
			return 0, fmt.Errorf("conditioning subsystem %d: %w", s, qmat.ErrSubsystem)
		}
		seen[s] = true
	}

	if len(csys) == 0 {
		return Entropy(base, rho)
	}
	if len(csys) == len(dims) {
		// Conditioning on everything: S(ρ) − S(ρ) = 0 identically; still
		// validate the input the same way the general path would.
		if _, err := Entropy(base, rho); err != nil {
			return 0, err
		}

		return 0, nil
	}

	traceOut := make([]int, 0, len(dims)-len(csys))
	for k := range dims {
		if !seen[k] {
			traceOut = append(traceOut, k)
		}
	}

	marginal, err := qmat.PartialTrace(rho, traceOut, dims)
	if err != nil {
		return 0, err
	}
	hFull, err := Entropy(base, rho)
	if err != nil {
		return 0, err
	}
	hCond, err := Entropy(base, marginal)
	if err != nil {
		return 0, err
	}

	return hFull - hCond, nil
}
