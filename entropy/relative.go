// SPDX-License-Identifier: MIT

package entropy

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qinfo-go/qinfo/qmat"
)

// RelativeEntropy computes the quantum relative entropy
//
//	D(ρ‖σ) = Σᵢⱼ λᵨᵢ (log λᵨᵢ − log λᵩⱼ) |⟨uᵢ|vⱼ⟩|²
//
// in units of log base. Requires ρ and σ square Hermitian of equal shape
// with spectra non-negative within tolerance. Support is NOT validated:
// when support(ρ) ⊄ support(σ) the result is +Inf by caller contract.
func RelativeEntropy(base float64, rho, sigma *qmat.Dense) (float64, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	rr, rc := rho.Dims()
	sr, sc := sigma.Dims()
	if rr != sr || rc != sc {
		return 0, fmt.Errorf("ρ is %d×%d, σ is %d×%d: %w", rr, rc, sr, sc, ErrShapeMismatch)
	}

	rVals, rVecs, err := qmat.EigH(rho)
	if err != nil {
		return 0, err
	}
	sVals, sVecs, err := qmat.EigH(sigma)
	if err != nil {
		return 0, err
	}
	if err = checkSpectrum(rVals); err != nil {
		return 0, fmt.Errorf("ρ: %w", err)
	}
	if err = checkSpectrum(sVals); err != nil {
		return 0, fmt.Errorf("σ: %w", err)
	}

	d := rr
	mx := math.Max(maxAbs(rVals), maxAbs(sVals))
	tol := negTol(d, mx)

	// Overlap matrix O_{ij} = |⟨uᵢ|vⱼ⟩|².
	overlap := rVecs.Dagger().Mul(sVecs)

	var sum float64
	for i := 0; i < d; i++ {
		lr := rVals[i]
		if lr <= tol {
			continue // 0·log 0 = 0
		}
		for j := 0; j < d; j++ {
			o := cmplx.Abs(overlap.At(i, j))
			o *= o
			if o <= tol*tol {
				continue
			}
			ls := sVals[j]
			if ls <= tol {
				return math.Inf(1), nil // support mismatch, by contract
			}
			sum += lr * (math.Log(lr) - math.Log(ls)) * o
		}
	}

	return sum / math.Log(base), nil
}

func maxAbs(v []float64) float64 {
	mx := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > mx {
			mx = a
		}
	}

	return mx
}

// RelativeEntropyVec computes the classical relative entropy
// Σ pᵢ (log pᵢ − log qᵢ) in units of log base. Both vectors must be
// non-negative within tolerance and of equal length; qᵢ = 0 with pᵢ > 0
// yields +Inf.
func RelativeEntropyVec(base float64, p, q []float64) (float64, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, ErrEmpty
	}
	if len(p) != len(q) {
		return 0, fmt.Errorf("len(p)=%d, len(q)=%d: %w", len(p), len(q), ErrShapeMismatch)
	}
	if err := checkNonNegative(p); err != nil {
		return 0, fmt.Errorf("p: %w", err)
	}
	if err := checkNonNegative(q); err != nil {
		return 0, fmt.Errorf("q: %w", err)
	}

	tol := negTol(len(p), math.Max(maxAbs(p), maxAbs(q)))
	var sum float64
	for i := range p {
		if p[i] <= tol {
			continue
		}
		if q[i] <= tol {
			return math.Inf(1), nil
		}
		sum += p[i] * (math.Log(p[i]) - math.Log(q[i]))
	}

	return sum / math.Log(base), nil
}

// BinaryRelativeEntropy computes the two-outcome relative entropy between
// Bernoulli(p) and Bernoulli(q). Both probabilities must lie in [0, 1].
func BinaryRelativeEntropy(base, p, q float64) (float64, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	for _, v := range [2]float64{p, q} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return 0, fmt.Errorf("probability %v: %w", v, ErrProbability)
		}
	}

	return RelativeEntropyVec(base, []float64{p, 1 - p}, []float64{q, 1 - q})
}
