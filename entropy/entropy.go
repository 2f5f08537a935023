// SPDX-License-Identifier: MIT

package entropy

import (
	"fmt"
	"math"

	"github.com/qinfo-go/qinfo/qmat"
)

// negTol is the PSD/non-negativity tolerance for n values of magnitude
// up to mx: dimension-scaled machine epsilon, never exact zero.
func negTol(n int, mx float64) float64 {
	return 64 * float64(max(n, 2)) * qmat.Eps * (1 + mx)
}

func checkBase(base float64) error {
	if base <= 0 || base == 1 || math.IsNaN(base) || math.IsInf(base, 0) {
		return fmt.Errorf("base %v: %w", base, ErrBase)
	}

	return nil
}

// shannon returns −Σ pᵢ ln pᵢ with 0·ln 0 = 0, assuming entries ≥ −tol
// were already validated; small negatives are clamped to zero.
func shannon(p []float64) float64 {
	var h float64
	for _, v := range p {
		if v > 0 {
			h -= v * math.Log(v)
		}
	}

	return h
}

// Entropy computes the von Neumann entropy −Σ λᵢ log_base λᵢ of a density
// matrix. Fails with ErrNegativeEigenvalue when any eigenvalue lies below
// the dimension-scaled negative tolerance, and with qmat sentinels when
// rho is not square Hermitian.
func Entropy(base float64, rho *qmat.Dense) (float64, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	vals, err := qmat.Eigvals(rho)
	if err != nil {
		return 0, err
	}
	if err = checkSpectrum(vals); err != nil {
		return 0, err
	}

	return shannon(vals) / math.Log(base), nil
}

func checkSpectrum(vals []float64) error {
	mx := 0.0
	for _, v := range vals {
		if a := math.Abs(v); a > mx {
			mx = a
		}
	}
	tol := negTol(len(vals), mx)
	for _, v := range vals {
		if v < -tol {
			return fmt.Errorf("eigenvalue %v below -%v: %w", v, tol, ErrNegativeEigenvalue)
		}
	}

	return nil
}

// EntropyVec computes the Shannon entropy −Σ pᵢ log_base pᵢ of a
// probability vector. Entries must be non-negative within tolerance; the
// vector need not be normalized.
func EntropyVec(base float64, p []float64) (float64, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, ErrEmpty
	}
	if err := checkNonNegative(p); err != nil {
		return 0, err
	}

	return shannon(p) / math.Log(base), nil
}

func checkNonNegative(p []float64) error {
	mx := 0.0
	for _, v := range p {
		if a := math.Abs(v); a > mx {
			mx = a
		}
	}
	tol := negTol(len(p), mx)
	for i, v := range p {
		if v < -tol {
			return fmt.Errorf("entry %d is %v: %w", i, v, ErrNegativeProbability)
		}
	}

	return nil
}

// BinaryEntropy computes −p·log_base p − (1−p)·log_base(1−p), returning
// exactly 0 at p ∈ {0, 1}. Fails with ErrProbability outside [0, 1].
func BinaryEntropy(base, p float64) (float64, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, fmt.Errorf("p = %v: %w", p, ErrProbability)
	}
	if p == 0 || p == 1 {
		return 0, nil
	}

	return (-p*math.Log(p) - (1-p)*math.Log(1-p)) / math.Log(base), nil
}
