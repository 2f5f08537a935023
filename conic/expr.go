// SPDX-License-Identifier: MIT

package conic

import (
	"fmt"

	"github.com/qinfo-go/qinfo/qmat"
)

// Expr is a Hermitian-matrix-valued affine expression over the model's
// variables, stored column-sparse in the real coordinates of the qmat
// vectorization codecs: value(x) = UnVec(Σ_j cols[j]·x[j] + k).
//
// Exprs are immutable from the caller's perspective: every operation
// returns a fresh expression. Shape misuse panics (programmer error);
// data validation happens in the Model methods that create exprs.
type Expr struct {
	d     int
	field qmat.Field
	cols  map[int][]float64
	k     []float64
}

// Dim returns the matrix dimension of the expression.
func (e *Expr) Dim() int { return e.d }

func newExpr(d int, field qmat.Field) *Expr {
	return &Expr{
		d:     d,
		field: field,
		cols:  make(map[int][]float64),
		k:     make([]float64, qmat.VecLen(d, field)),
	}
}

func (e *Expr) clone() *Expr {
	out := newExpr(e.d, e.field)
	copy(out.k, e.k)
	for j, c := range e.cols {
		out.cols[j] = append([]float64(nil), c...)
	}

	return out
}

// Add returns e + b. Panics on dimension or field mismatch.
func (e *Expr) Add(b *Expr) *Expr {
	e.checkCompatible(b)
	out := e.clone()
	for i, v := range b.k {
		out.k[i] += v
	}
	for j, c := range b.cols {
		dst, ok := out.cols[j]
		if !ok {
			dst = make([]float64, len(out.k))
			out.cols[j] = dst
		}
		for i, v := range c {
			dst[i] += v
		}
	}

	return out
}

// Sub returns e − b.
func (e *Expr) Sub(b *Expr) *Expr {
	return e.Add(b.Scale(-1))
}

// Scale returns a·e.
func (e *Expr) Scale(a float64) *Expr {
	out := e.clone()
	for i := range out.k {
		out.k[i] *= a
	}
	for _, c := range out.cols {
		for i := range c {
			c[i] *= a
		}
	}

	return out
}

// ApplyLinear pushes a linear, Hermiticity-preserving matrix map through
// the expression: the result represents f(value(x)) with output dimension
// dOut. The map is invoked once per stored column plus once for the
// constant, so it must be cheap and must not retain its argument.
func (e *Expr) ApplyLinear(dOut int, f func(*qmat.Dense) *qmat.Dense) *Expr {
	out := newExpr(dOut, e.field)
	push := func(src []float64) []float64 {
		m := qmat.UnVec(src, e.d, e.field)

		return qmat.Vec(f(m), e.field)
	}
	out.k = push(e.k)
	for j, c := range e.cols {
		out.cols[j] = push(c)
	}

	return out
}

// eval materializes the expression value at a primal point x.
func (e *Expr) eval(x []float64) *qmat.Dense {
	v := append([]float64(nil), e.k...)
	for j, c := range e.cols {
		xv := x[j]
		if xv == 0 {
			continue
		}
		for i := range c {
			v[i] += c[i] * xv
		}
	}

	return qmat.UnVec(v, e.d, e.field)
}

func (e *Expr) checkCompatible(b *Expr) {
	if e.d != b.d || e.field != b.field {
		panic(fmt.Sprintf("conic: expr mismatch %d/%v vs %d/%v", e.d, e.field, b.d, b.field))
	}
}

// LinExpr is a scalar affine expression over the model's coordinates,
// used for objectives and scalar equality constraints.
type LinExpr struct {
	Coeffs map[int]float64
	Const  float64
}

func newLin() LinExpr { return LinExpr{Coeffs: make(map[int]float64)} }

// AddLin returns l + b.
func (l LinExpr) AddLin(b LinExpr) LinExpr {
	out := newLin()
	out.Const = l.Const + b.Const
	for j, v := range l.Coeffs {
		out.Coeffs[j] += v
	}
	for j, v := range b.Coeffs {
		out.Coeffs[j] += v
	}

	return out
}

// ScaleLin returns a·l.
func (l LinExpr) ScaleLin(a float64) LinExpr {
	out := newLin()
	out.Const = a * l.Const
	for j, v := range l.Coeffs {
		out.Coeffs[j] = a * v
	}

	return out
}

// eval computes the scalar value at a primal point x.
func (l LinExpr) eval(x []float64) float64 {
	v := l.Const
	for j, c := range l.Coeffs {
		v += c * x[j]
	}

	return v
}
