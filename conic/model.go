// SPDX-License-Identifier: MIT

package conic

import (
	"fmt"

	"github.com/qinfo-go/qinfo/qmat"
)

// VarID identifies a PSD matrix variable within its model.
type VarID int

// ScalarID identifies a free scalar variable within its model.
type ScalarID int

type psdVar struct {
	d      int
	off    int
	length int
}

type eqCon struct {
	name string
	expr *Expr // constraint: value(x) == 0, elementwise in codec coords
}

type scalarEqCon struct {
	name string
	lin  LinExpr
	rhs  float64
}

type relEntCon struct {
	t     ScalarID
	rho   *qmat.Dense
	sigma *Expr
}

// Model is a conic program under construction: PSD matrix variables over
// one coefficient field, free scalars, equality and cone constraints and
// a linear objective. A Model is owned by a single goroutine for its
// whole build-solve-extract lifetime.
type Model struct {
	field     qmat.Field
	psd       []psdVar
	scalarOff []int
	nx        int

	eqs       []eqCon
	scalarEqs []scalarEqCon
	psdCons   []*Expr
	relEnt    *relEntCon

	names map[string]bool

	objective LinExpr
	maximize  bool
	hasObj    bool
}

// NewModel creates an empty model over the given coefficient field.
// The field decides the PSD cone flavor (real-symmetric vs Hermitian)
// and the vectorization codec for every expression in the model.
func NewModel(field qmat.Field) *Model {
	return &Model{field: field, names: make(map[string]bool)}
}

// Field returns the model's coefficient field.
func (m *Model) Field() qmat.Field { return m.field }

// AddPSDVariable declares a d×d PSD matrix variable and returns its id.
func (m *Model) AddPSDVariable(d int) VarID {
	if d <= 0 {
		panic(fmt.Sprintf("conic: AddPSDVariable with d=%d", d))
	}
	length := qmat.VecLen(d, m.field)
	m.psd = append(m.psd, psdVar{d: d, off: m.nx, length: length})
	m.nx += length

	return VarID(len(m.psd) - 1)
}

// AddScalar declares a free scalar variable and returns its id.
func (m *Model) AddScalar() ScalarID {
	m.scalarOff = append(m.scalarOff, m.nx)
	m.nx++

	return ScalarID(len(m.scalarOff) - 1)
}

// PSDExpr returns the affine expression selecting PSD variable id.
func (m *Model) PSDExpr(id VarID) *Expr {
	v := m.psd[id]
	e := newExpr(v.d, m.field)
	for i := 0; i < v.length; i++ {
		col := make([]float64, v.length)
		col[i] = 1
		e.cols[v.off+i] = col
	}

	return e
}

// ConstExpr wraps a constant Hermitian matrix as an expression. Fails
// with ErrNotHermitian before anything is built when c violates
// Hermiticity within tolerance.
func (m *Model) ConstExpr(c *qmat.Dense) (*Expr, error) {
	if !c.IsHermitian(-1) {
		return nil, ErrNotHermitian
	}
	d, _ := c.Dims()
	e := newExpr(d, m.field)
	e.k = qmat.Vec(c, m.field)

	return e, nil
}

// ScaledExpr returns s·c for a scalar variable s and a constant Hermitian
// matrix c.
func (m *Model) ScaledExpr(s ScalarID, c *qmat.Dense) (*Expr, error) {
	if !c.IsHermitian(-1) {
		return nil, ErrNotHermitian
	}
	d, _ := c.Dims()
	e := newExpr(d, m.field)
	e.cols[m.scalarOff[s]] = qmat.Vec(c, m.field)

	return e, nil
}

// ScalarLin returns the scalar variable s as a LinExpr.
func (m *Model) ScalarLin(s ScalarID) LinExpr {
	l := newLin()
	l.Coeffs[m.scalarOff[s]] = 1

	return l
}

// InnerLin returns the scalar affine expression tr(g†·e(x)) for a
// constant Hermitian g, using the inner-product-preserving property of
// the codec: the coefficient of each coordinate is the Euclidean dot of
// Vec(g) with the expression column.
func (m *Model) InnerLin(g *qmat.Dense, e *Expr) (LinExpr, error) {
	if !g.IsHermitian(-1) {
		return LinExpr{}, ErrNotHermitian
	}
	gd, _ := g.Dims()
	if gd != e.d {
		return LinExpr{}, fmt.Errorf("inner product of %d×%d against expr dim %d: %w", gd, gd, e.d, ErrModel)
	}
	gv := qmat.Vec(g, m.field)

	l := newLin()
	for j, c := range e.cols {
		var dot float64
		for i := range gv {
			dot += gv[i] * c[i]
		}
		if dot != 0 {
			l.Coeffs[j] = dot
		}
	}
	for i := range gv {
		l.Const += gv[i] * e.k[i]
	}

	return l, nil
}

// TraceLin returns tr(e(x)) as a scalar affine expression.
func (m *Model) TraceLin(e *Expr) LinExpr {
	l, err := m.InnerLin(qmat.Eye(e.d), e)
	if err != nil {
		// The identity is always Hermitian and dimension-matched.
		panic(err)
	}

	return l
}

// RequireEqual adds the named elementwise equality a == b over Hermitian
// matrix expressions. The name keys the constraint's dual value in the
// solver result.
func (m *Model) RequireEqual(name string, a, b *Expr) error {
	if err := m.claimName(name); err != nil {
		return err
	}
	a.checkCompatible(b)
	m.eqs = append(m.eqs, eqCon{name: name, expr: a.Sub(b)})

	return nil
}

// RequireScalarEqual adds the named scalar equality lin == rhs.
func (m *Model) RequireScalarEqual(name string, lin LinExpr, rhs float64) error {
	if err := m.claimName(name); err != nil {
		return err
	}
	m.scalarEqs = append(m.scalarEqs, scalarEqCon{name: name, lin: lin, rhs: rhs})

	return nil
}

// RequirePSD constrains the expression to the PSD cone of the model's
// field.
func (m *Model) RequirePSD(e *Expr) {
	m.psdCons = append(m.psdCons, e)
}

// RequireRelEntropyEpigraph constrains t ≥ D(rho ‖ sigma(x)) in nats: the
// relative-entropy cone of dimension 1 + 2·VecLen(d, field) linking the
// epigraph scalar with the coded rho and sigma. At most one such
// constraint per model; rho must be Hermitian.
func (m *Model) RequireRelEntropyEpigraph(t ScalarID, rho *qmat.Dense, sigma *Expr) error {
	if m.relEnt != nil {
		return fmt.Errorf("second relative-entropy epigraph: %w", ErrModel)
	}
	if !rho.IsHermitian(-1) {
		return ErrNotHermitian
	}
	rd, _ := rho.Dims()
	if rd != sigma.d {
		return fmt.Errorf("rho dim %d vs sigma dim %d: %w", rd, sigma.d, ErrModel)
	}
	m.relEnt = &relEntCon{t: t, rho: rho.Clone(), sigma: sigma}

	return nil
}

// Minimize sets the objective to minimize lin.
func (m *Model) Minimize(lin LinExpr) {
	m.objective = lin
	m.maximize = false
	m.hasObj = true
}

// Maximize sets the objective to maximize lin.
func (m *Model) Maximize(lin LinExpr) {
	m.objective = lin
	m.maximize = true
	m.hasObj = true
}

func (m *Model) claimName(name string) error {
	if name == "" {
		return fmt.Errorf("empty constraint name: %w", ErrModel)
	}
	if m.names[name] {
		return fmt.Errorf("duplicate constraint name %q: %w", name, ErrModel)
	}
	m.names[name] = true

	return nil
}

// cloneStructure copies the model's variables and constraints into a new
// model sharing the same coordinate layout, without the relative-entropy
// epigraph and without an objective. Used by the Frank–Wolfe driver to
// pose linearized subproblems.
func (m *Model) cloneStructure() *Model {
	out := NewModel(m.field)
	out.psd = append([]psdVar(nil), m.psd...)
	out.scalarOff = append([]int(nil), m.scalarOff...)
	out.nx = m.nx
	out.eqs = append([]eqCon(nil), m.eqs...)
	out.scalarEqs = append([]scalarEqCon(nil), m.scalarEqs...)
	out.psdCons = append([]*Expr(nil), m.psdCons...)
	for n := range m.names {
		out.names[n] = true
	}

	return out
}
