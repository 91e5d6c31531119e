// Package qap assembles a quadratic arithmetic program from an R1CS
// template: one polynomial per witness column, interpolated through
// polynomial.Interpolate at the gate-indexed evaluation points, plus the
// vanishing polynomial over those same points. Grounded on the general
// shape of the zk/w_trusted_setup/qap tree's Pinocchio/Groth16 QAP
// construction.
package qap

import (
	"errors"

	"github.com/exfinen/zksnark-toolkit/field"
	"github.com/exfinen/zksnark-toolkit/polynomial"
	"github.com/exfinen/zksnark-toolkit/r1cs"
)

// ErrProtocol is returned when building a QAP from a template with zero
// constraints.
var ErrProtocol = errors.New("qap: template has no constraints")

// QAP holds the interpolated A/B/C column polynomials, indexed by witness
// slot, and the vanishing polynomial Z over the gate evaluation points
// 1..NumGates.
type QAP struct {
	F        *field.Field
	NumGates int
	A, B, C  []*polynomial.Polynomial
	Z        *polynomial.Polynomial
}

// Build interpolates tmpl's per-gate A/B/C columns into polynomials over
// the evaluation points 1..len(tmpl.Constraints), and constructs the
// vanishing polynomial Z(x) = prod_{j=1}^{g} (x - j).
func Build(f *field.Field, tmpl *r1cs.Template) (*QAP, error) {
	g := len(tmpl.Constraints)
	if g == 0 {
		return nil, ErrProtocol
	}

	points := make([]field.Elem, g)
	for j := 0; j < g; j++ {
		points[j] = f.ElemUint64(uint64(j + 1))
	}

	numSlots := len(tmpl.Witness)
	a := make([]*polynomial.Polynomial, numSlots)
	b := make([]*polynomial.Polynomial, numSlots)
	c := make([]*polynomial.Polynomial, numSlots)

	for slot := 0; slot < numSlots; slot++ {
		a[slot] = polynomial.Interpolate(f, points, columnValues(tmpl.Constraints, slot, func(con r1cs.Constraint) field.Elem { return con.A.Get(slot) }))
		b[slot] = polynomial.Interpolate(f, points, columnValues(tmpl.Constraints, slot, func(con r1cs.Constraint) field.Elem { return con.B.Get(slot) }))
		c[slot] = polynomial.Interpolate(f, points, columnValues(tmpl.Constraints, slot, func(con r1cs.Constraint) field.Elem { return con.C.Get(slot) }))
	}

	return &QAP{
		F:        f,
		NumGates: g,
		A:        a,
		B:        b,
		C:        c,
		Z:        vanishing(f, points),
	}, nil
}

func columnValues(constraints []r1cs.Constraint, slot int, get func(r1cs.Constraint) field.Elem) []field.Elem {
	values := make([]field.Elem, len(constraints))
	for j, con := range constraints {
		values[j] = get(con)
	}
	return values
}

// vanishing returns Z(x) = prod_j (x - points[j]).
func vanishing(f *field.Field, points []field.Elem) *polynomial.Polynomial {
	z := polynomial.New(f, []field.Elem{f.One()})
	for _, x := range points {
		z = z.Mul(polynomial.New(f, []field.Elem{x.Neg(), f.One()}))
	}
	return z
}

// Solve evaluates the QAP at the given full witness assignment (one
// field.Elem per tmpl.Witness slot) and returns H = (A(x)*B(x) - C(x)) / Z(x).
// ok is false when the division has a non-zero remainder, meaning witness
// does not satisfy the circuit.
func (q *QAP) Solve(witness []field.Elem) (h *polynomial.Polynomial, ok bool) {
	asum := polynomial.Zero(q.F)
	bsum := polynomial.Zero(q.F)
	csum := polynomial.Zero(q.F)

	for i, w := range witness {
		asum = asum.Add(q.A[i].Scale(w))
		bsum = bsum.Add(q.B[i].Scale(w))
		csum = csum.Add(q.C[i].Scale(w))
	}

	p := asum.Mul(bsum).Sub(csum)
	div := p.Div(q.Z)
	if div.Remainder != nil && !div.Remainder.IsZero() {
		return div.Quotient, false
	}
	return div.Quotient, true
}
