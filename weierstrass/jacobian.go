package weierstrass

import "github.com/exfinen/zksnark-toolkit/field"

// JacobianPoint is a point in Jacobian projective coordinates (X, Y, Z),
// representing the affine point (X/Z^2, Y/Z^3). Z = 0 denotes the identity
// and is never materialized as a concrete field element pair; only the
// zero-value's inf flag is consulted.
//
// The add-2007-bl and dbl-2009-l formulas used here assume A = 0, which
// holds for both curves this package instantiates (secp256k1 and BLS12-381
// G1); a curve with A != 0 is not supported in Jacobian form.
type JacobianPoint struct {
	inf     bool
	X, Y, Z field.Elem
}

// JacobianInfinity returns the identity in Jacobian form.
func (c *Curve) JacobianInfinity() JacobianPoint {
	return JacobianPoint{inf: true}
}

// ToJacobian lifts an affine point to Jacobian coordinates (Z = 1).
func (c *Curve) ToJacobian(p Point) JacobianPoint {
	if p.IsInfinity() {
		return c.JacobianInfinity()
	}
	return JacobianPoint{X: p.X, Y: p.Y, Z: c.F.One()}
}

// ToAffine projects back to affine coordinates: x = X/Z^2, y = Y/Z^3.
func (c *Curve) ToAffine(p JacobianPoint) Point {
	if p.inf {
		return c.Infinity()
	}
	zInv := p.Z.MustInv()
	zInv2 := zInv.Sq()
	zInv3 := zInv2.Mul(zInv)
	return c.NewAffine(p.X.Mul(zInv2), p.Y.Mul(zInv3))
}

// JacobianDouble doubles p using dbl-2009-l (specialized for A = 0).
func (c *Curve) JacobianDouble(p JacobianPoint) JacobianPoint {
	if p.inf || p.Y.IsZero() {
		return c.JacobianInfinity()
	}
	two := c.F.ElemUint64(2)
	three := c.F.ElemUint64(3)
	eight := c.F.ElemUint64(8)

	a := p.X.Sq()
	b := p.Y.Sq()
	cc := b.Sq()
	d := two.Mul(p.X.Add(b).Sq().Sub(a).Sub(cc))
	e := three.Mul(a)
	f := e.Sq()

	x3 := f.Sub(two.Mul(d))
	y3 := e.Mul(d.Sub(x3)).Sub(eight.Mul(cc))
	z3 := two.Mul(p.Y).Mul(p.Z)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}

// JacobianAdd adds p and q using add-2007-bl.
func (c *Curve) JacobianAdd(p, q JacobianPoint) JacobianPoint {
	if p.inf {
		return q
	}
	if q.inf {
		return p
	}

	z1z1 := p.Z.Sq()
	z2z2 := q.Z.Sq()
	u1 := p.X.Mul(z2z2)
	u2 := q.X.Mul(z1z1)
	s1 := p.Y.Mul(q.Z).Mul(z2z2)
	s2 := q.Y.Mul(p.Z).Mul(z1z1)

	h := u2.Sub(u1)
	if h.IsZero() {
		if s1.Equal(s2) {
			return c.JacobianDouble(p)
		}
		return c.JacobianInfinity()
	}

	two := c.F.ElemUint64(2)
	i := two.Mul(h).Sq()
	j := h.Mul(i)
	r := two.Mul(s2.Sub(s1))
	v := u1.Mul(i)

	x3 := r.Sq().Sub(j).Sub(two.Mul(v))
	y3 := r.Mul(v.Sub(x3)).Sub(two.Mul(s1).Mul(j))
	z3 := p.Z.Add(q.Z).Sq().Sub(z1z1).Sub(z2z2).Mul(h)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}
