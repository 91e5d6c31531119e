// Package weierstrass implements short-Weierstrass elliptic curve point
// arithmetic (affine addition law, doubling, scalar multiplication, and an
// optional Jacobian coordinate system) for curves of the form
// y^2 = x^3 + A*x + B, instantiated for secp256k1 and BLS12-381 G1. Grounded
// on
// _examples/original_source/src/building_block/elliptic_curve/weierstrass/curves/secp256k1.rs
// and .../bls12_381/bls12_381_g1.rs.
package weierstrass

import (
	"math/big"

	"github.com/exfinen/zksnark-toolkit/field"
)

// Curve is a short-Weierstrass curve y^2 = x^3 + A*x + B over a base field,
// together with a distinguished generator of prime order N.
type Curve struct {
	F      *field.Field // base field
	A, B   field.Elem
	Gx, Gy field.Elem
	N      *big.Int // subgroup order
}

// Point is a curve point: either the identity (AtInfinity) or an affine
// (X, Y) pair satisfying the curve equation.
type Point struct {
	inf  bool
	X, Y field.Elem
}

// Infinity returns the group identity.
func (c *Curve) Infinity() Point {
	return Point{inf: true}
}

// NewAffine returns the rational point (x, y). The caller is responsible for
// ensuring it satisfies the curve equation; use IsOnCurve to check.
func (c *Curve) NewAffine(x, y field.Elem) Point {
	return Point{X: x, Y: y}
}

// Generator returns the curve's distinguished base point.
func (c *Curve) Generator() Point {
	return c.NewAffine(c.Gx, c.Gy)
}

// IsInfinity reports whether p is the identity element.
func (p Point) IsInfinity() bool {
	return p.inf
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + A*x + B.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.inf {
		return true
	}
	lhs := p.Y.Sq()
	rhs := p.X.Cube().Add(c.A.Mul(p.X)).Add(c.B)
	return lhs.Equal(rhs)
}

// Equal reports equality by point identity/coordinates.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Neg returns -p.
func (p Point) Neg() Point {
	if p.inf {
		return p
	}
	return Point{X: p.X, Y: p.Y.Neg()}
}

// Add implements the affine addition law:
//
//	P + infinity = P; infinity + Q = Q
//	x1 == x2, y1 != y2 -> infinity
//	x1 == x2, y1 == y2 == 0 -> infinity
//	x1 == x2, y1 == y2 != 0 -> doubling via m = (3x1^2 + A) / (2y1)
//	x1 != x2 -> m = (y2 - y1) / (x2 - x1)
//	x3 = m^2 - x1 - x2 (or - 2x1 when doubling); y3 = m(x1 - x3) - y1
func (c *Curve) Add(p, q Point) Point {
	if p.inf {
		return q
	}
	if q.inf {
		return p
	}

	if p.X.Equal(q.X) {
		if !p.Y.Equal(q.Y) {
			return c.Infinity()
		}
		if p.Y.IsZero() {
			return c.Infinity()
		}
		two := c.F.ElemUint64(2)
		three := c.F.ElemUint64(3)
		num := three.Mul(p.X.Sq()).Add(c.A)
		den := two.Mul(p.Y)
		m := num.Mul(den.MustInv())
		x3 := m.Sq().Sub(two.Mul(p.X))
		y3 := m.Mul(p.X.Sub(x3)).Sub(p.Y)
		return c.NewAffine(x3, y3)
	}

	num := q.Y.Sub(p.Y)
	den := q.X.Sub(p.X)
	m := num.Mul(den.MustInv())
	x3 := m.Sq().Sub(p.X).Sub(q.X)
	y3 := m.Mul(p.X.Sub(x3)).Sub(p.Y)
	return c.NewAffine(x3, y3)
}

// Double returns p + p.
func (c *Curve) Double(p Point) Point {
	return c.Add(p, p)
}

// ScalarMul computes k*p via right-to-left double-and-add over k's bits,
// least significant bit first.
func (c *Curve) ScalarMul(p Point, k *big.Int) Point {
	result := c.Infinity()
	base := p
	n := new(big.Int).Set(k)
	zero := big.NewInt(0)
	for n.Cmp(zero) > 0 {
		if n.Bit(0) == 1 {
			result = c.Add(result, base)
		}
		base = c.Double(base)
		n.Rsh(n, 1)
	}
	return result
}
