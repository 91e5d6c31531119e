// Package towerfield implements the extension tower Fq -> Fq2 -> Fq6 -> Fq12
// used as the target group of the BLS12-381 pairing (the pairing itself is
// out of scope). Each extension is a fixed-arity tuple of the parent
// field's elements, with arithmetic defined by a fixed irreducible/non-residue,
// exactly as in
// _examples/original_source/src/building_block/curves/bls12_381/fq12.rs.
package towerfield

import "github.com/exfinen/zksnark-toolkit/field"

// FQ2 is an element u1*i + u0 of Fq[i]/(i^2+1).
type FQ2 struct {
	U1, U0 field.Elem
}

// NewFQ2 constructs u1*i + u0.
func NewFQ2(u1, u0 field.Elem) FQ2 {
	return FQ2{U1: u1, U0: u0}
}

// ZeroFQ2 returns the additive identity in f.
func ZeroFQ2(f *field.Field) FQ2 {
	return FQ2{U1: f.Zero(), U0: f.Zero()}
}

// IsZero reports whether both components are zero.
func (x FQ2) IsZero() bool {
	return x.U1.IsZero() && x.U0.IsZero()
}

// Equal reports component-wise equality.
func (x FQ2) Equal(y FQ2) bool {
	return x.U1.Equal(y.U1) && x.U0.Equal(y.U0)
}

// Add returns x + y.
func (x FQ2) Add(y FQ2) FQ2 {
	return FQ2{U1: x.U1.Add(y.U1), U0: x.U0.Add(y.U0)}
}

// Sub returns x - y.
func (x FQ2) Sub(y FQ2) FQ2 {
	return FQ2{U1: x.U1.Sub(y.U1), U0: x.U0.Sub(y.U0)}
}

// Neg returns -x.
func (x FQ2) Neg() FQ2 {
	return FQ2{U1: x.U1.Neg(), U0: x.U0.Neg()}
}

// Mul returns x * y, reducing i^2 = -1:
// (u1 i + u0)(v1 i + v0) = (u0v0 - u1v1) + (u0v1 + u1v0) i.
func (x FQ2) Mul(y FQ2) FQ2 {
	return FQ2{
		U1: x.U0.Mul(y.U1).Add(x.U1.Mul(y.U0)),
		U0: x.U0.Mul(y.U0).Sub(x.U1.Mul(y.U1)),
	}
}

// Sq returns x * x.
func (x FQ2) Sq() FQ2 {
	return x.Mul(x)
}

// Scale returns x scaled by a base-field element.
func (x FQ2) Scale(s field.Elem) FQ2 {
	return FQ2{U1: x.U1.Mul(s), U0: x.U0.Mul(s)}
}

// Inv returns the multiplicative inverse of x using the norm trick:
// inv(u0 + u1*i) = (u0 - u1*i) / (u0^2 + u1^2).
func (x FQ2) Inv() (FQ2, error) {
	norm := x.U0.Mul(x.U0).Add(x.U1.Mul(x.U1))
	normInv, err := norm.Inv()
	if err != nil {
		return FQ2{}, err
	}
	return FQ2{U1: x.U1.Neg().Mul(normInv), U0: x.U0.Mul(normInv)}, nil
}
