package towerfield

import "github.com/exfinen/zksnark-toolkit/field"

// FQ6 is an element v2*y^2 + v1*y + v0 of Fq2[y]/(y^3 - xi), with the fixed
// non-residue xi = u + 1 (encoded as FQ2{U1: 1, U0: 1}).
type FQ6 struct {
	V2, V1, V0 FQ2
}

// NewFQ6 constructs v2*y^2 + v1*y + v0.
func NewFQ6(v2, v1, v0 FQ2) FQ6 {
	return FQ6{V2: v2, V1: v1, V0: v0}
}

// xi returns the fixed non-residue u + 1 in the field f carries.
func xi(f *field.Field) FQ2 {
	return FQ2{U1: f.One(), U0: f.One()}
}

// ZeroFQ6 returns the additive identity in f.
func ZeroFQ6(f *field.Field) FQ6 {
	z := ZeroFQ2(f)
	return FQ6{V2: z, V1: z, V0: z}
}

// IsZero reports whether all three components are zero.
func (a FQ6) IsZero() bool {
	return a.V2.IsZero() && a.V1.IsZero() && a.V0.IsZero()
}

// Equal reports component-wise equality.
func (a FQ6) Equal(b FQ6) bool {
	return a.V2.Equal(b.V2) && a.V1.Equal(b.V1) && a.V0.Equal(b.V0)
}

// Add returns a + b.
func (a FQ6) Add(b FQ6) FQ6 {
	return FQ6{V2: a.V2.Add(b.V2), V1: a.V1.Add(b.V1), V0: a.V0.Add(b.V0)}
}

// Sub returns a - b.
func (a FQ6) Sub(b FQ6) FQ6 {
	return FQ6{V2: a.V2.Sub(b.V2), V1: a.V1.Sub(b.V1), V0: a.V0.Sub(b.V0)}
}

// Neg returns -a.
func (a FQ6) Neg() FQ6 {
	return FQ6{V2: a.V2.Neg(), V1: a.V1.Neg(), V0: a.V0.Neg()}
}

// fieldOf recovers the base Fq field carried by a's V0.U0 component (every
// element built over a Field carries it, zero included) so that the fixed
// non-residue xi can be constructed even when a itself is the zero element.
func (a FQ6) fieldOf() *field.Field {
	return a.V0.U0.Field()
}

// Reduce computes xi * a, the reduction applied whenever the symbolic
// expansion of a product produces a y^3 term (y^3 = xi). This same helper is
// reused, unchanged, by FQ12 multiplication and inversion.
func (a FQ6) Reduce() FQ6 {
	x := xi(a.fieldOf())
	return FQ6{V2: a.V2.Mul(x), V1: a.V1.Mul(x), V0: a.V0.Mul(x)}
}

// Mul returns a * b modulo y^3 - xi:
//
//	c0 = a0 b0 + xi (a1 b2 + a2 b1)
//	c1 = a0 b1 + a1 b0 + xi a2 b2
//	c2 = a0 b2 + a1 b1 + a2 b0
func (a FQ6) Mul(b FQ6) FQ6 {
	x := xi(a.fieldOf())
	c0 := a.V0.Mul(b.V0).Add(x.Mul(a.V1.Mul(b.V2).Add(a.V2.Mul(b.V1))))
	c1 := a.V0.Mul(b.V1).Add(a.V1.Mul(b.V0)).Add(x.Mul(a.V2.Mul(b.V2)))
	c2 := a.V0.Mul(b.V2).Add(a.V1.Mul(b.V1)).Add(a.V2.Mul(b.V0))
	return FQ6{V2: c2, V1: c1, V0: c0}
}

// Sq returns a * a.
func (a FQ6) Sq() FQ6 {
	return a.Mul(a)
}

// Inv returns the multiplicative inverse of a, derived via Cramer's rule on
// the linear system a*b = 1 expanded in the y^3 = xi basis:
//
//	t0 = a0^2 - xi a1 a2
//	t1 = xi a2^2 - a0 a1
//	t2 = a1^2 - a0 a2
//	norm = a0 t0 + xi a2 t1 + xi a1 t2
//	b = (t0, t1, t2) / norm
func (a FQ6) Inv() (FQ6, error) {
	x := xi(a.fieldOf())
	t0 := a.V0.Mul(a.V0).Sub(x.Mul(a.V1.Mul(a.V2)))
	t1 := x.Mul(a.V2.Mul(a.V2)).Sub(a.V0.Mul(a.V1))
	t2 := a.V1.Mul(a.V1).Sub(a.V0.Mul(a.V2))

	norm := a.V0.Mul(t0).Add(x.Mul(a.V2.Mul(t1))).Add(x.Mul(a.V1.Mul(t2)))
	normInv, err := norm.Inv()
	if err != nil {
		return FQ6{}, err
	}
	return FQ6{V2: t2.Mul(normInv), V1: t1.Mul(normInv), V0: t0.Mul(normInv)}, nil
}
