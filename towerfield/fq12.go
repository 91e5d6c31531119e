package towerfield

import "github.com/exfinen/zksnark-toolkit/field"

// FQ12 is an element w1*w + w0 of Fq6[w]/(w^2 - xi), the pairing target
// field for BLS12-381. No pairing is implemented here; this type only
// provides the tower arithmetic a pairing implementation would sit on top
// of.
type FQ12 struct {
	W1, W0 FQ6
}

// NewFQ12 constructs w1*w + w0.
func NewFQ12(w1, w0 FQ6) FQ12 {
	return FQ12{W1: w1, W0: w0}
}

// ZeroFQ12 returns the additive identity built over the base field f.
func ZeroFQ12(f *field.Field) FQ12 {
	z := ZeroFQ6(f)
	return FQ12{W1: z, W0: z}
}

// IsZero reports whether both tower components are zero.
//
// The Rust source this module is grounded on
// (original_source/.../bls12_381/fq12.rs) defines is_zero to unconditionally
// return true, almost certainly a stub that was never finished; resolved
// here to the actual predicate instead of reproducing the stub.
func (a FQ12) IsZero() bool {
	return a.W1.IsZero() && a.W0.IsZero()
}

// Equal reports component-wise equality.
func (a FQ12) Equal(b FQ12) bool {
	return a.W1.Equal(b.W1) && a.W0.Equal(b.W0)
}

// Add returns a + b.
func (a FQ12) Add(b FQ12) FQ12 {
	return FQ12{W1: a.W1.Add(b.W1), W0: a.W0.Add(b.W0)}
}

// Sub returns a - b.
func (a FQ12) Sub(b FQ12) FQ12 {
	return FQ12{W1: a.W1.Sub(b.W1), W0: a.W0.Sub(b.W0)}
}

// Neg returns -a.
func (a FQ12) Neg() FQ12 {
	return FQ12{W1: a.W1.Neg(), W0: a.W0.Neg()}
}

// Mul returns a * b modulo w^2 - xi:
//
//	w1'' = a1 b0 + a0 b1
//	w0'' = a0 b0 + xi (a1 b1)
//
// where the xi(...) term is FQ6.Reduce, reused unchanged from the y^3 = xi
// reduction one tower level down.
func (a FQ12) Mul(b FQ12) FQ12 {
	return FQ12{
		W1: a.W1.Mul(b.W0).Add(a.W0.Mul(b.W1)),
		W0: a.W0.Mul(b.W0).Add(a.W1.Mul(b.W1).Reduce()),
	}
}

// Sq returns a * a.
func (a FQ12) Sq() FQ12 {
	return a.Mul(a)
}

// Inv returns the multiplicative inverse of a using the same norm trick as
// FQ2/FQ6: inv(w1 w + w0) = (-w1 f, w0 f) where f = inv(w0^2 - xi w1^2).
func (a FQ12) Inv() (FQ12, error) {
	factor, err := a.W0.Mul(a.W0).Sub(a.W1.Mul(a.W1).Reduce()).Inv()
	if err != nil {
		return FQ12{}, err
	}
	return FQ12{W1: a.W1.Neg().Mul(factor), W0: a.W0.Mul(factor)}, nil
}

// Reduce is not implemented. The original source
// (original_source/.../bls12_381/fq12.rs) panics unconditionally here,
// noting the method is part of the Reduce trait contract but unreachable in
// practice since only FQ6.Reduce is ever called during FQ12 arithmetic; kept
// unreachable rather than guessing an intended behavior.
func (a FQ12) Reduce() FQ12 {
	panic("towerfield: FQ12.Reduce is not implemented (unreachable in this tower)")
}
