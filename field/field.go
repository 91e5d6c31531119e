// Package field implements prime field Fq arithmetic: a modulus-carrying
// Field and its immutable value-type Elem, with modular add/sub/mul/neg,
// extended-Euclidean inversion, square-and-multiply exponentiation, and
// uniform sampling. Every operation returns a fresh Elem; values are never
// mutated in place.
package field

import (
	"errors"
	"io"
	"math/big"

	"github.com/exfinen/zksnark-toolkit/bigint"
)

// ErrZeroInverse is returned by Inv when called on the zero element.
var ErrZeroInverse = errors.New("field: cannot invert zero")

// ErrFieldMismatch is a programmer error: a binary operation was attempted
// between elements of two different fields.
var ErrFieldMismatch = errors.New("field: elements belong to different fields")

// Field identifies a prime modulus p. Field values are immutable and
// intended to be created once (e.g. as a package-level var) and shared.
type Field struct {
	p *big.Int
}

// NewField returns the field Fp. p is assumed prime; this is not checked.
func NewField(p *big.Int) *Field {
	return &Field{p: new(big.Int).Set(p)}
}

// P returns the field's modulus.
func (f *Field) P() *big.Int {
	return new(big.Int).Set(f.p)
}

// Elem reduces n modulo p and returns the resulting field element.
func (f *Field) Elem(n *big.Int) Elem {
	return Elem{f: f, v: bigint.Reduce(n, f.p)}
}

// ElemUint64 is a convenience constructor for small constants.
func (f *Field) ElemUint64(n uint64) Elem {
	return f.Elem(new(big.Int).SetUint64(n))
}

// ElemFromSigned reduces a possibly-negative integer modulo p.
func (f *Field) ElemFromSigned(n *big.Int) Elem {
	return f.Elem(n)
}

// Zero returns the additive identity of f.
func (f *Field) Zero() Elem {
	return Elem{f: f, v: big.NewInt(0)}
}

// One returns the multiplicative identity of f.
func (f *Field) One() Elem {
	return Elem{f: f, v: big.NewInt(1)}
}

// RandElem draws a uniform value in [0, p) from the entropy source r via
// bigint.RandBelow, and resamples when excludeZero is set and the draw is
// zero.
func (f *Field) RandElem(excludeZero bool, r io.Reader) (Elem, error) {
	for {
		n, err := bigint.RandBelow(f.p, r)
		if err != nil {
			return Elem{}, err
		}
		if excludeZero && n.Sign() == 0 {
			continue
		}
		return Elem{f: f, v: n}, nil
	}
}

// Equal reports whether f and g identify the same modulus.
func (f *Field) Equal(g *Field) bool {
	return f.p.Cmp(g.p) == 0
}

// Elem is an immutable element of a prime field. The zero value is not
// usable; construct elements via Field.Elem or one of its variants.
type Elem struct {
	f *Field
	v *big.Int
}

func (e Elem) requireSameField(o Elem) {
	if e.f == nil || o.f == nil || !e.f.Equal(o.f) {
		panic(ErrFieldMismatch)
	}
}

// Field returns the field this element belongs to.
func (e Elem) Field() *Field { return e.f }

// BigInt returns the element's representative in [0, p) as a *big.Int. The
// returned value is a copy; mutating it does not affect e.
func (e Elem) BigInt() *big.Int {
	return new(big.Int).Set(e.v)
}

// IsZero reports whether e is the additive identity.
func (e Elem) IsZero() bool {
	return e.v.Sign() == 0
}

// Equal reports value equality within a matching field.
func (e Elem) Equal(o Elem) bool {
	e.requireSameField(o)
	return e.v.Cmp(o.v) == 0
}

// Cmp orders two elements of the same field by value.
func (e Elem) Cmp(o Elem) int {
	e.requireSameField(o)
	return e.v.Cmp(o.v)
}

// Add returns e + o.
func (e Elem) Add(o Elem) Elem {
	e.requireSameField(o)
	return Elem{f: e.f, v: bigint.AddMod(e.v, o.v, e.f.p)}
}

// Sub returns e - o.
func (e Elem) Sub(o Elem) Elem {
	e.requireSameField(o)
	return Elem{f: e.f, v: bigint.SubMod(e.v, o.v, e.f.p)}
}

// Mul returns e * o.
func (e Elem) Mul(o Elem) Elem {
	e.requireSameField(o)
	return Elem{f: e.f, v: bigint.MulMod(e.v, o.v, e.f.p)}
}

// Neg returns -e. -0 is 0.
func (e Elem) Neg() Elem {
	return Elem{f: e.f, v: bigint.NegMod(e.v, e.f.p)}
}

// Sq returns e * e.
func (e Elem) Sq() Elem {
	return e.Mul(e)
}

// Cube returns e * e * e.
func (e Elem) Cube() Elem {
	return e.Mul(e).Mul(e)
}

// Inv returns the multiplicative inverse of e via the extended Euclidean
// algorithm on (e.v, p). Fails with ErrZeroInverse when e is zero.
func (e Elem) Inv() (Elem, error) {
	if e.IsZero() {
		return Elem{}, ErrZeroInverse
	}
	p := e.f.p

	// x0*a + y0*p = r0; x1*a + y1*p = r1, starting r0=a, r1=p.
	r0, r1 := new(big.Int).Set(e.v), new(big.Int).Set(p)
	x0, x1 := big.NewInt(1), big.NewInt(0)

	for r1.Sign() != 0 {
		q := new(big.Int)
		r2 := new(big.Int)
		q.DivMod(r0, r1, r2)
		x2 := new(big.Int).Sub(x0, new(big.Int).Mul(q, x1))

		r0, r1 = r1, r2
		x0, x1 = x1, x2
	}

	return Elem{f: e.f, v: bigint.Reduce(x0, p)}, nil
}

// MustInv is Inv but panics on failure; useful in tests and demo code where
// the operand is known to be non-zero.
func (e Elem) MustInv() Elem {
	inv, err := e.Inv()
	if err != nil {
		panic(err)
	}
	return inv
}

// Div returns e / o, failing with ErrZeroInverse if o is zero.
func (e Elem) Div(o Elem) (Elem, error) {
	e.requireSameField(o)
	inv, err := o.Inv()
	if err != nil {
		return Elem{}, err
	}
	return e.Mul(inv), nil
}

// Pow raises e to the exponent exp using a little-endian square-and-multiply
// ladder: O(log exp) multiplications.
func (e Elem) Pow(exp *big.Int) Elem {
	sum := e.f.One()
	base := e
	n := new(big.Int).Set(exp)
	zero := big.NewInt(0)
	for n.Cmp(zero) > 0 {
		if n.Bit(0) == 1 {
			sum = sum.Mul(base)
		}
		base = base.Mul(base)
		n.Rsh(n, 1)
	}
	return sum
}

// PowSeq returns the sequence 1, e, e^2, ..., e^(k-1).
func (e Elem) PowSeq(k int) []Elem {
	out := make([]Elem, k)
	cur := e.f.One()
	for i := 0; i < k; i++ {
		out[i] = cur
		cur = cur.Mul(e)
	}
	return out
}

// Repeat returns k copies of e.
func (e Elem) Repeat(k int) []Elem {
	out := make([]Elem, k)
	for i := range out {
		out[i] = e
	}
	return out
}

// Bytes returns the big-endian representation of e's representative,
// zero-padded to the byte length of the field's modulus.
func (e Elem) Bytes() []byte {
	n := bigint.ByteLen(e.f.p)
	b := e.v.Bytes()
	if len(b) >= n {
		return b
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}

// SetBytes interprets b as a big-endian integer and reduces it into f.
func (f *Field) SetBytes(b []byte) Elem {
	return f.Elem(new(big.Int).SetBytes(b))
}

// String returns the decimal representation of the element's value.
func (e Elem) String() string {
	return e.v.String()
}
