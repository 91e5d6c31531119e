// Package edwards implements Ed25519's twisted-Edwards curve arithmetic:
// the unified addition law, affine point encoding/decoding per RFC 8032,
// and x-coordinate recovery from y. Grounded on
// _examples/original_source/src/building_block/ed25519_sha512.rs.
package edwards

import (
	"errors"
	"math/big"

	"github.com/exfinen/zksnark-toolkit/field"
)

// ErrInvalidEncoding is returned by Decode when the encoded y-coordinate
// has no corresponding curve point of the requested parity.
var ErrInvalidEncoding = errors.New("edwards: invalid point encoding")

// Curve25519Field is Fq with q = 2^255 - 19, the base field of Ed25519.
func Curve25519Field() *field.Field {
	q := new(big.Int).Lsh(big.NewInt(1), 255)
	q.Sub(q, big.NewInt(19))
	return field.NewField(q)
}

// Curve holds the Ed25519 curve parameters: base field, the curve constant
// d in -x^2 + y^2 = 1 + d*x^2*y^2, and the base point B.
type Curve struct {
	F *field.Field
	D field.Elem
	B Point
}

// Point is an affine point (X, Y) on the twisted-Edwards curve. There is no
// separate point at infinity: the curve's identity is the affine point
// (0, 1), which the addition law handles without special-casing.
type Point struct {
	X, Y field.Elem
}

// New builds the standard Ed25519 curve: q = 2^255 - 19,
// d = -121665/121666, and base point (+x, 4/5) with even x.
func New() *Curve {
	f := Curve25519Field()
	d := f.ElemUint64(121665).Neg().Mul(f.ElemUint64(121666).MustInv())

	by := f.ElemUint64(4).Mul(f.ElemUint64(5).MustInv())
	bx, err := RecoverX(f, d, by, ParityEven)
	if err != nil {
		panic("edwards: base point has no valid x: " + err.Error())
	}

	return &Curve{F: f, D: d, B: Point{X: bx, Y: by}}
}

// Identity returns the curve's neutral element (0, 1).
func (c *Curve) Identity() Point {
	return Point{X: c.F.Zero(), Y: c.F.One()}
}

// IsOnCurve reports whether p satisfies -x^2 + y^2 = 1 + d*x^2*y^2.
func (c *Curve) IsOnCurve(p Point) bool {
	x2 := p.X.Sq()
	y2 := p.Y.Sq()
	lhs := y2.Sub(x2)
	rhs := c.F.One().Add(c.D.Mul(x2).Mul(y2))
	return lhs.Equal(rhs)
}

// Equal reports coordinate-wise equality.
func (p Point) Equal(q Point) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Add implements the unified Edwards addition law:
//
//	(x1,y1) + (x2,y2) = ( (x1y2+x2y1)/(1+d x1x2y1y2), (y1y2+x1x2)/(1-d x1x2y1y2) )
//
// The law is complete: it requires no case analysis on its inputs,
// including when either operand is the identity.
func (c *Curve) Add(p, q Point) Point {
	x1y2 := p.X.Mul(q.Y)
	x2y1 := q.X.Mul(p.Y)
	y1y2 := p.Y.Mul(q.Y)
	x1x2 := p.X.Mul(q.X)
	x1x2y1y2 := x1y2.Mul(x2y1)

	one := c.F.One()
	x := x1y2.Add(x2y1).Mul(one.Add(c.D.Mul(x1x2y1y2)).MustInv())
	y := y1y2.Add(x1x2).Mul(one.Sub(c.D.Mul(x1x2y1y2)).MustInv())
	return Point{X: x, Y: y}
}

// Double returns p + p.
func (c *Curve) Double(p Point) Point {
	return c.Add(p, p)
}

// ScalarMul computes k*p via right-to-left double-and-add over k's bits,
// least significant bit first.
func (c *Curve) ScalarMul(p Point, k *big.Int) Point {
	result := c.Identity()
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

// Parity is the least significant bit of a field element's canonical
// integer representative, used to disambiguate the two square roots
// returned by x-coordinate recovery.
type Parity int

const (
	ParityEven Parity = iota
	ParityOdd
)

func parityOf(e field.Elem) Parity {
	if e.BigInt().Bit(0) == 0 {
		return ParityEven
	}
	return ParityOdd
}

// RecoverX computes the x-coordinate of a curve point given its
// y-coordinate and the desired parity of x, per RFC 8032 section 5.1.3:
//
//	x^2 = (y^2 - 1) / (d*y^2 + 1)
//
// A candidate square root is taken via the (q+3)/8 exponent (valid when
// q = 5 mod 8, as for 2^255-19); if squaring the candidate doesn't recover
// x^2, it is corrected by multiplying with 2^((q-1)/4). If neither
// candidate squares back to x^2, no point with this y exists.
func RecoverX(f *field.Field, d, y field.Elem, parity Parity) (field.Elem, error) {
	q := f.P()

	y2 := y.Sq()
	num := y2.Sub(f.One())
	den := d.Mul(y2).Add(f.One())
	denInv, err := den.Inv()
	if err != nil {
		return field.Elem{}, ErrInvalidEncoding
	}
	xx := num.Mul(denInv)

	exp := new(big.Int).Add(q, big.NewInt(3))
	exp.Div(exp, big.NewInt(8))
	x := xx.Pow(exp)

	if !x.Sq().Equal(xx) {
		iExp := new(big.Int).Sub(q, big.NewInt(1))
		iExp.Div(iExp, big.NewInt(4))
		i := f.ElemUint64(2).Pow(iExp)
		x = x.Mul(i)
	}

	if !x.Sq().Equal(xx) {
		return field.Elem{}, ErrInvalidEncoding
	}

	if x.IsZero() && parity == ParityOdd {
		return field.Elem{}, ErrInvalidEncoding
	}

	if parityOf(x) != parity {
		x = x.Neg()
	}
	return x, nil
}

// Encode serializes p as a 32-byte little-endian y with the sign of x
// folded into the top bit, per RFC 8032 section 5.1.2.
func (c *Curve) Encode(p Point) [32]byte {
	var buf [32]byte
	yBytes := leBytes(p.Y.BigInt(), 32)
	copy(buf[:], yBytes)
	if parityOf(p.X) == ParityOdd {
		buf[31] |= 0x80
	}
	return buf
}

// Decode recovers the point encoded by buf, failing if no point with the
// encoded y and sign bit exists.
func (c *Curve) Decode(buf [32]byte) (Point, error) {
	parity := ParityEven
	if buf[31]&0x80 != 0 {
		parity = ParityOdd
	}
	clean := buf
	clean[31] &= 0x7f

	y := c.F.SetBytes(reverse(clean[:]))
	x, err := RecoverX(c.F, c.D, y, parity)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// leBytes returns n's little-endian representation, zero-padded to size.
func leBytes(n *big.Int, size int) []byte {
	be := n.Bytes()
	out := make([]byte, size)
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

// reverse returns a copy of b with byte order reversed, converting between
// little-endian and big-endian integer encodings.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
