// secp256k1.go adapts weierstrass.Curve/Point to the mutable-receiver
// Element/Group interfaces in group.go, grounded on
// _examples/takakv-msc-poc/algebra/p256.go's Point/CurveGroup (the same
// receiver-mutating shape, there wrapping github.com/ing-bank/zkrp's P256
// instead of this module's own curve arithmetic), adding the JSON/binary
// marshaling and MapToGroup that group.Element additionally requires.
package group

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/exfinen/zksnark-toolkit/field"
	"github.com/exfinen/zksnark-toolkit/hash"
	"github.com/exfinen/zksnark-toolkit/weierstrass"
)

// ErrInvalidEncoding is returned by UnmarshalBinary/UnmarshalJSON/SetBytes
// when the input cannot be decoded to a curve point.
var ErrInvalidEncoding = errors.New("group: invalid point encoding")

var (
	_ Group   = (*Secp256k1Group)(nil)
	_ Element = (*secp256k1Element)(nil)
)

// Secp256k1Group is the secp256k1 curve group, exposed through the
// mutable-receiver Group/Element interfaces.
type Secp256k1Group struct {
	curve *weierstrass.Curve
}

// NewSecp256k1Group returns the secp256k1 group.
func NewSecp256k1Group() *Secp256k1Group {
	return &Secp256k1Group{curve: weierstrass.Secp256k1()}
}

func (g *Secp256k1Group) Name() string { return "secp256k1" }

func (g *Secp256k1Group) Element() Element {
	return &secp256k1Element{g: g, p: g.curve.Infinity()}
}

func (g *Secp256k1Group) Generator() Element {
	return &secp256k1Element{g: g, p: g.curve.Generator()}
}

func (g *Secp256k1Group) Identity() Element {
	return &secp256k1Element{g: g, p: g.curve.Infinity()}
}

func (g *Secp256k1Group) Random() Element {
	e := g.Identity()
	r, err := g.curve.F.RandElem(false, rand.Reader)
	if err != nil {
		panic(err)
	}
	e.BaseScale(r.BigInt())
	return e
}

func (g *Secp256k1Group) P() *big.Int { return g.curve.F.P() }
func (g *Secp256k1Group) N() *big.Int { return new(big.Int).Set(g.curve.N) }

// secp256k1Element is a secp256k1 point, mutated in place by every Element
// method per the group.Element contract.
type secp256k1Element struct {
	g *Secp256k1Group
	p weierstrass.Point
}

func (e *secp256k1Element) check(x Element) *secp256k1Element {
	o, ok := x.(*secp256k1Element)
	if !ok {
		panic("group: incompatible element type")
	}
	return o
}

func (e *secp256k1Element) Add(x, y Element) Element {
	e.p = e.g.curve.Add(e.check(x).p, e.check(y).p)
	return e
}

func (e *secp256k1Element) Subtract(x, y Element) Element {
	e.p = e.g.curve.Add(e.check(x).p, e.check(y).p.Neg())
	return e
}

func (e *secp256k1Element) Negate(x Element) Element {
	e.p = e.check(x).p.Neg()
	return e
}

func (e *secp256k1Element) Scale(x Element, s *big.Int) Element {
	e.p = e.g.curve.ScalarMul(e.check(x).p, s)
	return e
}

func (e *secp256k1Element) BaseScale(s *big.Int) Element {
	e.p = e.g.curve.ScalarMul(e.g.curve.Generator(), s)
	return e
}

func (e *secp256k1Element) Set(x Element) Element {
	e.p = e.check(x).p
	return e
}

func (e *secp256k1Element) SetBytes(b []byte) Element {
	p, err := decodePoint(e.g.curve, b)
	if err != nil {
		panic(err)
	}
	e.p = p
	return e
}

// MapToGroup hashes s into a curve point by try-and-increment: hash s
// (appended with an increasing counter) with SHA-256 until the digest's
// reduction mod the base field lands on the curve, then take either
// square root of y.
func (e *secp256k1Element) MapToGroup(s string) (Element, error) {
	for counter := 0; ; counter++ {
		digest := hash.NewSha256().Sum([]byte(fmt.Sprintf("%s|%d", s, counter)))
		x := e.g.curve.F.Elem(new(big.Int).SetBytes(digest[:]))
		rhs := x.Cube().Add(e.g.curve.A.Mul(x)).Add(e.g.curve.B)
		y, err := sqrtMod(e.g.curve.F, rhs)
		if err != nil {
			continue
		}
		return &secp256k1Element{g: e.g, p: e.g.curve.NewAffine(x, y)}, nil
	}
}

func (e *secp256k1Element) IsEqual(x Element) bool {
	return e.p.Equal(e.check(x).p)
}

func (e *secp256k1Element) IsIdentity() bool {
	return e.p.IsInfinity()
}

func (e *secp256k1Element) GroupOrder() *big.Int { return e.g.N() }
func (e *secp256k1Element) FieldOrder() *big.Int { return e.g.P() }

func (e *secp256k1Element) String() string {
	if e.p.IsInfinity() {
		return "Secp256k1(infinity)"
	}
	return fmt.Sprintf("Secp256k1(%s, %s)", e.p.X.String(), e.p.Y.String())
}

func (e *secp256k1Element) MarshalBinary() ([]byte, error) {
	if e.p.IsInfinity() {
		return []byte{0x00}, nil
	}
	out := make([]byte, 1, 65)
	out[0] = 0x04
	out = append(out, pad32(e.p.X.BigInt())...)
	out = append(out, pad32(e.p.Y.BigInt())...)
	return out, nil
}

func (e *secp256k1Element) UnmarshalBinary(b []byte) error {
	p, err := decodePoint(e.g.curve, b)
	if err != nil {
		return err
	}
	e.p = p
	return nil
}

func (e *secp256k1Element) MarshalJSON() ([]byte, error) {
	if e.p.IsInfinity() {
		return json.Marshal(ECPoint{})
	}
	return json.Marshal(ECPoint{X: e.p.X.BigInt(), Y: e.p.Y.BigInt()})
}

func (e *secp256k1Element) UnmarshalJSON(b []byte) error {
	var pt ECPoint
	if err := json.Unmarshal(b, &pt); err != nil {
		return err
	}
	if pt.X == nil || pt.Y == nil {
		e.p = e.g.curve.Infinity()
		return nil
	}
	p := e.g.curve.NewAffine(e.g.curve.F.Elem(pt.X), e.g.curve.F.Elem(pt.Y))
	if !e.g.curve.IsOnCurve(p) {
		return ErrInvalidEncoding
	}
	e.p = p
	return nil
}

func decodePoint(c *weierstrass.Curve, b []byte) (weierstrass.Point, error) {
	if len(b) == 1 && b[0] == 0x00 {
		return c.Infinity(), nil
	}
	if len(b) != 65 || b[0] != 0x04 {
		return weierstrass.Point{}, ErrInvalidEncoding
	}
	x := c.F.Elem(new(big.Int).SetBytes(b[1:33]))
	y := c.F.Elem(new(big.Int).SetBytes(b[33:65]))
	p := c.NewAffine(x, y)
	if !c.IsOnCurve(p) {
		return weierstrass.Point{}, ErrInvalidEncoding
	}
	return p, nil
}

func pad32(n *big.Int) []byte {
	b := n.Bytes()
	if len(b) >= 32 {
		return b[len(b)-32:]
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

// sqrtMod returns a square root of a modulo f's prime (f's modulus must be
// 3 mod 4, true for secp256k1's field), or an error if a is a non-residue.
func sqrtMod(f *field.Field, a field.Elem) (field.Elem, error) {
	p := f.P()
	exp := new(big.Int).Add(p, big.NewInt(1))
	exp.Rsh(exp, 2)
	root := a.Pow(exp)
	if !root.Sq().Equal(a) {
		return field.Elem{}, errors.New("group: not a quadratic residue")
	}
	return root, nil
}
