// Package signature implements ECDSA over short-Weierstrass curves and
// Ed25519, both built on this module's from-scratch field/curve/hash
// primitives. Grounded on
// _examples/original_source/src/building_block/elliptic_curve/ecdsa.rs and
// _examples/original_source/src/building_block/ed25519_sha512.rs.
package signature

import (
	"errors"
	"math/big"

	"github.com/exfinen/zksnark-toolkit/field"
	"github.com/exfinen/zksnark-toolkit/hash"
	"github.com/exfinen/zksnark-toolkit/weierstrass"
)

// ErrVerificationFailed is an error value for a signature that doesn't check
// out. No function in this package returns it: ECDSA.Verify and
// Ed25519.Verify report a failed check as false.
var ErrVerificationFailed = errors.New("signature: verification failed")

// ECDSASignature is a signature (r, s), both reduced modulo the curve's
// subgroup order n.
type ECDSASignature struct {
	R, S *big.Int
}

// ECDSA signs and verifies messages over a given curve using SHA-256 as
// the message digest, per SEC1.
type ECDSA struct {
	Curve *weierstrass.Curve
}

// NewECDSA returns an ECDSA signer/verifier bound to curve.
func NewECDSA(curve *weierstrass.Curve) *ECDSA {
	return &ECDSA{Curve: curve}
}

// GenPubKey returns the public key privKey*G.
func (e *ECDSA) GenPubKey(privKey *big.Int) weierstrass.Point {
	return e.Curve.ScalarMul(e.Curve.Generator(), privKey)
}

func (e *ECDSA) digestAsInt(message []byte) *big.Int {
	d := hash.NewSha256().Sum(message)
	return new(big.Int).SetBytes(d[:])
}

// Sign produces a signature on message under privKey, resampling its
// ephemeral nonce k whenever r or s would be zero.
func (e *ECDSA) Sign(privKey *big.Int, message []byte, rand func() (*big.Int, error)) (ECDSASignature, error) {
	n := e.Curve.N
	nField := field.NewField(n)

	for {
		k, err := rand()
		if err != nil {
			return ECDSASignature{}, err
		}
		k = new(big.Int).Mod(k, n)
		if k.Sign() == 0 {
			continue
		}

		p := e.Curve.ScalarMul(e.Curve.Generator(), k)
		r := new(big.Int).Mod(p.X.BigInt(), n)
		if r.Sign() == 0 {
			continue
		}

		z := new(big.Int).Mod(e.digestAsInt(message), n)

		kElem := nField.Elem(k)
		kInv, err := kElem.Inv()
		if err != nil {
			continue
		}
		rElem := nField.Elem(r)
		dElem := nField.Elem(privKey)
		zElem := nField.Elem(z)

		s := kInv.Mul(dElem.Mul(rElem).Add(zElem))
		if s.IsZero() {
			continue
		}

		return ECDSASignature{R: r, S: s.BigInt()}, nil
	}
}

// Verify reports whether sig is a valid ECDSA signature on message under
// pubKey.
func (e *ECDSA) Verify(sig ECDSASignature, pubKey weierstrass.Point, message []byte) bool {
	n := e.Curve.N

	if pubKey.IsInfinity() || !e.Curve.IsOnCurve(pubKey) {
		return false
	}
	if !e.Curve.ScalarMul(pubKey, n).IsInfinity() {
		return false
	}
	if sig.R.Sign() == 0 || sig.S.Sign() == 0 || sig.R.Cmp(n) >= 0 || sig.S.Cmp(n) >= 0 {
		return false
	}

	nField := field.NewField(n)
	z := new(big.Int).Mod(e.digestAsInt(message), n)

	w, err := nField.Elem(sig.S).Inv()
	if err != nil {
		return false
	}
	u1 := nField.Elem(z).Mul(w)
	u2 := nField.Elem(sig.R).Mul(w)

	p1 := e.Curve.ScalarMul(e.Curve.Generator(), u1.BigInt())
	p2 := e.Curve.ScalarMul(pubKey, u2.BigInt())
	p3 := e.Curve.Add(p1, p2)

	return new(big.Int).Mod(p3.X.BigInt(), n).Cmp(sig.R) == 0
}
