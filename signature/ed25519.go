package signature

import (
	"math/big"

	"github.com/exfinen/zksnark-toolkit/edwards"
	"github.com/exfinen/zksnark-toolkit/hash"
)

// ed25519GroupOrder is the order l of the base point's subgroup:
// 2^252 + 27742317777372353535851937790883648493.
var ed25519GroupOrder = func() *big.Int {
	l := new(big.Int).Lsh(big.NewInt(1), 252)
	rest, _ := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	return l.Add(l, rest)
}()

// Ed25519 signs and verifies messages per RFC 8032, built on the edwards
// package's curve arithmetic and this module's from-scratch SHA-512.
type Ed25519 struct {
	curve *edwards.Curve
}

// NewEd25519 returns a ready-to-use Ed25519 signer/verifier.
func NewEd25519() *Ed25519 {
	return &Ed25519{curve: edwards.New()}
}

func leToBigInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(reverseBytes(b))
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

func bigIntToLE32(n *big.Int) [32]byte {
	var out [32]byte
	be := n.Bytes()
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

// prune clamps a 32-byte scalar per RFC 8032: clear the top bit, set the
// second-highest bit, clear the bottom three bits.
func prune(buf [32]byte) [32]byte {
	buf[31] &= 0b0111_1111
	buf[31] |= 0b0100_0000
	buf[0] &= 0b1111_1000
	return buf
}

// expandSecret hashes a 32-byte seed into the pruned scalar s and the
// signing prefix, per RFC 8032 section 5.1.5.
func (e *Ed25519) expandSecret(seed [32]byte) (s *big.Int, prefix []byte) {
	digest := hash.NewSha512().Sum(seed[:])
	var lower [32]byte
	copy(lower[:], digest[:32])
	lower = prune(lower)
	return leToBigInt(lower[:]), digest[32:64]
}

// GenPubKey derives the public key from a 32-byte seed.
func (e *Ed25519) GenPubKey(seed [32]byte) [32]byte {
	s, _ := e.expandSecret(seed)
	pub := e.curve.ScalarMul(e.curve.B, s)
	return e.curve.Encode(pub)
}

// Sign produces a deterministic 64-byte signature on msg under the seed.
func (e *Ed25519) Sign(seed [32]byte, msg []byte) [64]byte {
	s, prefix := e.expandSecret(seed)

	A := e.curve.Encode(e.curve.ScalarMul(e.curve.B, s))

	rDigest := hash.NewSha512().Sum(append(append([]byte{}, prefix...), msg...))
	r := new(big.Int).Mod(leToBigInt(rDigest[:]), ed25519GroupOrder)
	R := e.curve.Encode(e.curve.ScalarMul(e.curve.B, r))

	kInput := append(append(append([]byte{}, R[:]...), A[:]...), msg...)
	kDigest := hash.NewSha512().Sum(kInput)
	k := new(big.Int).Mod(leToBigInt(kDigest[:]), ed25519GroupOrder)

	S := new(big.Int).Mod(new(big.Int).Add(r, new(big.Int).Mul(k, s)), ed25519GroupOrder)
	S32 := bigIntToLE32(S)

	var sig [64]byte
	copy(sig[:32], R[:])
	copy(sig[32:], S32[:])
	return sig
}

// Verify reports whether sig is a valid Ed25519 signature on msg under
// pubKey.
func (e *Ed25519) Verify(sig [64]byte, pubKey [32]byte, msg []byte) bool {
	S := leToBigInt(sig[32:64])
	if S.Cmp(ed25519GroupOrder) >= 0 {
		return false
	}

	var rEnc [32]byte
	copy(rEnc[:], sig[0:32])
	R, err := e.curve.Decode(rEnc)
	if err != nil {
		return false
	}
	A, err := e.curve.Decode(pubKey)
	if err != nil {
		return false
	}

	kInput := append(append(append([]byte{}, rEnc[:]...), pubKey[:]...), msg...)
	kDigest := hash.NewSha512().Sum(kInput)
	k := new(big.Int).Mod(leToBigInt(kDigest[:]), ed25519GroupOrder)

	eight := big.NewInt(8)
	lhs := e.curve.ScalarMul(e.curve.B, new(big.Int).Mul(S, eight))

	rhsTerm1 := e.curve.ScalarMul(R, eight)
	rhsTerm2 := e.curve.ScalarMul(A, new(big.Int).Mul(k, eight))
	rhs := e.curve.Add(rhsTerm1, rhsTerm2)

	return lhs.Equal(rhs)
}
