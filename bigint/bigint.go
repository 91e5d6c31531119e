// Package bigint collects the small set of arbitrary-precision integer
// helpers the rest of this module needs on top of math/big. It is a facade,
// not a new integer type: math/big.Int already gives value semantics good
// enough for cheap cloning, so every helper here takes and returns *big.Int.
package bigint

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// ErrNegativeLimit is returned by RandBelow when limit is not positive.
var ErrNegativeLimit = errors.New("bigint: limit must be positive")

// Reduce returns the Euclidean representative of n modulo m, i.e. a value in
// [0, m). Unlike big.Int.Mod (which already does this for positive m) this
// makes the intent explicit at call sites that receive possibly-negative n.
func Reduce(n, m *big.Int) *big.Int {
	r := new(big.Int).Mod(n, m)
	if r.Sign() < 0 {
		r.Add(r, m)
	}
	return r
}

// AddMod returns (a + b) mod m.
func AddMod(a, b, m *big.Int) *big.Int {
	return Reduce(new(big.Int).Add(a, b), m)
}

// SubMod returns (a - b) mod m.
func SubMod(a, b, m *big.Int) *big.Int {
	return Reduce(new(big.Int).Sub(a, b), m)
}

// MulMod returns (a * b) mod m.
func MulMod(a, b, m *big.Int) *big.Int {
	return Reduce(new(big.Int).Mul(a, b), m)
}

// NegMod returns (-a) mod m, i.e. m - a when a != 0, and 0 when a == 0.
func NegMod(a, m *big.Int) *big.Int {
	if a.Sign() == 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Sub(m, Reduce(a, m))
}

// RandBelow draws a uniformly random integer in [0, limit) using r.
func RandBelow(limit *big.Int, r io.Reader) (*big.Int, error) {
	if limit.Sign() <= 0 {
		return nil, ErrNegativeLimit
	}
	return rand.Int(r, limit)
}

// ByteLen returns the number of bytes needed to hold a nonnegative integer
// less than m, i.e. ceil(bitlen(m) / 8).
func ByteLen(m *big.Int) int {
	return (m.BitLen() + 7) / 8
}
