// Package rangeproof is a thin adapter over github.com/ing-bank/zkrp's P256
// Bulletproofs range proof, bridging this module's field.Elem scalars to
// the *big.Int the underlying library expects. It does not reimplement the
// inner-product argument; see
// _examples/takakv-msc-poc/bulletproofs/bp.go for the same library
// generalized to other curve groups, which this package deliberately does
// not follow (P256 only, per the upstream library's own scope).
package rangeproof

import (
	"math/big"

	"github.com/ing-bank/zkrp/crypto/bulletproofs"

	"github.com/exfinen/zksnark-toolkit/field"
)

// Params holds the public Bulletproofs setup for proving membership in
// [0, 2^n).
type Params struct {
	inner bulletproofs.BulletProofSetupParams
}

// Setup computes the public parameters for range [0, n), where n must be a
// power of two.
func Setup(n int64) (Params, error) {
	p, err := bulletproofs.Setup(n)
	if err != nil {
		return Params{}, err
	}
	return Params{inner: p}, nil
}

// Proof is a Bulletproofs range proof together with the Pedersen blinding
// factor gamma used to commit to the secret.
type Proof struct {
	inner bulletproofs.BulletProof
	gamma *big.Int
}

// ProveRange proves that secret lies in the range committed to by params,
// without revealing secret.
func ProveRange(secret field.Elem, params Params) (Proof, error) {
	proof, gamma, err := bulletproofs.Prove(secret.BigInt(), params.inner)
	if err != nil {
		return Proof{}, err
	}
	return Proof{inner: proof, gamma: gamma}, nil
}

// VerifyRange checks proof against the parameters it was produced with.
func VerifyRange(proof Proof) (bool, error) {
	return proof.inner.Verify()
}
