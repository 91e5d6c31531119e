// commit.go adapts _examples/takakv-msc-poc/util/util.go's PedersenCommit
// and Decompose helpers (themselves a vendored copy of the ing-bank/zkrp
// util package) onto this package's own Group/Element interfaces.
package group

import "math/big"

// PedersenCommit computes g^x * h^r (additively, x*G + r*H) in grp, a
// commitment to secret x blinded by r under base point h.
func PedersenCommit(grp Group, x, r *big.Int, h Element) Element {
	c := grp.Element().BaseScale(x)
	hr := grp.Element().Scale(h, r)
	return grp.Element().Add(c, hr)
}

// Decompose writes x in base u as l digits, least significant first, so
// that x = sum(digits[i] * u^i).
func Decompose(x *big.Int, u int64, l int64) []int64 {
	digits := make([]int64, l)
	rem := new(big.Int).Set(x)
	base := big.NewInt(u)
	for i := int64(0); i < l; i++ {
		m := new(big.Int)
		rem.DivMod(rem, base, m)
		digits[i] = m.Int64()
	}
	return digits
}
