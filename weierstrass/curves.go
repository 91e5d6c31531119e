package weierstrass

import (
	"math/big"

	"github.com/exfinen/zksnark-toolkit/field"
)

func hexBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("weierstrass: invalid hex constant " + s)
	}
	return n
}

// Secp256k1 returns the curve y^2 = x^3 + 7 over F_p with p = 2^256 -
// 2^32 - 977, generator and order per SEC2.
func Secp256k1() *Curve {
	p := hexBig("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	f := field.NewField(p)

	gx := hexBig("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	gy := hexBig("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
	n := hexBig("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")

	return &Curve{
		F:  f,
		A:  f.Zero(),
		B:  f.ElemUint64(7),
		Gx: f.Elem(gx),
		Gy: f.Elem(gy),
		N:  n,
	}
}

// BLS12381G1 returns the curve y^2 = x^3 + 4 over the BLS12-381 base field
// (381 bits), with the standard generator of the 255-bit order-r subgroup.
func BLS12381G1() *Curve {
	p := hexBig("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab")
	f := field.NewField(p)

	gx := hexBig("17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb")
	gy := hexBig("08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1")
	r := hexBig("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")

	return &Curve{
		F:  f,
		A:  f.Zero(),
		B:  f.ElemUint64(4),
		Gx: f.Elem(gx),
		Gy: f.Elem(gy),
		N:  r,
	}
}
