// Command snarkdemo runs the full arithmetization pipeline end to end:
// parse an equation, build gates, an R1CS template, and a QAP, solve it
// against a satisfying witness, and exercise the signature and hashing
// packages alongside it. Grounded on
// _examples/takakv-msc-poc/main.go's setup()-plus-linear-main() shape.
package main

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/exfinen/zksnark-toolkit/circuit"
	"github.com/exfinen/zksnark-toolkit/field"
	"github.com/exfinen/zksnark-toolkit/gate"
	"github.com/exfinen/zksnark-toolkit/hash"
	"github.com/exfinen/zksnark-toolkit/qap"
	"github.com/exfinen/zksnark-toolkit/r1cs"
	"github.com/exfinen/zksnark-toolkit/signature"
	"github.com/exfinen/zksnark-toolkit/weierstrass"
)

// pipeline bundles the arithmetization stages built from a single equation.
type pipeline struct {
	f    *field.Field
	gts  []gate.Gate
	tmpl *r1cs.Template
	q    *qap.QAP
}

func setup(equation string) pipeline {
	f := field.NewField(big.NewInt(3911))

	eq := circuit.MustParse(f, equation)
	gts := gate.Build(f, eq)

	tmpl, err := r1cs.Build(f, gts)
	if err != nil {
		panic(err)
	}

	q, err := qap.Build(f, tmpl)
	if err != nil {
		panic(err)
	}

	return pipeline{f: f, gts: gts, tmpl: tmpl, q: q}
}

// witnessForX computes the circuit's signal values from the given x
// (t1 = 3*x, t2 = out = 3*x + 4) and lays them into a full witness vector
// in Template.Witness order. The right-hand side 11 does not enter the
// constraints, so any x yields a satisfying witness.
func witnessForX(p pipeline, x int64) []field.Elem {
	w := make([]field.Elem, len(p.tmpl.Witness))
	xv := p.f.ElemFromSigned(big.NewInt(x))
	t1 := p.f.ElemFromSigned(big.NewInt(3)).Mul(xv)
	out := t1.Add(p.f.ElemFromSigned(big.NewInt(4)))

	for i, term := range p.tmpl.Witness {
		switch term.Kind {
		case gate.TermOne:
			w[i] = p.f.One()
		case gate.TermVar:
			w[i] = xv
		case gate.TermTmp:
			if term.Tmp == 1 {
				w[i] = t1
			} else {
				w[i] = out
			}
		case gate.TermOut:
			w[i] = out
		}
	}
	return w
}

func main() {
	p := setup("3 * x + 4 == 11")

	fmt.Println("Arithmetization")
	fmt.Printf("  gates:        %d\n", len(p.gts))
	fmt.Printf("  constraints:  %d\n", len(p.tmpl.Constraints))
	fmt.Printf("  witness size: %d\n", len(p.tmpl.Witness))

	w := witnessForX(p, 1)
	_, ok := p.q.Solve(w)
	fmt.Println("  QAP.Solve satisfied:", ok)

	fmt.Println()
	fmt.Println("ECDSA over secp256k1")
	curve := weierstrass.Secp256k1()
	ecdsa := signature.NewECDSA(curve)
	privKey, err := rand.Int(rand.Reader, curve.N)
	if err != nil {
		panic(err)
	}
	msg := []byte("3 * x + 4 == 11")
	sig, err := ecdsa.Sign(privKey, msg, func() (*big.Int, error) { return rand.Int(rand.Reader, curve.N) })
	if err != nil {
		panic(err)
	}
	pubKey := ecdsa.GenPubKey(privKey)
	fmt.Println("  signature verifies:", ecdsa.Verify(sig, pubKey, msg))

	fmt.Println()
	fmt.Println("Ed25519")
	ed := signature.NewEd25519()
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic(err)
	}
	edPub := ed.GenPubKey(seed)
	edSig := ed.Sign(seed, msg)
	fmt.Println("  signature verifies:", ed.Verify(edSig, edPub, msg))

	fmt.Println()
	fmt.Println("SHA-256")
	digest := hash.NewSha256().Sum([]byte("abc"))
	fmt.Printf("  sha256(\"abc\") = %x\n", digest)
}
