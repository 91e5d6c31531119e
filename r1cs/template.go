// Package r1cs assembles a rank-1 constraint system template from a gate
// list, grounded on
// _examples/original_source/src/zk/w_trusted_setup/qap/r1cs_tmpl.rs:
// categorize_witness_terms, build_witness, and build_constraint_vec.
package r1cs

import (
	"errors"

	"github.com/exfinen/zksnark-toolkit/field"
	"github.com/exfinen/zksnark-toolkit/gate"
	"github.com/exfinen/zksnark-toolkit/linalg"
)

// ErrProtocol is returned when a Template is requested from an empty gate
// list; an empty R1CS has no constraints to assemble a QAP from.
var ErrProtocol = errors.New("r1cs: no gates to build a template from")

// Constraint is one row of the R1CS: a Hadamard-compatible triple of
// witness-indexed sparse vectors such that dot(A,w) * dot(B,w) = dot(C,w).
type Constraint struct {
	A, B, C *linalg.SparseVector
}

// Template is the witness layout and constraint list built from a gate
// list. Witness is ordered [One, inputs..., Out, mid...]; MidBeg is the
// index of the first mid (temporary-signal) slot. Indices maps a term's
// key back to its witness slot.
type Template struct {
	F           *field.Field
	Witness     []gate.Term
	Indices     map[string]int
	MidBeg      int
	Constraints []Constraint
}

// keyOf turns a term into a comparable map key; TermSum and TermNum have no
// witness slot of their own (Sum recurses into its leaves, Num is folded
// into the constant-One slot), so they are not represented here.
func keyOf(t gate.Term) string {
	switch t.Kind {
	case gate.TermOne:
		return "1"
	case gate.TermOut:
		return "out"
	case gate.TermTmp:
		return "t:" + itoa(t.Tmp)
	case gate.TermVar:
		return "v:" + t.Var
	default:
		panic("r1cs: term has no witness slot")
	}
}

func itoa(id uint64) string {
	if id == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for id > 0 {
		i--
		buf[i] = byte('0' + id%10)
		id /= 10
	}
	return string(buf[i:])
}

// categorizeWitnessTerms recurses through a gate operand, collecting
// distinct Var terms into inputs and distinct TmpVar terms into mid. One,
// Num, and Out contribute nothing: Num rides on the constant-One slot, and
// One/Out get fixed slots assigned by buildWitness.
func categorizeWitnessTerms(t gate.Term, inputs, mid *[]gate.Term, seen map[string]bool) {
	switch t.Kind {
	case gate.TermOne, gate.TermNum, gate.TermOut:
		return
	case gate.TermVar:
		k := keyOf(t)
		if !seen[k] {
			seen[k] = true
			*inputs = append(*inputs, t)
		}
	case gate.TermTmp:
		k := keyOf(t)
		if !seen[k] {
			seen[k] = true
			*mid = append(*mid, t)
		}
	case gate.TermSum:
		categorizeWitnessTerms(*t.A, inputs, mid, seen)
		categorizeWitnessTerms(*t.B, inputs, mid, seen)
	}
}

// buildWitness lays out [One, inputs..., Out, mid...] and returns the
// index of the first mid slot.
func buildWitness(inputs, mid []gate.Term, witness *[]gate.Term, indices map[string]int) int {
	i := 1 // slot 0 is One, already recorded by Build

	for _, x := range inputs {
		*witness = append(*witness, x)
		indices[keyOf(x)] = i
		i++
	}

	out := gate.Term{Kind: gate.TermOut}
	*witness = append(*witness, out)
	indices[keyOf(out)] = i
	i++

	midBeg := i
	for _, x := range mid {
		*witness = append(*witness, x)
		indices[keyOf(x)] = i
		i++
	}

	return midBeg
}

// buildConstraintVec scatters term's coefficients into vec: a Sum expands
// recursively and accumulates into each participant's slot, a Num
// accumulates its value at slot 0 (the constant-One slot), and everything
// else accumulates a unit coefficient at its own slot.
func buildConstraintVec(f *field.Field, vec *linalg.SparseVector, term gate.Term, indices map[string]int) {
	if term.Kind == gate.TermSum {
		buildConstraintVec(f, vec, *term.A, indices)
		buildConstraintVec(f, vec, *term.B, indices)
		return
	}
	if term.Kind == gate.TermNum {
		vec.Set(0, vec.Get(0).Add(term.Num))
		return
	}
	idx := indices[keyOf(term)]
	vec.Set(idx, vec.Get(idx).Add(f.One()))
}

// Build constructs a Template from a non-empty gate list.
func Build(f *field.Field, gates []gate.Gate) (*Template, error) {
	if len(gates) == 0 {
		return nil, ErrProtocol
	}

	witness := []gate.Term{{Kind: gate.TermOne}}
	indices := map[string]int{keyOf(gate.Term{Kind: gate.TermOne}): 0}

	var inputs, mid []gate.Term
	seen := make(map[string]bool)
	for _, g := range gates {
		categorizeWitnessTerms(g.A, &inputs, &mid, seen)
		categorizeWitnessTerms(g.B, &inputs, &mid, seen)
		categorizeWitnessTerms(g.C, &inputs, &mid, seen)
	}

	midBeg := buildWitness(inputs, mid, &witness, indices)

	size := len(witness)
	constraints := make([]Constraint, 0, len(gates))
	for _, g := range gates {
		a := linalg.NewSparseVector(f, size)
		buildConstraintVec(f, a, g.A, indices)

		b := linalg.NewSparseVector(f, size)
		buildConstraintVec(f, b, g.B, indices)

		c := linalg.NewSparseVector(f, size)
		buildConstraintVec(f, c, g.C, indices)

		constraints = append(constraints, Constraint{A: a, B: b, C: c})
	}

	return &Template{
		F:           f,
		Witness:     witness,
		Indices:     indices,
		MidBeg:      midBeg,
		Constraints: constraints,
	}, nil
}
