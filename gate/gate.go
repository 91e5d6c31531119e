// Package gate turns a parsed circuit.MathExpr into a flat list of
// multiplication gates, grounded on
// _examples/original_source/src/snarks/r1cs_tmpl.rs's Term/Gate types and
// Gate::traverse_and_build/Gate::build.
package gate

import (
	"fmt"

	"github.com/exfinen/zksnark-toolkit/circuit"
	"github.com/exfinen/zksnark-toolkit/field"
)

// TermKind distinguishes Term's variants. A Term names one operand of a
// gate: a constant, the constant 1, the circuit's output signal, a sum of
// two other terms (never itself or Out), a temporary signal produced by an
// earlier gate, or a named input variable.
type TermKind int

const (
	TermNum TermKind = iota
	TermOne
	TermOut
	TermSum
	TermTmp
	TermVar
)

// Term is a closed sum type; exactly the fields relevant to Kind are valid.
type Term struct {
	Kind TermKind
	Num  field.Elem
	Tmp  uint64
	Var  string
	A, B *Term // only set when Kind == TermSum
}

func numTerm(n field.Elem) Term { return Term{Kind: TermNum, Num: n} }
func varTerm(name string) Term  { return Term{Kind: TermVar, Var: name} }
func tmpTerm(id uint64) Term    { return Term{Kind: TermTmp, Tmp: id} }
func sumTerm(a, b Term) Term    { return Term{Kind: TermSum, A: &a, B: &b} }

// Equal reports structural equality of two terms.
func (t Term) Equal(o Term) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case TermNum:
		return t.Num.Equal(o.Num)
	case TermTmp:
		return t.Tmp == o.Tmp
	case TermVar:
		return t.Var == o.Var
	case TermSum:
		return t.A.Equal(*o.A) && t.B.Equal(*o.B)
	default: // TermOne, TermOut
		return true
	}
}

// String renders t for debugging, e.g. "(x + 4)" or "t1".
func (t Term) String() string {
	switch t.Kind {
	case TermNum:
		return t.Num.String()
	case TermOne:
		return "1"
	case TermOut:
		return "out"
	case TermSum:
		return fmt.Sprintf("(%s + %s)", t.A, t.B)
	case TermTmp:
		return fmt.Sprintf("t%d", t.Tmp)
	case TermVar:
		return t.Var
	default:
		return "?"
	}
}

// Gate is one multiplication constraint a * b = c.
type Gate struct {
	A, B, C Term
}

func (g Gate) String() string {
	return fmt.Sprintf("%s = %s * %s", g.C, g.A, g.B)
}

// Build traverses eq's MathExpr in post-order, emitting one gate per
// Add/Sub/Mul/Div node, terminated by a final "root * 1 = out" gate.
func Build(f *field.Field, eq *circuit.Equation) []Gate {
	var gates []Gate
	root := traverseAndBuild(eq.LHS, &gates)
	gates = append(gates, Gate{A: root, B: Term{Kind: TermOne}, C: Term{Kind: TermOut}})
	return gates
}

// traverseAndBuild walks a MathExpr node, appending one gate per
// Add/Sub/Mul/Div encountered, and returns the Term that represents the
// node's value to its parent.
func traverseAndBuild(e *circuit.MathExpr, gates *[]Gate) Term {
	switch e.Kind {
	case circuit.KindNum:
		return numTerm(e.Num)
	case circuit.KindVar:
		return varTerm(e.Var)

	case circuit.KindAdd:
		a := traverseAndBuild(e.Left, gates)
		b := traverseAndBuild(e.Right, gates)
		c := tmpTerm(e.SignalID)
		// a + b = c  ->  (a + b) * 1 = c
		*gates = append(*gates, Gate{A: sumTerm(a, b), B: Term{Kind: TermOne}, C: c})
		return c

	case circuit.KindMul:
		a := traverseAndBuild(e.Left, gates)
		b := traverseAndBuild(e.Right, gates)
		c := tmpTerm(e.SignalID)
		*gates = append(*gates, Gate{A: a, B: b, C: c})
		return c

	case circuit.KindSub:
		a := traverseAndBuild(e.Left, gates)
		b := traverseAndBuild(e.Right, gates)
		c := tmpTerm(e.SignalID)
		// a - b = c  ->  b + c = a  ->  (b + c) * 1 = a
		*gates = append(*gates, Gate{A: sumTerm(b, c), B: Term{Kind: TermOne}, C: a})
		return c

	case circuit.KindDiv:
		a := traverseAndBuild(e.Left, gates)
		b := traverseAndBuild(e.Right, gates)
		c := tmpTerm(e.SignalID)
		// a / b = c  ->  b * c = a
		*gates = append(*gates, Gate{A: b, B: c, C: a})
		return c

	default:
		panic(fmt.Sprintf("gate: unknown MathExpr kind %d", e.Kind))
	}
}
