// Package circuit implements a recursive-descent parser for arithmetic
// equations of the form "<expr> == <decimal>", turning them into a
// MathExpr tree annotated with per-operation signal IDs. Grounded on
// _examples/original_source/src/building_block/curves/mcl/qap/equation_parser.rs
// and _examples/original_source/src/snarks/equation_parser.rs, which parse
// the same grammar with the nom combinator crate; this package hand-rolls
// the descent since no parser-combinator library appears anywhere in the
// example corpus.
package circuit

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/exfinen/zksnark-toolkit/field"
)

// ErrMalformedEquation is returned when the input does not match
// "<expr> == <decimal>", or trailing input remains after a successful
// parse.
var ErrMalformedEquation = errors.New("circuit: malformed equation")

// NodeKind distinguishes MathExpr's variants.
type NodeKind int

const (
	KindNum NodeKind = iota
	KindVar
	KindAdd
	KindSub
	KindMul
	KindDiv
)

// MathExpr is a node in a parsed arithmetic expression. Num and Var nodes
// are leaves; Add/Sub/Mul/Div nodes carry a SignalID assigned in
// construction order, and Left/Right operands.
type MathExpr struct {
	Kind     NodeKind
	SignalID uint64
	Num      field.Elem
	Var      string
	Left     *MathExpr
	Right    *MathExpr
}

// Equation is a parsed "<expr> == <literal>" statement.
type Equation struct {
	LHS *MathExpr
	RHS field.Elem
}

// Parse parses input as "<expr> == <decimal>" over the field f.
func Parse(f *field.Field, input string) (*Equation, error) {
	p := &parser{f: f, s: input}
	lhs, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.consumeLiteral("==") {
		return nil, ErrMalformedEquation
	}
	p.skipSpace()
	rhsNode, err := p.decimal()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, ErrMalformedEquation
	}
	if rhsNode.Kind != KindNum {
		return nil, ErrMalformedEquation
	}
	return &Equation{LHS: lhs, RHS: rhsNode.Num}, nil
}

// MustParse parses input, panicking on error; for tests and demo code
// where input is known to be well-formed.
func MustParse(f *field.Field, input string) *Equation {
	eq, err := Parse(f, input)
	if err != nil {
		panic(fmt.Sprintf("circuit: MustParse(%q): %v", input, err))
	}
	return eq
}

type parser struct {
	f      *field.Field
	s      string
	pos    int
	nextID uint64
}

func (p *parser) genID() uint64 {
	p.nextID++
	return p.nextID
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func (p *parser) consumeLiteral(lit string) bool {
	if p.pos+len(lit) > len(p.s) {
		return false
	}
	if p.s[p.pos:p.pos+len(lit)] != lit {
		return false
	}
	p.pos += len(lit)
	return true
}

// variable parses alpha(alpha|digit)*.
func (p *parser) variable() (*MathExpr, bool) {
	start := p.pos
	if !isAlpha(p.peek()) {
		return nil, false
	}
	p.pos++
	for isAlpha(p.peek()) || isDigit(p.peek()) {
		p.pos++
	}
	name := p.s[start:p.pos]
	p.skipSpace()
	return &MathExpr{Kind: KindVar, Var: name}, true
}

// decimal parses an optionally-signed integer literal.
func (p *parser) decimal() (*MathExpr, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	digitsStart := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	if p.pos == digitsStart {
		p.pos = start
		return nil, ErrMalformedEquation
	}
	s := p.s[start:p.pos]
	p.skipSpace()

	elem, err := numStrToElem(p.f, s)
	if err != nil {
		return nil, err
	}
	return &MathExpr{Kind: KindNum, Num: elem}, nil
}

func numStrToElem(f *field.Field, s string) (field.Elem, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return field.Elem{}, ErrMalformedEquation
	}
	return f.ElemFromSigned(n), nil
}

// term2 ::= <variable> | <number> | '(' <expr> ')'
func (p *parser) term2() (*MathExpr, error) {
	p.skipSpace()
	if v, ok := p.variable(); ok {
		return v, nil
	}
	if n, err := p.decimal(); err == nil {
		return n, nil
	}
	if p.peek() == '(' {
		p.pos++
		p.skipSpace()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, ErrMalformedEquation
		}
		p.pos++
		p.skipSpace()
		return inner, nil
	}
	return nil, ErrMalformedEquation
}

type opNode struct {
	op   byte
	node *MathExpr
}

// term1 ::= <term2> [ ('*'|'/') <term2> ]*
func (p *parser) term1() (*MathExpr, error) {
	lhs, err := p.term2()
	if err != nil {
		return nil, err
	}

	var rest []opNode
	for {
		save := p.pos
		p.skipSpace()
		op := p.peek()
		if op != '*' && op != '/' {
			p.pos = save
			break
		}
		p.pos++
		node, err := p.term2()
		if err != nil {
			return nil, err
		}
		rest = append(rest, opNode{op: op, node: node})
	}

	return p.foldChain(lhs, rest, KindMul, KindDiv), nil
}

// expr ::= <term1> [ ('+'|'-') <term1> ]*
func (p *parser) expr() (*MathExpr, error) {
	lhs, err := p.term1()
	if err != nil {
		return nil, err
	}

	var rest []opNode
	for {
		save := p.pos
		p.skipSpace()
		op := p.peek()
		if op != '+' && op != '-' {
			p.pos = save
			break
		}
		p.pos++
		node, err := p.term1()
		if err != nil {
			return nil, err
		}
		rest = append(rest, opNode{op: op, node: node})
	}

	return p.foldChain(lhs, rest, KindAdd, KindSub), nil
}

// foldChain combines lhs with a chain of same-precedence operations
// left-associatively, assigning signal IDs in that construction order.
func (p *parser) foldChain(lhs *MathExpr, rest []opNode, plusKind, minusKind NodeKind) *MathExpr {
	acc := lhs
	for _, on := range rest {
		kind := plusKind
		if (plusKind == KindMul && on.op == '/') || (plusKind == KindAdd && on.op == '-') {
			kind = minusKind
		}
		acc = &MathExpr{Kind: kind, SignalID: p.genID(), Left: acc, Right: on.node}
	}
	return acc
}
