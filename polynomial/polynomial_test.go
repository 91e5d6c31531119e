package polynomial_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exfinen/zksnark-toolkit/field"
	"github.com/exfinen/zksnark-toolkit/linalg"
	"github.com/exfinen/zksnark-toolkit/polynomial"
)

func pf() *field.Field {
	return field.NewField(big.NewInt(3911))
}

func poly(f *field.Field, cs ...uint64) *polynomial.Polynomial {
	elems := make([]field.Elem, len(cs))
	for i, c := range cs {
		elems[i] = f.ElemUint64(c)
	}
	return polynomial.New(f, elems)
}

func TestNormalize(t *testing.T) {
	f := pf()
	a := poly(f, 1, 0, 0)
	b := poly(f, 1)
	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Degree())
}

func TestDegree(t *testing.T) {
	f := pf()
	assert.Equal(t, 0, poly(f, 2).Degree())
	assert.Equal(t, 1, poly(f, 2, 3).Degree())
}

func TestFromSparseVector(t *testing.T) {
	f := pf()
	vec := linalg.NewSparseVector(f, 2)
	vec.Set(0, f.ElemUint64(2))
	vec.Set(1, f.ElemUint64(3))
	p := polynomial.FromSparseVector(vec, f)
	assert.Equal(t, 1, p.Degree())
	assert.True(t, p.Coeff(0).Equal(f.ElemUint64(2)))
	assert.True(t, p.Coeff(1).Equal(f.ElemUint64(3)))
}

func TestEvalAt(t *testing.T) {
	f := pf()
	// 2x^2 + 3x + 8
	p := poly(f, 8, 3, 2)
	assert.True(t, p.EvalAt(f.ElemUint64(0)).Equal(f.ElemUint64(8)))
	assert.True(t, p.EvalAt(f.ElemUint64(1)).Equal(f.ElemUint64(13)))
	assert.True(t, p.EvalAt(f.ElemUint64(2)).Equal(f.ElemUint64(22)))
}

func TestAddZeroTerms(t *testing.T) {
	f := field.NewField(big.NewInt(7))
	a := poly(f, 3)
	b := poly(f, 4)
	c := poly(f, 0)
	assert.True(t, a.Add(b).Equal(c))
}

func TestSubSamePoly(t *testing.T) {
	f := field.NewField(big.NewInt(23))
	a := poly(f, 12, 7)
	assert.True(t, a.Sub(a).IsZero())
}

func TestSubDegreeMismatchPanics(t *testing.T) {
	f := pf()
	a := poly(f, 7)
	b := poly(f, 3, 4)
	assert.Panics(t, func() { a.Sub(b) })
}

func TestMulDeg1_1(t *testing.T) {
	f := pf()
	// 2x + 3
	a := poly(f, 3, 2)
	// 5x + 4
	b := poly(f, 4, 5)
	// 10x^2 + 23x + 12
	c := poly(f, 12, 23, 10)
	assert.True(t, a.Mul(b).Equal(c))
}

func TestScale(t *testing.T) {
	f := pf()
	a := poly(f, 3, 2)
	ten := f.ElemUint64(10)
	exp := poly(f, 30, 20)
	assert.True(t, a.Scale(ten).Equal(exp))
}

func TestDivNoRemainder(t *testing.T) {
	f := field.NewField(big.NewInt(7))
	dividend := poly(f, 5, 1, 1)
	divisor := poly(f, 2, 1)
	quotient := poly(f, 6, 1)

	res := dividend.Div(divisor)
	require.Nil(t, res.Remainder)
	assert.True(t, res.Quotient.Equal(quotient))
}

func TestDivWithRemainder(t *testing.T) {
	f := field.NewField(big.NewInt(7))
	dividend := poly(f, 3, 2)
	divisor := poly(f, 7, 1)
	quotient := poly(f, 2)
	remainder := poly(f, 3)

	res := dividend.Div(divisor)
	require.NotNil(t, res.Remainder)
	assert.True(t, res.Quotient.Equal(quotient))
	assert.True(t, res.Remainder.Equal(remainder))
}

func TestDivRandomDivisible(t *testing.T) {
	f := field.NewField(big.NewInt(11))
	divisor := poly(f, 4, 0, 0, 3, 1)
	quotient := poly(f, 1, 2, 3)
	dividend := divisor.Mul(quotient)

	res := dividend.Div(divisor)
	require.Nil(t, res.Remainder)
	assert.True(t, res.Quotient.Equal(quotient))
}

func TestEvalFrom1ToN(t *testing.T) {
	f := pf()
	// 5x^2 + 3x + 2
	p := poly(f, 2, 3, 5)
	vec := p.EvalFrom1ToN(3)
	assert.Equal(t, 3, vec.Size)
	assert.True(t, vec.Get(0).Equal(f.ElemUint64(10)))
	assert.True(t, vec.Get(1).Equal(f.ElemUint64(28)))
	assert.True(t, vec.Get(2).Equal(f.ElemUint64(56)))
}

func TestToSparseVector(t *testing.T) {
	f := pf()
	// 2x + 3
	p := poly(f, 3, 2)
	vec := p.ToSparseVector(4)
	assert.Equal(t, 4, vec.Size)
	assert.True(t, vec.Get(0).Equal(f.ElemUint64(3)))
	assert.True(t, vec.Get(1).Equal(f.ElemUint64(2)))
	assert.True(t, vec.Get(2).IsZero())
	assert.True(t, vec.Get(3).IsZero())
}

func TestEvalWithHidingsOnIntegers(t *testing.T) {
	f := pf()
	// 5x^3 + 4x^2 + 3x + 2, hidden in plain integers rather than a curve
	// group, just to exercise the generic evaluator without a curve package.
	p := poly(f, 2, 3, 4, 5)
	powers := []uint64{1, 3, 9, 27} // 3^0..3^3
	add := func(a, b uint64) uint64 { return a + b }
	scale := func(pw uint64, c field.Elem) uint64 { return pw * c.BigInt().Uint64() }

	got := polynomial.EvalWithHidings(p, powers, uint64(0), add, scale)
	want := uint64(2*1 + 3*3 + 4*9 + 5*27)
	assert.Equal(t, want, got)
}

func TestInterpolateRecoversKnownPolynomial(t *testing.T) {
	f := pf()
	// 2x^2 + 3x + 1, sampled at x = 1, 2, 3
	p := poly(f, 1, 3, 2)
	points := []field.Elem{f.ElemUint64(1), f.ElemUint64(2), f.ElemUint64(3)}
	values := []field.Elem{p.EvalAt(points[0]), p.EvalAt(points[1]), p.EvalAt(points[2])}

	got := polynomial.Interpolate(f, points, values)
	assert.True(t, got.Equal(p))
}

func TestInterpolateSinglePointIsConstant(t *testing.T) {
	f := pf()
	got := polynomial.Interpolate(f, []field.Elem{f.ElemUint64(5)}, []field.Elem{f.ElemUint64(9)})
	assert.True(t, got.Equal(poly(f, 9)))
}
