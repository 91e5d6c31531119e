package circuit_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exfinen/zksnark-toolkit/circuit"
	"github.com/exfinen/zksnark-toolkit/field"
)

func tf() *field.Field {
	return field.NewField(big.NewInt(3911))
}

func num(f *field.Field, n int64) *circuit.MathExpr {
	return &circuit.MathExpr{Kind: circuit.KindNum, Num: f.ElemFromSigned(big.NewInt(n))}
}

func variable(name string) *circuit.MathExpr {
	return &circuit.MathExpr{Kind: circuit.KindVar, Var: name}
}

func assertExprEqual(t *testing.T, f *field.Field, want, got *circuit.MathExpr) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, want.Kind, got.Kind)
	switch want.Kind {
	case circuit.KindNum:
		assert.True(t, want.Num.Equal(got.Num))
	case circuit.KindVar:
		assert.Equal(t, want.Var, got.Var)
	default:
		assert.Equal(t, want.SignalID, got.SignalID)
		assertExprEqual(t, f, want.Left, got.Left)
		assertExprEqual(t, f, want.Right, got.Right)
	}
}

func TestParseSimpleEquation(t *testing.T) {
	f := tf()
	eq, err := circuit.Parse(f, "3 * x + 4 == 11")
	require.NoError(t, err)
	assert.True(t, eq.RHS.Equal(f.ElemUint64(11)))

	want := &circuit.MathExpr{
		Kind:     circuit.KindAdd,
		SignalID: 2,
		Left:     &circuit.MathExpr{Kind: circuit.KindMul, SignalID: 1, Left: num(f, 3), Right: variable("x")},
		Right:    num(f, 4),
	}
	assertExprEqual(t, f, want, eq.LHS)
}

func TestParseAddMulDiv(t *testing.T) {
	f := tf()
	eq, err := circuit.Parse(f, "111/222+333*444 == 1")
	require.NoError(t, err)

	want := &circuit.MathExpr{
		Kind:     circuit.KindAdd,
		SignalID: 3,
		Left:     &circuit.MathExpr{Kind: circuit.KindDiv, SignalID: 1, Left: num(f, 111), Right: num(f, 222)},
		Right:    &circuit.MathExpr{Kind: circuit.KindMul, SignalID: 2, Left: num(f, 333), Right: num(f, 444)},
	}
	assertExprEqual(t, f, want, eq.LHS)
}

func TestParseParenAddMulSub(t *testing.T) {
	f := tf()
	eq, err := circuit.Parse(f, "(111+222)*(333-444) == 1")
	require.NoError(t, err)

	want := &circuit.MathExpr{
		Kind:     circuit.KindMul,
		SignalID: 3,
		Left:     &circuit.MathExpr{Kind: circuit.KindAdd, SignalID: 1, Left: num(f, 111), Right: num(f, 222)},
		Right:    &circuit.MathExpr{Kind: circuit.KindSub, SignalID: 2, Left: num(f, 333), Right: num(f, 444)},
	}
	assertExprEqual(t, f, want, eq.LHS)
}

func TestParseNegativeLiteral(t *testing.T) {
	f := tf()
	eq, err := circuit.Parse(f, "-123 - x == -1")
	require.NoError(t, err)
	assert.True(t, eq.RHS.Equal(f.ElemFromSigned(big.NewInt(-1))))

	want := &circuit.MathExpr{
		Kind:     circuit.KindSub,
		SignalID: 1,
		Left:     num(f, -123),
		Right:    variable("x"),
	}
	assertExprEqual(t, f, want, eq.LHS)
}

func TestParseVariableNames(t *testing.T) {
	f := tf()
	for _, s := range []string{"x", "x1", "x0", "xy", "xy1"} {
		eq, err := circuit.Parse(f, s+"+456 == 1")
		require.NoError(t, err)
		assertExprEqual(t, f, &circuit.MathExpr{
			Kind: circuit.KindAdd, SignalID: 1,
			Left: variable(s), Right: num(f, 456),
		}, eq.LHS)
	}
}

func TestParseRejectsNonLiteralRHS(t *testing.T) {
	f := tf()
	_, err := circuit.Parse(f, "x + 1 == y")
	assert.ErrorIs(t, err, circuit.ErrMalformedEquation)
}

func TestParseRejectsMissingEquals(t *testing.T) {
	f := tf()
	_, err := circuit.Parse(f, "x + 1")
	assert.ErrorIs(t, err, circuit.ErrMalformedEquation)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	f := tf()
	_, err := circuit.Parse(f, "x == 1 garbage")
	assert.ErrorIs(t, err, circuit.ErrMalformedEquation)
}

func TestMustParsePanicsOnError(t *testing.T) {
	f := tf()
	assert.Panics(t, func() { circuit.MustParse(f, "not an equation") })
}
