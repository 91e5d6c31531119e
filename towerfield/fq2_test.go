package towerfield_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exfinen/zksnark-toolkit/field"
	"github.com/exfinen/zksnark-toolkit/towerfield"
)

func fq2Field() *field.Field {
	return field.NewField(big.NewInt(104729))
}

func TestFQ2AddSubInverse(t *testing.T) {
	f := fq2Field()
	x := towerfield.NewFQ2(f.ElemUint64(3), f.ElemUint64(5))
	y := towerfield.NewFQ2(f.ElemUint64(7), f.ElemUint64(11))
	assert.True(t, x.Add(y).Sub(y).Equal(x))
}

func TestFQ2MulIdentity(t *testing.T) {
	f := fq2Field()
	one := towerfield.NewFQ2(f.Zero(), f.One())
	x := towerfield.NewFQ2(f.ElemUint64(9), f.ElemUint64(2))
	assert.True(t, x.Mul(one).Equal(x))
}

func TestFQ2Inv(t *testing.T) {
	f := fq2Field()
	x := towerfield.NewFQ2(f.ElemUint64(9), f.ElemUint64(2))
	inv, err := x.Inv()
	require.NoError(t, err)

	one := towerfield.NewFQ2(f.Zero(), f.One())
	assert.True(t, x.Mul(inv).Equal(one))
}

func TestFQ2InvZero(t *testing.T) {
	f := fq2Field()
	_, err := towerfield.ZeroFQ2(f).Inv()
	assert.ErrorIs(t, err, field.ErrZeroInverse)
}

func TestFQ2Neg(t *testing.T) {
	f := fq2Field()
	x := towerfield.NewFQ2(f.ElemUint64(9), f.ElemUint64(2))
	assert.True(t, x.Add(x.Neg()).IsZero())
}
