package field_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exfinen/zksnark-toolkit/field"
)

func f11() *field.Field {
	return field.NewField(big.NewInt(11))
}

func TestAddSubScenario(t *testing.T) {
	f := f11()
	a := f.ElemUint64(9)
	b := f.ElemUint64(2)
	assert.Equal(t, f.ElemUint64(0), a.Add(b))

	c := f.ElemUint64(9)
	d := f.ElemUint64(10)
	assert.Equal(t, f.ElemUint64(10), c.Sub(d))

	e := f.ElemUint64(3)
	g := f.ElemUint64(9)
	assert.Equal(t, f.ElemUint64(5), e.Mul(g))
}

func TestNegZero(t *testing.T) {
	f := f11()
	assert.True(t, f.Zero().Neg().IsZero())
}

func TestAddSubInverse(t *testing.T) {
	f := field.NewField(big.NewInt(104729))
	for i := uint64(0); i < 50; i++ {
		a := f.ElemUint64(i)
		b := f.ElemUint64(i * 7 % 104729)
		assert.True(t, a.Add(b).Sub(b).Equal(a))
	}
}

func TestInv(t *testing.T) {
	f := field.NewField(big.NewInt(104729))
	for i := uint64(1); i < 50; i++ {
		a := f.ElemUint64(i)
		inv, err := a.Inv()
		require.NoError(t, err)
		assert.True(t, a.Mul(inv).Equal(f.One()))
	}
}

func TestInvZero(t *testing.T) {
	f := f11()
	_, err := f.Zero().Inv()
	assert.ErrorIs(t, err, field.ErrZeroInverse)
}

func TestFermatLittleTheorem(t *testing.T) {
	p := big.NewInt(104729)
	f := field.NewField(p)
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	for i := uint64(1); i < 50; i++ {
		a := f.ElemUint64(i)
		assert.True(t, a.Pow(pMinus1).Equal(f.One()))
	}
}

func TestPowNaive(t *testing.T) {
	f := field.NewField(big.NewInt(104729))
	a := f.ElemUint64(17)
	got := a.Pow(big.NewInt(13))

	want := f.One()
	for i := 0; i < 13; i++ {
		want = want.Mul(a)
	}
	assert.True(t, got.Equal(want))
}

func TestPowSeqAndRepeat(t *testing.T) {
	f := f11()
	a := f.ElemUint64(2)
	seq := a.PowSeq(4)
	require.Len(t, seq, 4)
	assert.True(t, seq[0].Equal(f.One()))
	assert.True(t, seq[1].Equal(a))
	assert.True(t, seq[2].Equal(a.Mul(a)))
	assert.True(t, seq[3].Equal(a.Mul(a).Mul(a)))

	rep := a.Repeat(3)
	require.Len(t, rep, 3)
	for _, e := range rep {
		assert.True(t, e.Equal(a))
	}
}

func TestElemFromSigned(t *testing.T) {
	f := f11()
	got := f.ElemFromSigned(big.NewInt(-3))
	assert.True(t, got.Equal(f.ElemUint64(8)))
}

func TestRandElemExcludeZero(t *testing.T) {
	f := field.NewField(big.NewInt(7))
	for i := 0; i < 50; i++ {
		e, err := f.RandElem(true, rand.Reader)
		require.NoError(t, err)
		assert.False(t, e.IsZero())
	}
}

func TestBytesRoundTrip(t *testing.T) {
	f := field.NewField(big.NewInt(104729))
	a := f.ElemUint64(12345)
	got := f.SetBytes(a.Bytes())
	assert.True(t, got.Equal(a))
}

func TestMismatchedFieldPanics(t *testing.T) {
	a := field.NewField(big.NewInt(11)).ElemUint64(1)
	b := field.NewField(big.NewInt(13)).ElemUint64(1)
	assert.Panics(t, func() { a.Add(b) })
}
