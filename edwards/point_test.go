package edwards_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exfinen/zksnark-toolkit/edwards"
)

func TestBasePointOnCurve(t *testing.T) {
	c := edwards.New()
	assert.True(t, c.IsOnCurve(c.B))
}

func TestIdentityOnCurve(t *testing.T) {
	c := edwards.New()
	assert.True(t, c.IsOnCurve(c.Identity()))
}

func TestAddIdentity(t *testing.T) {
	c := edwards.New()
	id := c.Identity()
	assert.True(t, c.Add(c.B, id).Equal(c.B))
	assert.True(t, c.Add(id, c.B).Equal(c.B))
}

func TestDoubleMatchesAdd(t *testing.T) {
	c := edwards.New()
	assert.True(t, c.Double(c.B).Equal(c.Add(c.B, c.B)))
}

func TestScalarMulSmallMultiples(t *testing.T) {
	c := edwards.New()
	b2 := c.Add(c.B, c.B)
	b3 := c.Add(b2, c.B)

	assert.True(t, c.ScalarMul(c.B, big.NewInt(2)).Equal(b2))
	assert.True(t, c.ScalarMul(c.B, big.NewInt(3)).Equal(b3))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := edwards.New()
	p := c.Add(c.B, c.B)

	enc := c.Encode(p)
	dec, err := c.Decode(enc)
	require.NoError(t, err)
	assert.True(t, p.Equal(dec))
}

func TestRecoverXRejectsBadY(t *testing.T) {
	f := edwards.Curve25519Field()
	c := edwards.New()
	// y = 2 has no corresponding x on the curve.
	_, err := edwards.RecoverX(f, c.D, f.ElemUint64(2), edwards.ParityEven)
	assert.Error(t, err)
}
