package group_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exfinen/zksnark-toolkit/group"
)

func TestGeneratorIsNotIdentity(t *testing.T) {
	g := group.NewSecp256k1Group()
	assert.False(t, g.Generator().IsIdentity())
	assert.True(t, g.Identity().IsIdentity())
}

func TestAddMatchesDoubleScale(t *testing.T) {
	g := group.NewSecp256k1Group()
	G := g.Generator()

	sum := g.Element().Add(G, G)
	doubled := g.Element().Scale(G, big.NewInt(2))
	assert.True(t, sum.IsEqual(doubled))
}

func TestSubtractInverse(t *testing.T) {
	g := group.NewSecp256k1Group()
	G := g.Generator()

	threeG := g.Element().Scale(G, big.NewInt(3))
	back := g.Element().Subtract(threeG, g.Element().Scale(G, big.NewInt(2)))
	assert.True(t, back.IsEqual(G))
}

func TestBinaryMarshalRoundTrip(t *testing.T) {
	g := group.NewSecp256k1Group()
	orig := g.Element().Scale(g.Generator(), big.NewInt(7))

	b, err := orig.MarshalBinary()
	require.NoError(t, err)

	got := g.Element()
	require.NoError(t, got.UnmarshalBinary(b))
	assert.True(t, orig.IsEqual(got))
}

func TestJSONMarshalRoundTrip(t *testing.T) {
	g := group.NewSecp256k1Group()
	orig := g.Element().Scale(g.Generator(), big.NewInt(42))

	b, err := orig.MarshalJSON()
	require.NoError(t, err)

	got := g.Element()
	require.NoError(t, got.UnmarshalJSON(b))
	assert.True(t, orig.IsEqual(got))
}

func TestMapToGroupProducesPointOnCurve(t *testing.T) {
	g := group.NewSecp256k1Group()
	e, err := g.Element().MapToGroup("bulletproofs-generator-seed")
	require.NoError(t, err)
	assert.False(t, e.IsIdentity())
}

func TestUnmarshalBinaryRejectsGarbage(t *testing.T) {
	g := group.NewSecp256k1Group()
	err := g.Element().UnmarshalBinary([]byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, group.ErrInvalidEncoding)
}
