package r1cs_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exfinen/zksnark-toolkit/circuit"
	"github.com/exfinen/zksnark-toolkit/field"
	"github.com/exfinen/zksnark-toolkit/gate"
	"github.com/exfinen/zksnark-toolkit/r1cs"
)

func tf() *field.Field {
	return field.NewField(big.NewInt(3911))
}

func TestBuildRejectsEmptyGateList(t *testing.T) {
	f := tf()
	_, err := r1cs.Build(f, nil)
	assert.ErrorIs(t, err, r1cs.ErrProtocol)
}

func TestBuildWitnessLayoutOnePlusFour(t *testing.T) {
	f := tf()
	eq, err := circuit.Parse(f, "x + 4 == 1")
	require.NoError(t, err)

	gates := gate.Build(f, eq)
	tmpl, err := r1cs.Build(f, gates)
	require.NoError(t, err)

	// witness: [One, x, Out, t1]
	require.Len(t, tmpl.Witness, 4)
	assert.Equal(t, gate.TermOne, tmpl.Witness[0].Kind)
	assert.Equal(t, gate.TermVar, tmpl.Witness[1].Kind)
	assert.Equal(t, "x", tmpl.Witness[1].Var)
	assert.Equal(t, gate.TermOut, tmpl.Witness[2].Kind)
	assert.Equal(t, gate.TermTmp, tmpl.Witness[3].Kind)
	assert.Equal(t, uint64(1), tmpl.Witness[3].Tmp)
	assert.Equal(t, 3, tmpl.MidBeg)
}

func TestBuildWitnessIndicesCombined(t *testing.T) {
	f := tf()
	eq, err := circuit.Parse(f, "(3 * x + 4) / 2 == 11")
	require.NoError(t, err)

	gates := gate.Build(f, eq)
	tmpl, err := r1cs.Build(f, gates)
	require.NoError(t, err)

	// expected indices: [One, x, Out, t1, t2, t3]
	require.Len(t, tmpl.Indices, 6)
	assert.Equal(t, 0, tmpl.Indices["1"])
	assert.Equal(t, 1, tmpl.Indices["v:x"])
	assert.Equal(t, 2, tmpl.Indices["out"])
	assert.Equal(t, 3, tmpl.Indices["t:1"])
	assert.Equal(t, 4, tmpl.Indices["t:2"])
	assert.Equal(t, 5, tmpl.Indices["t:3"])
}

// termParts renders vec's non-zero witness slots as an unordered set of
// strings; SparseVector iteration order is unspecified, so callers compare
// with assert.ElementsMatch rather than a joined string.
func termParts(tmpl *r1cs.Template, vec interface{ Indices() []int }) []string {
	indices := vec.Indices()
	parts := make([]string, 0, len(indices))
	for _, i := range indices {
		term := tmpl.Witness[i]
		switch term.Kind {
		case gate.TermVar:
			parts = append(parts, term.Var)
		case gate.TermTmp:
			parts = append(parts, term.String())
		case gate.TermOne:
			parts = append(parts, "1")
		case gate.TermOut:
			parts = append(parts, "out")
		}
	}
	return parts
}

func TestBuildConstraintMatrix(t *testing.T) {
	f := tf()
	eq, err := circuit.Parse(f, "3 * x + 4 == 11")
	require.NoError(t, err)

	gates := gate.Build(f, eq)
	tmpl, err := r1cs.Build(f, gates)
	require.NoError(t, err)

	require.Len(t, tmpl.Constraints, 3)

	c0 := tmpl.Constraints[0]
	assert.ElementsMatch(t, []string{"3"}, []string{c0.A.Get(0).String()})
	assert.ElementsMatch(t, []string{"x"}, termParts(tmpl, c0.B))
	assert.ElementsMatch(t, []string{"t1"}, termParts(tmpl, c0.C))

	c1 := tmpl.Constraints[1]
	assert.ElementsMatch(t, []string{"4"}, []string{c1.A.Get(0).String()})
	assert.ElementsMatch(t, []string{"1", "t1"}, termParts(tmpl, c1.A))
	assert.ElementsMatch(t, []string{"1"}, []string{c1.B.Get(0).String()})
	assert.ElementsMatch(t, []string{"t2"}, termParts(tmpl, c1.C))

	c2 := tmpl.Constraints[2]
	assert.ElementsMatch(t, []string{"t2"}, termParts(tmpl, c2.A))
	assert.ElementsMatch(t, []string{"1"}, []string{c2.B.Get(0).String()})
	assert.ElementsMatch(t, []string{"out"}, termParts(tmpl, c2.C))
}

func TestBuildAccumulatesRepeatedConstants(t *testing.T) {
	f := tf()
	eq, err := circuit.Parse(f, "5 + 6 == 11")
	require.NoError(t, err)

	gates := gate.Build(f, eq)
	tmpl, err := r1cs.Build(f, gates)
	require.NoError(t, err)

	root := tmpl.Constraints[0]
	assert.Equal(t, "11", root.A.Get(0).String())
}

func TestBuildAccumulatesRepeatedVariable(t *testing.T) {
	f := tf()
	eq, err := circuit.Parse(f, "x + x == 10")
	require.NoError(t, err)

	gates := gate.Build(f, eq)
	tmpl, err := r1cs.Build(f, gates)
	require.NoError(t, err)

	root := tmpl.Constraints[0]
	assert.Equal(t, "2", root.A.Get(tmpl.Indices["v:x"]).String())
}
