package rangeproof_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exfinen/zksnark-toolkit/field"
	"github.com/exfinen/zksnark-toolkit/rangeproof"
)

func TestProveVerifySecretWithinRange(t *testing.T) {
	params, err := rangeproof.Setup(64)
	require.NoError(t, err)

	f := field.NewField(big.NewInt(3911))
	secret := f.ElemUint64(15)

	proof, err := rangeproof.ProveRange(secret, params)
	require.NoError(t, err)

	ok, err := rangeproof.VerifyRange(proof)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSetupRejectsNonPowerOfTwo(t *testing.T) {
	_, err := rangeproof.Setup(63)
	assert.Error(t, err)
}
