package hash_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exfinen/zksnark-toolkit/hash"
)

func TestSha512Abc(t *testing.T) {
	h := hash.NewSha512()
	d := h.Sum([]byte("abc"))
	assert.Equal(t, "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f", hex.EncodeToString(d[:]))
}

func TestSha512Empty(t *testing.T) {
	h := hash.NewSha512()
	d := h.Sum(nil)
	assert.Equal(t, "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e", hex.EncodeToString(d[:]))
}

func TestSha512_448BitMsg(t *testing.T) {
	h := hash.NewSha512()
	msg := []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq")
	d := h.Sum(msg)
	assert.Equal(t, "204a8fc6dda82f0a0ced7beb8e08a41657c16ef468b228a8279be331a703c33596fd15c13b1b07f9aa1d3bea57789ca031ad85c7a71dd70354ec631238ca3445", hex.EncodeToString(d[:]))
}

func TestSha512BlockSize(t *testing.T) {
	assert.Equal(t, 128, hash.NewSha512().BlockSize())
}
