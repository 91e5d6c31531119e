package hash_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exfinen/zksnark-toolkit/hash"
)

func TestSha256Empty(t *testing.T) {
	h := hash.NewSha256()
	d := h.Sum(nil)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hex.EncodeToString(d[:]))
}

func TestSha256Abc(t *testing.T) {
	h := hash.NewSha256()
	d := h.Sum([]byte("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(d[:]))
}

func TestSha256DoubleHash(t *testing.T) {
	h := hash.NewSha256()
	d := h.Sum([]byte("abc"))
	d2 := h.Sum(d[:])
	assert.Equal(t, "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358", hex.EncodeToString(d2[:]))
}

func TestSha256MillionA(t *testing.T) {
	h := hash.NewSha256()
	msg := bytes.Repeat([]byte{'a'}, 1_000_000)
	d := h.Sum(msg)
	assert.Equal(t, "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0", hex.EncodeToString(d[:]))
}

func TestSha256BlockSize(t *testing.T) {
	assert.Equal(t, 64, hash.NewSha256().BlockSize())
}
