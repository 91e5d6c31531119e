package hash

// Hasher is the interface HMAC drives: anything that can digest an
// arbitrary byte slice and report its internal block size.
type Hasher interface {
	SumSlice(msg []byte) []byte
	BlockSize() int
}

// HMAC computes keyed digests per RFC 2104: H(K xor opad || H(K xor ipad || text)).
type HMAC struct {
	h Hasher
}

// NewHMAC wraps h for HMAC use.
func NewHMAC(h Hasher) *HMAC {
	return &HMAC{h: h}
}

// Sum returns the HMAC digest of text under key.
func (m *HMAC) Sum(key, text []byte) []byte {
	blockSize := m.h.BlockSize()

	k := make([]byte, blockSize)
	if len(key) > blockSize {
		copy(k, m.h.SumSlice(key))
	} else {
		copy(k, key)
	}

	inner := make([]byte, blockSize, blockSize+len(text))
	outerPad := make([]byte, blockSize)
	for i := 0; i < blockSize; i++ {
		inner[i] = k[i] ^ 0x36
		outerPad[i] = k[i] ^ 0x5c
	}
	inner = append(inner, text...)
	innerDigest := m.h.SumSlice(inner)

	outer := append(outerPad, innerDigest...)
	return m.h.SumSlice(outer)
}
