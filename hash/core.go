// Package hash implements the SHA-2 family from the shared Merkle-Damgard
// compression skeleton described by FIPS 180-4, plus HMAC over any hasher
// in this package. Grounded on
// _examples/original_source/src/building_block/hasher/{sha256,sha512,hmac}.rs,
// whose sha_common module factors SHA-256 and SHA-512 into one generic
// core parameterized by word width, rotation amounts, and round constants;
// this package does the same with Go generics instead of Rust const
// generics.
package hash

// word is the integer type a compression function operates on: uint32 for
// SHA-256, uint64 for SHA-512.
type word interface {
	~uint32 | ~uint64
}

func rotr[W word](x W, n, width uint) W {
	return (x >> n) | (x << (width - n))
}

// sigmaParams holds the twelve rotate/shift amounts that distinguish one
// SHA-2 variant's round function from another: lower-case sigma feeds the
// message schedule extension, upper-case Sigma feeds the compression round.
type sigmaParams struct {
	s0a, s0b, s0c uint
	s1a, s1b, s1c uint
	S0a, S0b, S0c uint
	S1a, S1b, S1c uint
}

// core is the generic Merkle-Damgard compression engine shared by every
// SHA-2 variant in this package.
type core[W word] struct {
	width       uint // bits per word: 32 or 64
	blockSize   int  // bytes per message block
	lenPartSize int  // bytes reserved for the bit-length suffix
	scheduleLen int  // number of words the message schedule expands to
	k           []W
	iv          [8]W
	sigma       sigmaParams
}

func (c *core[W]) wordSize() int { return int(c.width) / 8 }

// pad appends Merkle-Damgard padding: a single 1 bit, zero bits until the
// length is lenPartSize bytes short of a block boundary, then the
// bit-length of msg as a big-endian integer occupying lenPartSize bytes.
func (c *core[W]) pad(msg []byte) []byte {
	out := make([]byte, len(msg), len(msg)+c.blockSize*2)
	copy(out, msg)
	out = append(out, 0x80)

	for len(out)%c.blockSize != c.blockSize-c.lenPartSize {
		out = append(out, 0)
	}

	bitLen := uint64(len(msg)) * 8
	lenBuf := make([]byte, c.lenPartSize)
	for i := 0; i < 8; i++ {
		lenBuf[c.lenPartSize-1-i] = byte(bitLen >> (8 * i))
	}
	return append(out, lenBuf...)
}

func (c *core[W]) blocks(padded []byte) [][]byte {
	n := len(padded) / c.blockSize
	blocks := make([][]byte, n)
	for i := 0; i < n; i++ {
		blocks[i] = padded[i*c.blockSize : (i+1)*c.blockSize]
	}
	return blocks
}

// readWord reads the i-th word-sized big-endian chunk of block.
func (c *core[W]) readWord(block []byte, i int) W {
	ws := c.wordSize()
	var w W
	for j := 0; j < ws; j++ {
		w = (w << 8) | W(block[i*ws+j])
	}
	return w
}

func (c *core[W]) smallSigma0(x W) W {
	return rotr(x, c.sigma.s0a, c.width) ^ rotr(x, c.sigma.s0b, c.width) ^ (x >> c.sigma.s0c)
}

func (c *core[W]) smallSigma1(x W) W {
	return rotr(x, c.sigma.s1a, c.width) ^ rotr(x, c.sigma.s1b, c.width) ^ (x >> c.sigma.s1c)
}

func (c *core[W]) bigSigma0(x W) W {
	return rotr(x, c.sigma.S0a, c.width) ^ rotr(x, c.sigma.S0b, c.width) ^ rotr(x, c.sigma.S0c, c.width)
}

func (c *core[W]) bigSigma1(x W) W {
	return rotr(x, c.sigma.S1a, c.width) ^ rotr(x, c.sigma.S1b, c.width) ^ rotr(x, c.sigma.S1c, c.width)
}

func ch[W word](x, y, z W) W  { return (x & y) ^ (^x & z) }
func maj[W word](x, y, z W) W { return (x & y) ^ (x & z) ^ (y & z) }

// messageSchedule expands one block's first 16 words into scheduleLen
// words per the standard W[t] = sigma1(W[t-2]) + W[t-7] + sigma0(W[t-15]) + W[t-16]
// recurrence.
func (c *core[W]) messageSchedule(block []byte) []W {
	w := make([]W, c.scheduleLen)
	for i := 0; i < 16; i++ {
		w[i] = c.readWord(block, i)
	}
	for t := 16; t < c.scheduleLen; t++ {
		w[t] = c.smallSigma1(w[t-2]) + w[t-7] + c.smallSigma0(w[t-15]) + w[t-16]
	}
	return w
}

func (c *core[W]) compress(h [8]W, block []byte) [8]W {
	w := c.messageSchedule(block)
	a, b, cc, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for t := 0; t < c.scheduleLen; t++ {
		t1 := hh + c.bigSigma1(e) + ch(e, f, g) + c.k[t] + w[t]
		t2 := c.bigSigma0(a) + maj(a, b, cc)
		hh, g, f, e = g, f, e, d+t1
		d, cc, b, a = cc, b, a, t1+t2
	}

	return [8]W{
		h[0] + a, h[1] + b, h[2] + cc, h[3] + d,
		h[4] + e, h[5] + f, h[6] + g, h[7] + hh,
	}
}

func (c *core[W]) computeHash(blocks [][]byte) [8]W {
	h := c.iv
	for _, block := range blocks {
		h = c.compress(h, block)
	}
	return h
}

func (c *core[W]) toBytes(h [8]W) []byte {
	ws := c.wordSize()
	out := make([]byte, 0, 8*ws)
	for _, word := range h {
		buf := make([]byte, ws)
		for i := 0; i < ws; i++ {
			buf[ws-1-i] = byte(word >> (8 * i))
		}
		out = append(out, buf...)
	}
	return out
}

func (c *core[W]) sum(msg []byte) []byte {
	padded := c.pad(msg)
	h := c.computeHash(c.blocks(padded))
	return c.toBytes(h)
}
