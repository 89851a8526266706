package hmachash

// SHA-512: 512-bit digest, 128-byte block, 64-bit words, 128-bit
// big-endian length field. Only the low 64 bits of the length field are
// populated and the high 64 bits are always zero; this matches every
// real message, since no input will ever reach 2^64 bits.

const (
	SHA512Size      = 64
	SHA512BlockSize = 128
)

var sha512InitState = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// sha512RoundConstants is the first 80 words of the fractional part of the
// cube roots of the first 80 primes, truncated to 64 bits.
var sha512RoundConstants = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// SHA512Context is a streaming SHA-512 context.
type SHA512Context struct {
	h      [8]uint64
	buf    [SHA512BlockSize]byte
	bufLen int
	length uint64 // total bytes consumed; length*8 fills the low 64 bits of the bit-length field
	done   bool
}

// NewSHA512 returns an initialized streaming SHA-512 context.
func NewSHA512() *SHA512Context {
	return &SHA512Context{h: sha512InitState}
}

func (c *SHA512Context) Write(p []byte) (int, error) {
	if c.done {
		return 0, newError("SHA512.Write", KindCompute, errContextFinalized)
	}
	n := len(p)
	c.length += uint64(n)

	if c.bufLen > 0 {
		free := SHA512BlockSize - c.bufLen
		if free > len(p) {
			free = len(p)
		}
		copy(c.buf[c.bufLen:], p[:free])
		c.bufLen += free
		p = p[free:]
		if c.bufLen == SHA512BlockSize {
			sha512Block(&c.h, c.buf[:])
			c.bufLen = 0
		}
	}
	for len(p) >= SHA512BlockSize {
		sha512Block(&c.h, p[:SHA512BlockSize])
		p = p[SHA512BlockSize:]
	}
	if len(p) > 0 {
		c.bufLen = copy(c.buf[:], p)
	}
	return n, nil
}

func (c *SHA512Context) Sum(b []byte) []byte {
	d := *c
	var out [SHA512Size]byte
	d.finalize(out[:])
	return append(b, out[:]...)
}

func (c *SHA512Context) Finalize(out []byte) error {
	if c == nil {
		return newError("SHA512.Finalize", KindArgument, errNilContext)
	}
	if c.done {
		return newError("SHA512.Finalize", KindCompute, errContextFinalized)
	}
	if len(out) < SHA512Size {
		return newError("SHA512.Finalize", KindArgument, errShortBuffer)
	}
	c.finalize(out[:SHA512Size])
	c.done = true
	zeroizeBytes(c.buf[:])
	zeroizeUint64(c.h[:])
	c.bufLen = 0
	c.length = 0
	return nil
}

func (c *SHA512Context) finalize(out []byte) {
	bitLen := c.length * 8
	c.Write([]byte{0x80})
	var pad [SHA512BlockSize]byte
	for (c.bufLen % SHA512BlockSize) != (SHA512BlockSize - 16) {
		c.Write(pad[:1])
	}
	var lenBytes [16]byte // upper 64 bits left zero
	putBeUint64(lenBytes[8:], bitLen)
	c.Write(lenBytes[:])

	for i, v := range c.h {
		putBeUint64(out[i*8:], v)
	}
}

func (c *SHA512Context) Reset() {
	c.h = sha512InitState
	c.bufLen = 0
	c.length = 0
	c.done = false
}

func (c *SHA512Context) Size() int      { return SHA512Size }
func (c *SHA512Context) BlockSize() int { return SHA512BlockSize }

// sha512Block runs the SHA-512 compression function over exactly one
// 128-byte block: 16-to-80 schedule expansion with the 64-bit σ rotations.
func sha512Block(h *[8]uint64, block []byte) {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		w[i] = beUint64(block[i*8:])
	}
	for i := 16; i < 80; i++ {
		s0 := rotr64(w[i-15], 1) ^ rotr64(w[i-15], 8) ^ (w[i-15] >> 7)
		s1 := rotr64(w[i-2], 19) ^ rotr64(w[i-2], 61) ^ (w[i-2] >> 6)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for i := 0; i < 80; i++ {
		s1 := rotr64(e, 14) ^ rotr64(e, 18) ^ rotr64(e, 41)
		ch := (e & f) ^ (^e & g)
		temp1 := hh + s1 + ch + sha512RoundConstants[i] + w[i]
		s0 := rotr64(a, 28) ^ rotr64(a, 34) ^ rotr64(a, 39)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := s0 + maj

		hh = g
		g = f
		f = e
		e = d + temp1
		d = c
		c = b
		b = a
		a = temp1 + temp2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

// CalculateSHA512 is the one-shot convenience helper.
func CalculateSHA512(message []byte) []byte {
	ctx := NewSHA512()
	ctx.Write(message)
	var out [SHA512Size]byte
	ctx.Finalize(out[:])
	return out[:]
}
