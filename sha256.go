package hmachash

// SHA-256 and SHA-224: 256-/224-bit digest sharing one
// compression function, 64-byte block, big-endian length field. SHA-224 is
// the same compression with an alternate IV and a truncated 224-bit output
// (FIPS 180-4 §5.3.2), so both contexts share sha256Context underneath.

const (
	SHA256Size      = 32
	SHA224Size      = 28
	SHA256BlockSize = 64
)

var sha256InitState = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// sha224InitState is the FIPS 180-4 §5.3.2 alternate IV: the second 32 bits
// of the fractional parts of the square roots of the 9th through 16th
// primes.
var sha224InitState = [8]uint32{
	0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
	0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
}

// sha256RoundConstants is the first 64 words of the fractional part of the
// cube roots of the first 64 primes, per FIPS 180-4.
var sha256RoundConstants = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// sha256Context is the shared compression-function state for SHA-256 and
// SHA-224; the two differ only in IV (set at NewSHA256/NewSHA224) and in
// how many output bytes Finalize emits (digestSize).
type sha256Context struct {
	h          [8]uint32
	buf        [SHA256BlockSize]byte
	bufLen     int
	length     uint64
	done       bool
	digestSize int
}

// SHA256Context is a streaming SHA-256 context.
type SHA256Context struct{ sha256Context }

// SHA224Context is a streaming SHA-224 context: identical compression to
// SHA256Context, alternate IV, truncated output.
type SHA224Context struct{ sha256Context }

// NewSHA256 returns an initialized streaming SHA-256 context.
func NewSHA256() *SHA256Context {
	c := &SHA256Context{}
	c.h = sha256InitState
	c.digestSize = SHA256Size
	return c
}

// NewSHA224 returns an initialized streaming SHA-224 context.
func NewSHA224() *SHA224Context {
	c := &SHA224Context{}
	c.h = sha224InitState
	c.digestSize = SHA224Size
	return c
}

func (c *sha256Context) Write(p []byte) (int, error) {
	if c.done {
		return 0, newError("SHA256.Write", KindCompute, errContextFinalized)
	}
	n := len(p)
	c.length += uint64(n)

	if c.bufLen > 0 {
		free := SHA256BlockSize - c.bufLen
		if free > len(p) {
			free = len(p)
		}
		copy(c.buf[c.bufLen:], p[:free])
		c.bufLen += free
		p = p[free:]
		if c.bufLen == SHA256BlockSize {
			sha256Block(&c.h, c.buf[:])
			c.bufLen = 0
		}
	}
	for len(p) >= SHA256BlockSize {
		sha256Block(&c.h, p[:SHA256BlockSize])
		p = p[SHA256BlockSize:]
	}
	if len(p) > 0 {
		c.bufLen = copy(c.buf[:], p)
	}
	return n, nil
}

func (c *sha256Context) sum() [SHA256Size]byte {
	d := *c
	var out [SHA256Size]byte
	d.finalizeFull(out[:])
	return out
}

func (c *sha256Context) finalize(out []byte) error {
	if c == nil {
		return newError("SHA256.Finalize", KindArgument, errNilContext)
	}
	if c.done {
		return newError("SHA256.Finalize", KindCompute, errContextFinalized)
	}
	if len(out) < c.digestSize {
		return newError("SHA256.Finalize", KindArgument, errShortBuffer)
	}
	var full [SHA256Size]byte
	c.finalizeFull(full[:])
	copy(out[:c.digestSize], full[:c.digestSize])
	c.done = true
	zeroizeBytes(c.buf[:])
	zeroizeUint32(c.h[:])
	c.bufLen = 0
	c.length = 0
	return nil
}

func (c *sha256Context) finalizeFull(out []byte) {
	bitLen := c.length * 8
	c.Write([]byte{0x80})
	var pad [SHA256BlockSize]byte
	for (c.bufLen % SHA256BlockSize) != (SHA256BlockSize - 8) {
		c.Write(pad[:1])
	}
	var lenBytes [8]byte
	putBeUint64(lenBytes[:], bitLen)
	c.Write(lenBytes[:])

	for i, v := range c.h {
		putBeUint32(out[i*4:], v)
	}
}

func (c *sha256Context) reset(iv [8]uint32) {
	c.h = iv
	c.bufLen = 0
	c.length = 0
	c.done = false
}

func (c *sha256Context) blockSize() int { return SHA256BlockSize }

func (c *SHA256Context) Sum(b []byte) []byte       { out := c.sum(); return append(b, out[:]...) }
func (c *SHA256Context) Finalize(out []byte) error { return c.finalize(out) }
func (c *SHA256Context) Reset()                    { c.reset(sha256InitState) }
func (c *SHA256Context) Size() int                 { return SHA256Size }
func (c *SHA256Context) BlockSize() int            { return c.blockSize() }

func (c *SHA224Context) Sum(b []byte) []byte {
	full := c.sum()
	return append(b, full[:SHA224Size]...)
}
func (c *SHA224Context) Finalize(out []byte) error { return c.finalize(out) }
func (c *SHA224Context) Reset()                    { c.reset(sha224InitState) }
func (c *SHA224Context) Size() int                 { return SHA224Size }
func (c *SHA224Context) BlockSize() int            { return c.blockSize() }

// sha256Block runs the shared SHA-256/SHA-224 compression function over
// exactly one 64-byte block: 16-to-64 schedule expansion with σ0/σ1.
func sha256Block(h *[8]uint32, block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = beUint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr32(w[i-15], 7) ^ rotr32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr32(w[i-2], 17) ^ rotr32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for i := 0; i < 64; i++ {
		s1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
		ch := (e & f) ^ (^e & g)
		temp1 := hh + s1 + ch + sha256RoundConstants[i] + w[i]
		s0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
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

// CalculateSHA256 is the one-shot convenience helper.
func CalculateSHA256(message []byte) []byte {
	ctx := NewSHA256()
	ctx.Write(message)
	var out [SHA256Size]byte
	ctx.Finalize(out[:])
	return out[:]
}

// CalculateSHA224 is the one-shot convenience helper.
func CalculateSHA224(message []byte) []byte {
	ctx := NewSHA224()
	ctx.Write(message)
	var out [SHA224Size]byte
	ctx.Finalize(out[:])
	return out[:]
}
