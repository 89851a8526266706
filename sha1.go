package hmachash

import "math/bits"

// SHA-1: 160-bit digest, 64-byte block, big-endian length
// field, per FIPS 180-4.

const (
	SHA1Size      = 20
	SHA1BlockSize = 64
)

var sha1InitState = [5]uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}

// SHA1Context is a streaming SHA-1 context.
type SHA1Context struct {
	h      [5]uint32
	buf    [SHA1BlockSize]byte
	bufLen int
	length uint64
	done   bool
}

// NewSHA1 returns an initialized streaming SHA-1 context.
func NewSHA1() *SHA1Context {
	return &SHA1Context{h: sha1InitState}
}

func (c *SHA1Context) Write(p []byte) (int, error) {
	if c.done {
		return 0, newError("SHA1.Write", KindCompute, errContextFinalized)
	}
	n := len(p)
	c.length += uint64(n)

	if c.bufLen > 0 {
		free := SHA1BlockSize - c.bufLen
		if free > len(p) {
			free = len(p)
		}
		copy(c.buf[c.bufLen:], p[:free])
		c.bufLen += free
		p = p[free:]
		if c.bufLen == SHA1BlockSize {
			sha1Block(&c.h, c.buf[:])
			c.bufLen = 0
		}
	}
	for len(p) >= SHA1BlockSize {
		sha1Block(&c.h, p[:SHA1BlockSize])
		p = p[SHA1BlockSize:]
	}
	if len(p) > 0 {
		c.bufLen = copy(c.buf[:], p)
	}
	return n, nil
}

func (c *SHA1Context) Sum(b []byte) []byte {
	d := *c
	var out [SHA1Size]byte
	d.finalize(out[:])
	return append(b, out[:]...)
}

func (c *SHA1Context) Finalize(out []byte) error {
	if c == nil {
		return newError("SHA1.Finalize", KindArgument, errNilContext)
	}
	if c.done {
		return newError("SHA1.Finalize", KindCompute, errContextFinalized)
	}
	if len(out) < SHA1Size {
		return newError("SHA1.Finalize", KindArgument, errShortBuffer)
	}
	c.finalize(out[:SHA1Size])
	c.done = true
	zeroizeBytes(c.buf[:])
	zeroizeUint32(c.h[:])
	c.bufLen = 0
	c.length = 0
	return nil
}

func (c *SHA1Context) finalize(out []byte) {
	bitLen := c.length * 8
	c.Write([]byte{0x80})
	var pad [SHA1BlockSize]byte
	for (c.bufLen % SHA1BlockSize) != (SHA1BlockSize - 8) {
		c.Write(pad[:1])
	}
	var lenBytes [8]byte
	putBeUint64(lenBytes[:], bitLen)
	c.Write(lenBytes[:])

	for i, v := range c.h {
		putBeUint32(out[i*4:], v)
	}
}

func (c *SHA1Context) Reset() {
	c.h = sha1InitState
	c.bufLen = 0
	c.length = 0
	c.done = false
}

func (c *SHA1Context) Size() int      { return SHA1Size }
func (c *SHA1Context) BlockSize() int { return SHA1BlockSize }

// sha1Block runs the SHA-1 compression function over exactly one 64-byte
// block: 16-to-80 schedule expansion via a single rotate-by-1, four round
// families of 20 rounds each.
func sha1Block(h *[5]uint32, block []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = beUint32(block[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]
	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & d)
			k = 0x5A827999
		case i < 40:
			f = b ^ c ^ d
			k = 0x6ED9EBA1
		case i < 60:
			f = (b & c) | (b & d) | (c & d)
			k = 0x8F1BBCDC
		default:
			f = b ^ c ^ d
			k = 0xCA62C1D6
		}
		temp := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		e = d
		d = c
		c = bits.RotateLeft32(b, 30)
		b = a
		a = temp
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
}

// CalculateSHA1 is the one-shot convenience helper.
func CalculateSHA1(message []byte) []byte {
	ctx := NewSHA1()
	ctx.Write(message)
	var out [SHA1Size]byte
	ctx.Finalize(out[:])
	return out[:]
}
