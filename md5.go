package hmachash

import "math/bits"

// MD5: 128-bit digest, 64-byte block, little-endian length
// field, per RFC 1321.

const (
	MD5Size      = 16
	MD5BlockSize = 64
)

var md5InitState = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// md5Constants is the table of sine-derived round constants from RFC 1321 §3.4.
var md5Constants = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

var md5Shift = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// MD5Context is a streaming MD5 context.
type MD5Context struct {
	h      [4]uint32
	buf    [MD5BlockSize]byte
	bufLen int
	length uint64 // total bytes consumed
	done   bool
}

// NewMD5 returns an initialized streaming MD5 context.
func NewMD5() *MD5Context {
	c := &MD5Context{h: md5InitState}
	return c
}

// Write implements the "update" operation. A zero-length write is a no-op
// that still succeeds.
func (c *MD5Context) Write(p []byte) (int, error) {
	if c.done {
		return 0, newError("MD5.Write", KindCompute, errContextFinalized)
	}
	n := len(p)
	c.length += uint64(n)

	if c.bufLen > 0 {
		free := MD5BlockSize - c.bufLen
		if free > len(p) {
			free = len(p)
		}
		copy(c.buf[c.bufLen:], p[:free])
		c.bufLen += free
		p = p[free:]
		if c.bufLen == MD5BlockSize {
			md5Block(&c.h, c.buf[:])
			c.bufLen = 0
		}
	}
	for len(p) >= MD5BlockSize {
		md5Block(&c.h, p[:MD5BlockSize])
		p = p[MD5BlockSize:]
	}
	if len(p) > 0 {
		c.bufLen = copy(c.buf[:], p)
	}
	return n, nil
}

// Sum returns the MD5 digest of the state consumed so far without
// mutating the context, appending it to b.
func (c *MD5Context) Sum(b []byte) []byte {
	d := *c
	var out [MD5Size]byte
	d.finalize(out[:])
	return append(b, out[:]...)
}

// Finalize implements the "finalize" operation: pads, emits the
// little-endian bit-length terminator, flushes the final block(s), writes
// the digest in little-endian word order into out, and zeroizes the
// context so it cannot be reused or recovered after Finalize returns.
func (c *MD5Context) Finalize(out []byte) error {
	if c == nil {
		return newError("MD5.Finalize", KindArgument, errNilContext)
	}
	if c.done {
		return newError("MD5.Finalize", KindCompute, errContextFinalized)
	}
	if len(out) < MD5Size {
		return newError("MD5.Finalize", KindArgument, errShortBuffer)
	}
	c.finalize(out[:MD5Size])
	c.done = true
	zeroizeBytes(c.buf[:])
	zeroizeUint32(c.h[:])
	c.bufLen = 0
	c.length = 0
	return nil
}

func (c *MD5Context) finalize(out []byte) {
	bitLen := c.length * 8
	c.Write([]byte{0x80})
	var pad [MD5BlockSize]byte
	for (c.bufLen % MD5BlockSize) != (MD5BlockSize - 8) {
		c.Write(pad[:1])
	}
	var lenBytes [8]byte
	putLeUint32(lenBytes[0:4], uint32(bitLen))
	putLeUint32(lenBytes[4:8], uint32(bitLen>>32))
	c.Write(lenBytes[:])

	for i, v := range c.h {
		putLeUint32(out[i*4:], v)
	}
}

// Reset returns the context to its initial state, allowing reuse.
func (c *MD5Context) Reset() {
	c.h = md5InitState
	c.bufLen = 0
	c.length = 0
	c.done = false
}

func (c *MD5Context) Size() int      { return MD5Size }
func (c *MD5Context) BlockSize() int { return MD5BlockSize }

// md5Block runs the MD5 compression function over exactly one 64-byte block.
func md5Block(h *[4]uint32, block []byte) {
	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = leUint32(block[i*4:])
	}

	a, b, c, d := h[0], h[1], h[2], h[3]
	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & c) | (^b & d)
			g = i
		case i < 32:
			f = (d & b) | (^d & c)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ d
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			g = (7 * i) % 16
		}
		f = f + a + md5Constants[i] + m[g]
		a = d
		d = c
		c = b
		b = b + bits.RotateLeft32(f, md5Shift[i])
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
}

// CalculateMD5 is the one-shot convenience helper: equivalent
// to initialize + update(message) + finalize.
func CalculateMD5(message []byte) []byte {
	ctx := NewMD5()
	ctx.Write(message)
	var out [MD5Size]byte
	ctx.Finalize(out[:])
	return out[:]
}
