package hmachash

import (
	"bytes"
	"strings"
	"testing"
)

// FIPS 180-4 Appendix A test suite, plus an additional seed vector.
func TestSHA1Vectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
	}
	for _, c := range cases {
		got := CalculateSHA1([]byte(c.in))
		want := mustDecode(t, c.want)
		if !bytes.Equal(got, want) {
			t.Errorf("SHA1(%q) = %x, want %x", c.in, got, want)
		}
	}
}

func TestSHA1ChunkingInvariance(t *testing.T) {
	msg := bytes.Repeat([]byte("streaming test data "), 200)
	want := CalculateSHA1(msg)

	for _, chunk := range []int{1, 3, 63, 64, 65, 4096} {
		ctx := NewSHA1()
		for i := 0; i < len(msg); i += chunk {
			end := i + chunk
			if end > len(msg) {
				end = len(msg)
			}
			ctx.Write(msg[i:end])
		}
		var got [SHA1Size]byte
		ctx.Finalize(got[:])
		if !bytes.Equal(got[:], want) {
			t.Errorf("chunk size %d: got %x, want %x", chunk, got, want)
		}
	}
}

func TestSHA1LongStream(t *testing.T) {
	// FIPS 180-4 one-million-'a' vector.
	want := mustDecode(t, "34aa973cd4c4daa4f61eeb2bdbad27316534016f")
	msg := strings.Repeat("a", 1000000)

	got := CalculateSHA1([]byte(msg))
	if !bytes.Equal(got, want) {
		t.Errorf("single update: got %x, want %x", got, want)
	}

	ctx := NewSHA1()
	for i := 0; i < len(msg); i++ {
		ctx.Write([]byte{msg[i]})
	}
	var byteAtATime [SHA1Size]byte
	ctx.Finalize(byteAtATime[:])
	if !bytes.Equal(byteAtATime[:], want) {
		t.Errorf("byte-at-a-time: got %x, want %x", byteAtATime, want)
	}
}

func TestSHA1ZeroLengthWriteIsNoOp(t *testing.T) {
	a := NewSHA1()
	a.Write([]byte("abc"))
	a.Write(nil)

	b := NewSHA1()
	b.Write([]byte("abc"))

	var outA, outB [SHA1Size]byte
	a.Finalize(outA[:])
	b.Finalize(outB[:])
	if !bytes.Equal(outA[:], outB[:]) {
		t.Errorf("zero-length write changed digest")
	}
}

func TestSHA1ZeroizationOnFinalize(t *testing.T) {
	ctx := NewSHA1()
	ctx.Write([]byte("zeroize me"))
	var out [SHA1Size]byte
	ctx.Finalize(out[:])

	for _, w := range ctx.h {
		if w != 0 {
			t.Errorf("chaining state not zeroized: %v", ctx.h)
			break
		}
	}
}
