package hmachash

// HMAC: RFC 2104 keyed-hash construction, generic over any of the five
// digest primitives in this package. Grounded on the ipad/opad
// XOR-and-double-hash shape of storj.io/common/internal/hmacsha512
// (hmac.go), generalized from a single fixed algorithm to the
// digest-agnostic hasher interface below.
//
// Only the one-shot CalculateHMAC entry point is exported; the per-call
// inner/outer context plumbing stays unexported. No streaming HMAC context
// is part of the public surface.

// hasher is the minimal streaming contract every digest context in this
// package satisfies. The HMAC construction is written once against this
// interface instead of once per algorithm.
type hasher interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Finalize(out []byte) error
	Reset()
	Size() int
	BlockSize() int
}

// newHasher constructs a fresh context for the named canonical algorithm.
// Names must already be normalized by registry.Canonicalize; this is an
// internal fast path used by HMAC, which needs two independent contexts
// per call regardless of what the registry is doing.
func newHasher(name string) (hasher, error) {
	switch name {
	case "md5":
		return NewMD5(), nil
	case "sha1":
		return NewSHA1(), nil
	case "sha224":
		return NewSHA224(), nil
	case "sha256":
		return NewSHA256(), nil
	case "sha512":
		return NewSHA512(), nil
	default:
		return nil, newError("newHasher", KindArgument, errUnsupportedAlgorithm)
	}
}

// calculateHMAC implements the RFC 2104 construction:
//  1. normalize the key (hash it down if it exceeds the block size)
//  2. zero-pad it to block size
//  3/4. XOR with ipad/opad
//  5. inner := hash(ipad || message)
//  6. output := hash(opad || inner)
//  7. copy min(outLen, digestSize) bytes to the caller, from the front
//     (truncation-to-less-than-L keeps the leading bytes, per RFC 4231
//     test vector 5).
func calculateHMAC(alg string, key, message []byte, outLen int) ([]byte, error) {
	h, err := newHasher(alg)
	if err != nil {
		return nil, err
	}
	blockSize := h.BlockSize()
	digestSize := h.Size()

	if outLen <= 0 {
		return nil, newError("CalculateHMAC", KindArgument, errZeroOutputLength)
	}
	if outLen > digestSize {
		return nil, newError("CalculateHMAC", KindArgument, errOversizeOutputLength)
	}

	normalizedKey := key
	if len(key) > blockSize {
		h.Write(key)
		hashed := make([]byte, digestSize)
		if err := h.Finalize(hashed); err != nil {
			return nil, newError("CalculateHMAC", KindCompute, err)
		}
		normalizedKey = hashed
		h.Reset()
	}

	k := make([]byte, blockSize)
	copy(k, normalizedKey)

	ipad := make([]byte, blockSize)
	opad := make([]byte, blockSize)
	for i := 0; i < blockSize; i++ {
		ipad[i] = k[i] ^ 0x36
		opad[i] = k[i] ^ 0x5c
	}

	h.Reset()
	h.Write(ipad)
	h.Write(message)
	inner := make([]byte, digestSize)
	if err := h.Finalize(inner); err != nil {
		return nil, newError("CalculateHMAC", KindCompute, err)
	}

	h.Reset()
	h.Write(opad)
	h.Write(inner)
	output := make([]byte, digestSize)
	if err := h.Finalize(output); err != nil {
		return nil, newError("CalculateHMAC", KindCompute, err)
	}

	result := make([]byte, outLen)
	copy(result, output[:outLen])

	if len(key) > blockSize {
		// normalizedKey is this call's own hashed copy; otherwise it is the
		// caller's key, which is left untouched.
		zeroizeBytes(normalizedKey)
	}
	zeroizeBytes(k)
	zeroizeBytes(ipad)
	zeroizeBytes(opad)
	zeroizeBytes(inner)
	zeroizeBytes(output)

	return result, nil
}

// CalculateMD5HMAC computes the HMAC-MD5 of message under key, per RFC 2104.
func CalculateMD5HMAC(key, message []byte) ([]byte, error) {
	return calculateHMAC("md5", key, message, MD5Size)
}

// CalculateSHA1HMAC computes the HMAC-SHA-1 of message under key.
func CalculateSHA1HMAC(key, message []byte) ([]byte, error) {
	return calculateHMAC("sha1", key, message, SHA1Size)
}

// CalculateSHA224HMAC computes the HMAC-SHA-224 of message under key.
func CalculateSHA224HMAC(key, message []byte) ([]byte, error) {
	return calculateHMAC("sha224", key, message, SHA224Size)
}

// CalculateSHA256HMAC computes the HMAC-SHA-256 of message under key.
func CalculateSHA256HMAC(key, message []byte) ([]byte, error) {
	return calculateHMAC("sha256", key, message, SHA256Size)
}

// CalculateSHA512HMAC computes the HMAC-SHA-512 of message under key.
func CalculateSHA512HMAC(key, message []byte) ([]byte, error) {
	return calculateHMAC("sha512", key, message, SHA512Size)
}

// CalculateHMAC computes HMAC-<alg> of message under key, truncating the
// output to outLen bytes (outLen must be in (0, digestSize]).
// alg must already be a canonical name (see registry.Canonicalize); this
// entry point drives HMAC generically over a caller-selected algorithm name.
func CalculateHMAC(alg string, key, message []byte, outLen int) ([]byte, error) {
	return calculateHMAC(alg, key, message, outLen)
}
