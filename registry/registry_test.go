package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCanonicalize_AcceptsAllDocumentedVariants exercises every documented
// punctuation/case variant, following the table-driven style of
// justincranford/cryptoutil's hash_registry_test.go.
func TestCanonicalize_AcceptsAllDocumentedVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "md5 lower", input: "md5", want: MD5},
		{name: "md5 upper", input: "MD5", want: MD5},
		{name: "sha1 plain", input: "sha1", want: SHA1},
		{name: "sha1 upper", input: "SHA1", want: SHA1},
		{name: "sha1 hyphen", input: "sha-1", want: SHA1},
		{name: "sha1 hyphen upper", input: "SHA-1", want: SHA1},
		{name: "sha1 underscore", input: "sha_1", want: SHA1},
		{name: "sha1 underscore upper", input: "SHA_1", want: SHA1},
		{name: "sha224 plain", input: "sha224", want: SHA224},
		{name: "sha224 hyphen", input: "sha-224", want: SHA224},
		{name: "sha224 underscore upper", input: "SHA_224", want: SHA224},
		{name: "sha256 plain", input: "sha256", want: SHA256},
		{name: "sha256 hyphen upper", input: "SHA-256", want: SHA256},
		{name: "sha512 underscore", input: "sha_512", want: SHA512},
		{name: "unsupported", input: "sha3-256", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Canonicalize(tt.input)
			if tt.wantErr {
				require.Error(t, err, "expected error for input %q", tt.input)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseSelection_CommaListDeduplicatesAndPreservesOrder(t *testing.T) {
	t.Parallel()

	names, err := ParseSelection("SHA256, md5,sha256, SHA-1")
	require.NoError(t, err)
	require.Equal(t, []string{SHA256, MD5, SHA1}, names)
}

func TestParseSelection_RejectsEmptySelection(t *testing.T) {
	t.Parallel()

	_, err := ParseSelection("")
	require.Error(t, err)

	_, err = ParseSelection("  ,  ,")
	require.Error(t, err)
}

func TestParseSelection_RejectsUnknownDigest(t *testing.T) {
	t.Parallel()

	_, err := ParseSelection("md5,blake2s")
	require.Error(t, err)
}

func TestListNames_ReturnsAllFiveSorted(t *testing.T) {
	t.Parallel()

	names := ListNames()
	require.Equal(t, []string{MD5, SHA1, SHA224, SHA256, SHA512}, names)
}

func TestSession_BroadcastsWriteAcrossSelectedDigests(t *testing.T) {
	t.Parallel()

	session, err := NewSession([]string{MD5, SHA256})
	require.NoError(t, err)

	_, err = session.Write([]byte("abc"))
	require.NoError(t, err)

	results, err := session.Finalize()
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, MD5, results[0].Name)
	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", hexString(results[0].Digest))
	require.Equal(t, SHA256, results[1].Name)
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hexString(results[1].Digest))
}

func TestSession_ZeroLengthWriteIsNoOp(t *testing.T) {
	t.Parallel()

	a, err := NewSession([]string{SHA256})
	require.NoError(t, err)
	_, err = a.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = a.Write(nil)
	require.NoError(t, err)
	resultsA, err := a.Finalize()
	require.NoError(t, err)

	b, err := NewSession([]string{SHA256})
	require.NoError(t, err)
	_, err = b.Write([]byte("abc"))
	require.NoError(t, err)
	resultsB, err := b.Finalize()
	require.NoError(t, err)

	require.Equal(t, resultsA[0].Digest, resultsB[0].Digest)
}

func TestSession_AbortIsAdvisory(t *testing.T) {
	t.Parallel()

	s, err := NewSession([]string{MD5})
	require.NoError(t, err)
	require.False(t, s.Aborted())
	s.Abort()
	require.True(t, s.Aborted())
}

func TestNewSession_RejectsEmptySelection(t *testing.T) {
	t.Parallel()

	_, err := NewSession(nil)
	require.Error(t, err)
}

func hexString(b []byte) string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hexDigits[v>>4]
		out[i*2+1] = hexDigits[v&0x0f]
	}
	return string(out)
}
