// Package registry implements the digest registry and streaming façade:
// it maps case-insensitive, punctuation-tolerant digest
// names to hash engines and broadcasts Write/Finalize across a
// caller-selected set of them in a single pass over the input.
//
// Modeled after the versioned-registry pattern in
// justincranford/cryptoutil's internal/shared/crypto/hash package
// (NewParameterSetRegistry / GetParameterSet / ListVersions), generalized
// here from parameter-set versions to digest-algorithm names.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/libyal/hmachash"
)

// Canonical digest names.
const (
	MD5    = "md5"
	SHA1   = "sha1"
	SHA224 = "sha224"
	SHA256 = "sha256"
	SHA512 = "sha512"
)

// aliases maps every accepted variant (case, punctuation) to its canonical
// name.
var aliases = map[string]string{
	"md5":     MD5,
	"sha1":    SHA1,
	"sha-1":   SHA1,
	"sha_1":   SHA1,
	"sha224":  SHA224,
	"sha-224": SHA224,
	"sha_224": SHA224,
	"sha256":  SHA256,
	"sha-256": SHA256,
	"sha_256": SHA256,
	"sha512":  SHA512,
	"sha-512": SHA512,
	"sha_512": SHA512,
}

// Canonicalize normalizes a single digest name to its canonical lower-case
// form ("md5", "sha1", "sha224", "sha256", "sha512"), accepting any of the
// documented punctuation/case variants. It reports an error for any other
// input, including the empty string.
func Canonicalize(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	canon, ok := aliases[key]
	if !ok {
		return "", fmt.Errorf("registry: unsupported digest name %q", name)
	}
	return canon, nil
}

var errNoDigestsSelected = fmt.Errorf("registry: no digests selected")

// ParseSelection splits a comma-separated digest-name list into its
// canonicalized, de-duplicated, order-preserving set of names.
func ParseSelection(spec string) ([]string, error) {
	parts := strings.Split(spec, ",")
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		canon, err := Canonicalize(p)
		if err != nil {
			return nil, err
		}
		if !seen[canon] {
			seen[canon] = true
			out = append(out, canon)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("registry: empty digest selection")
	}
	return out, nil
}

// ListNames returns every canonical digest name the registry recognizes,
// sorted for deterministic output (e.g. in CLI usage text).
func ListNames() []string {
	out := []string{MD5, SHA1, SHA224, SHA256, SHA512}
	sort.Strings(out)
	return out
}

// hasher is the streaming contract every primitive in hmachash satisfies;
// duplicated here (rather than imported) because hmachash keeps it
// unexported — the registry only needs the subset it broadcasts over. It is
// an alias for the interface literal, so engines in other packages (such as
// internal/provider) that return the same method set satisfy HashEngine.
type hasher = interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Finalize(out []byte) error
	Reset()
	Size() int
	BlockSize() int
}

// newHasher constructs a fresh context for a canonical digest name using
// the default HashEngine: the internal, pure-Go implementation.
func newHasher(name string) (hasher, error) {
	switch name {
	case MD5:
		return hmachash.NewMD5(), nil
	case SHA1:
		return hmachash.NewSHA1(), nil
	case SHA224:
		return hmachash.NewSHA224(), nil
	case SHA256:
		return hmachash.NewSHA256(), nil
	case SHA512:
		return hmachash.NewSHA512(), nil
	default:
		return nil, fmt.Errorf("registry: unsupported digest name %q", name)
	}
}

// Session is the streaming façade the CLI collaborator drives: it holds one
// context per selected digest and broadcasts Write to all of them across a
// slice of polymorphic contexts.
type Session struct {
	names   []string
	hashers []hasher
	aborted bool
}

// NewSession constructs a streaming façade over the given canonical digest
// names (use ParseSelection to obtain them from a CLI -d argument).
func NewSession(names []string) (*Session, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("registry: no digests selected")
	}
	s := &Session{names: names, hashers: make([]hasher, 0, len(names))}
	for _, n := range names {
		h, err := DefaultEngine.New(n)
		if err != nil {
			return nil, err
		}
		s.hashers = append(s.hashers, h)
	}
	return s, nil
}

// Write broadcasts p to every selected digest context. A zero-length Write
// is a no-op, matching each underlying primitive's own chunking discipline.
func (s *Session) Write(p []byte) (int, error) {
	for _, h := range s.hashers {
		if _, err := h.Write(p); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Abort sets the advisory abort flag, which callers can read back with
// Aborted: the CLI sets it when it stops feeding data. It does not
// interrupt a Write already in progress, and it does not itself finalize
// anything — a partial digest is not a meaningful output.
func (s *Session) Abort() { s.aborted = true }

// Aborted reports whether Abort has been called.
func (s *Session) Aborted() bool { return s.aborted }

// Result pairs a canonical digest name with its finalized raw digest bytes.
type Result struct {
	Name   string
	Digest []byte
}

// Finalize drives Finalize on every selected context and returns one
// Result per digest, in the same order as the names passed to NewSession.
// Each underlying context is consumed exactly once; the Session itself
// must not be reused after Finalize.
func (s *Session) Finalize() ([]Result, error) {
	results := make([]Result, len(s.hashers))
	for i, h := range s.hashers {
		out := make([]byte, h.Size())
		if err := h.Finalize(out); err != nil {
			return nil, fmt.Errorf("registry: finalize %s: %w", s.names[i], err)
		}
		results[i] = Result{Name: s.names[i], Digest: out}
	}
	return results, nil
}
