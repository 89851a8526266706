package registry

// HashEngine is a construction-time strategy abstraction: three
// interchangeable ways to construct a digest context (a legacy provider
// API, a modern provider API, and the self-contained implementation),
// selected when a Session is built instead of hard-wired per algorithm.
//
// The default, and the only one this module ships wired to real
// primitives, is internalEngine: a pure-Go HashEngine over this module's
// own digest contexts. The other two are documented seams
// (internal/provider) for routing to a system cryptographic provider when
// one is available at build time; they are never selected unless a caller
// opts in explicitly.
type HashEngine interface {
	// New constructs a fresh streaming context for the given canonical
	// digest name, or an error if this engine cannot serve that algorithm.
	New(name string) (hasher, error)
	// Name identifies the engine for logging/diagnostics.
	Name() string
}

// internalEngine is the default HashEngine: every context it constructs is
// this module's own pure-Go implementation.
type internalEngine struct{}

func (internalEngine) New(name string) (hasher, error) { return newHasher(name) }
func (internalEngine) Name() string                    { return "internal" }

// DefaultEngine is the HashEngine every Session uses unless NewSessionWithEngine
// is called explicitly.
var DefaultEngine HashEngine = internalEngine{}

// NewSessionWithEngine behaves like NewSession but drives context
// construction through engine instead of the package default, letting a
// caller swap in an external-provider strategy without touching the
// Session/Write/Finalize contract.
func NewSessionWithEngine(names []string, engine HashEngine) (*Session, error) {
	if len(names) == 0 {
		return nil, errNoDigestsSelected
	}
	s := &Session{names: names, hashers: make([]hasher, 0, len(names))}
	for _, n := range names {
		h, err := engine.New(n)
		if err != nil {
			return nil, err
		}
		s.hashers = append(s.hashers, h)
	}
	return s, nil
}
