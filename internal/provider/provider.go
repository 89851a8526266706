// Package provider documents the external-provider adapter seam: when a
// system cryptographic provider is available at build time, it can be
// routed to instead of the internal implementation. This package exists
// only so the registry.HashEngine interface has somewhere non-default
// strategies would live. Neither engine here is wired to a real OS crypto
// API — that binding is build-specific and out of scope (see DESIGN.md).
package provider

import "errors"

// ErrProviderUnavailable is returned by both engines below: no system
// crypto provider binding ships in this module.
var ErrProviderUnavailable = errors.New("provider: no system cryptographic provider wired in this build")

// LegacyEngine documents the seam for a legacy system-provider API.
type LegacyEngine struct{}

// Name identifies this engine for logging/diagnostics.
func (LegacyEngine) Name() string { return "legacy-provider" }

// New always fails: see package doc.
func (LegacyEngine) New(name string) (interface {
	Write([]byte) (int, error)
	Sum([]byte) []byte
	Finalize([]byte) error
	Reset()
	Size() int
	BlockSize() int
}, error) {
	return nil, ErrProviderUnavailable
}

// ModernEngine documents the seam for a modern system-provider API.
type ModernEngine struct{}

// Name identifies this engine for logging/diagnostics.
func (ModernEngine) Name() string { return "modern-provider" }

// New always fails: see package doc.
func (ModernEngine) New(name string) (interface {
	Write([]byte) (int, error)
	Sum([]byte) []byte
	Finalize([]byte) error
	Reset()
	Size() int
	BlockSize() int
}, error) {
	return nil, ErrProviderUnavailable
}
