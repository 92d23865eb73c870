// Package hash fingerprints layouts for change detection.
//
// A layout has no identity beyond its cells, so two layouts with the same
// fingerprint render identically. Renderers use the fingerprint to skip
// redrawing when a re-parse produced the same grid. The package provides
// both a real implementation using crypto/sha256 and a fake implementation
// for testing.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher provides an abstraction for content hashing.
type Hasher interface {
	// Sum returns the hex-encoded digest of data.
	Sum(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Sum returns the hex-encoded SHA-256 digest of data.
func (h *SHA256Hasher) Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FakeHasher implements Hasher with deterministic hashes for testing.
type FakeHasher struct {
	hashes map[string]string
	calls  int
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{
		hashes: make(map[string]string),
	}
}

// SetHash sets the hash returned for specific content (for testing).
func (h *FakeHasher) SetHash(data, hash string) {
	h.hashes[data] = hash
}

// Calls returns how many times Sum was called.
func (h *FakeHasher) Calls() int {
	return h.calls
}

// Sum returns the predetermined hash for data.
func (h *FakeHasher) Sum(data []byte) string {
	h.calls++
	if hash, ok := h.hashes[string(data)]; ok {
		return hash
	}
	// Default hash if not set
	return "fakehash"
}
