// Package cache stores rendered artifacts keyed by the content they were
// rendered from.
//
// Rendering DOT through Graphviz is the slowest step of a conversion, and
// the same document is often converted again unchanged. The render step
// hashes the DOT text, derives an artifact key with a [Keyer] and consults
// a [Cache] before invoking Graphviz.
//
//	c, err := cache.NewFileCache(dir)
//	keyer := cache.NewScopedKeyer(nil, "v1:")
//	key := keyer.ArtifactKey(cache.Hash(dot), cache.ArtifactKeyOpts{Format: "svg"})
//	data, hit, err := c.Get(ctx, key)
//
// [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored data and true, or false on a miss.
	// Expired and unreadable entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	// Engine is the Graphviz layout engine, empty for the default.
	Engine string `json:"engine,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	ArtifactKey(dotHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer derives unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a keyer without namespace.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<hash of dotHash and opts>".
func (DefaultKeyer) ArtifactKey(dotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dotHash, opts)
}
