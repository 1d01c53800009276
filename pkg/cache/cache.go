// Package cache stores computed layouts between runs.
//
// Running a Graphviz engine is the only expensive step of a render, so its
// raw positions are cached keyed by a hash of the generated DOT source and
// engine name. The CLI uses a [FileCache] under the XDG cache directory;
// --no-cache swaps in a [NullCache].
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data; a zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources.
	Close() error
}

// Key type labels reported to observability hooks.
const (
	KeyTypeLayout = "layout"
)

// LayoutKeyOpts are the inputs that change a computed layout.
type LayoutKeyOpts struct {
	Engine string `json:"engine"`
}

// LayoutKey returns the cache key for a layout of the given DOT source.
func LayoutKey(dot string, opts LayoutKeyOpts) string {
	return hashKey(KeyTypeLayout, Hash([]byte(dot)), opts)
}
