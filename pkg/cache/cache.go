// Package cache provides a small content-addressed cache for rendered
// artifacts. The pipeline keys every artifact by a hash of the input
// file's content plus the output format, so rebuilding an unchanged
// category file can serve the traversals without re-walking the tree.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Default TTLs for cached data.
const (
	// TTLArtifact is how long rendered artifacts are kept. Artifacts
	// are pure functions of the input content, so the TTL only bounds
	// disk usage.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface for artifact caching backends.
type Cache interface {
	// Get retrieves a value. The boolean reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// ArtifactKey builds the cache key for one rendered artifact.
// inputHash is the SHA-256 of the raw input file content (see [Hash]);
// format is the artifact format name (pre, post, json, dot, svg).
func ArtifactKey(inputHash, format string) string {
	return fmt.Sprintf("artifact:%s:%s", format, inputHash)
}
