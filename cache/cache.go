// Package cache stores serialized records for a fixed time-to-live.
package cache

import (
	"context"
	"fmt"
	"time"
)

// TTL is how long a scraped record stays cached.
const TTL = 7 * 24 * time.Hour

// Store is a key/value store whose entries expire.
type Store interface {
	// Get returns the stored value and whether the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Key builds the cache key for a record, e.g. "fighter_461".
func Key(objectType string, id int) string {
	return fmt.Sprintf("%s_%d", objectType, id)
}
