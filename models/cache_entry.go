package models

import "github.com/uptrace/bun"

// CacheEntry is one serialized record in the SQL cache.
type CacheEntry struct {
	bun.BaseModel `bun:"table:cache_entries,alias:ce"`

	Key       string `bun:"cache_key,pk" json:"key"`
	Value     []byte `bun:"value,notnull" json:"-"`
	ExpiresAt int64  `bun:"expires_at,notnull" json:"expiresAt"`
}
