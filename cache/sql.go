package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"

	"github.com/padraicbc/sherdogapi/models"
)

// SQL is a Store kept in the cache_entries table. Expired rows read as
// misses until Purge removes them.
type SQL struct {
	db  *bun.DB
	now func() time.Time
}

// NewSQL creates a store over db. The cache_entries table must already exist.
func NewSQL(db *bun.DB) *SQL {
	return &SQL{db: db, now: time.Now}
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry := &models.CacheEntry{}
	err := s.db.NewSelect().Model(entry).
		Where("cache_key = ?", key).
		Where("expires_at > ?", s.now().Unix()).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *SQL) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	entry := &models.CacheEntry{
		Key:       key,
		Value:     value,
		ExpiresAt: s.now().Add(ttl).Unix(),
	}

	q := s.db.NewInsert().Model(entry)
	if s.db.Dialect().Name() == dialect.MySQL {
		q = q.On("DUPLICATE KEY UPDATE").
			Set("value = VALUES(value)").
			Set("expires_at = VALUES(expires_at)")
	} else {
		q = q.On("CONFLICT (cache_key) DO UPDATE").
			Set("value = EXCLUDED.value").
			Set("expires_at = EXCLUDED.expires_at")
	}

	if _, err := q.Exec(ctx); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Purge deletes expired rows and returns how many were removed.
func (s *SQL) Purge(ctx context.Context) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*models.CacheEntry)(nil)).
		Where("expires_at <= ?", s.now().Unix()).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("cache purge: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes the entries for the given keys regardless of expiry.
func (s *SQL) Delete(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	res, err := s.db.NewDelete().
		Model((*models.CacheEntry)(nil)).
		Where("cache_key IN (?)", bun.In(keys)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("cache delete: %w", err)
	}
	return res.RowsAffected()
}
