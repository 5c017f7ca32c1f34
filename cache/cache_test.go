package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/padraicbc/sherdogapi/db"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestKey(t *testing.T) {
	require.Equal(t, "promotion_2", Key("promotion", 2))
	require.Equal(t, "fighter_461", Key("fighter", 461))
}

func newSQL(t *testing.T) *SQL {
	bdb, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bdb.Close() })
	require.NoError(t, db.CreateTables(context.Background(), bdb))
	return NewSQL(bdb)
}

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T, c *clock) Store{
		"memory": func(t *testing.T, c *clock) Store {
			m := NewMemory(16)
			m.now = c.now
			return m
		},
		"sql": func(t *testing.T, c *clock) Store {
			s := newSQL(t)
			s.now = c.now
			return s
		},
	}

	for name, build := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			c := &clock{t: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
			store := build(t, c)

			_, ok, err := store.Get(ctx, "event_1")
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, store.Set(ctx, "event_1", []byte(`{"name":"a"}`), TTL))
			val, ok, err := store.Get(ctx, "event_1")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, `{"name":"a"}`, string(val))

			require.NoError(t, store.Set(ctx, "event_1", []byte(`{"name":"b"}`), TTL))
			val, ok, err = store.Get(ctx, "event_1")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, `{"name":"b"}`, string(val))

			c.t = c.t.Add(TTL - time.Second)
			_, ok, err = store.Get(ctx, "event_1")
			require.NoError(t, err)
			require.True(t, ok)

			c.t = c.t.Add(time.Second)
			_, ok, err = store.Get(ctx, "event_1")
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestMemoryCopiesValue(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(4)

	buf := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", buf, TTL))
	buf[0] = 'x'

	val, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc", string(val))
}

func TestMemoryEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(2)

	require.NoError(t, m.Set(ctx, "a", []byte("1"), TTL))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), TTL))
	require.NoError(t, m.Set(ctx, "c", []byte("3"), TTL))

	_, ok, _ := m.Get(ctx, "a")
	require.False(t, ok)
	require.Equal(t, 2, m.Len())
}

func TestSQLPurgeAndDelete(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := newSQL(t)
	s.now = c.now

	require.NoError(t, s.Set(ctx, "fighter_1", []byte("1"), time.Hour))
	require.NoError(t, s.Set(ctx, "fighter_2", []byte("2"), TTL))
	require.NoError(t, s.Set(ctx, "fighter_3", []byte("3"), TTL))

	c.t = c.t.Add(2 * time.Hour)
	n, err := s.Purge(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = s.Delete(ctx, "fighter_2", "fighter_9")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	_, ok, err := s.Get(ctx, "fighter_3")
	require.NoError(t, err)
	require.True(t, ok)
}
