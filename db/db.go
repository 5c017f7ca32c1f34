package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	_ "modernc.org/sqlite"

	"github.com/padraicbc/sherdogapi/config"
	"github.com/padraicbc/sherdogapi/models"
)

// Setup opens the database backing the SQL cache for the configured driver.
func Setup(ctx context.Context, cfg *config.Config) (*bun.DB, error) {
	var db *bun.DB
	switch cfg.CacheDriver {
	case config.CachePostgres:
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
		db = bun.NewDB(sqldb, pgdialect.New())
	case config.CacheMySQL:
		sqldb, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		db = bun.NewDB(sqldb, mysqldialect.New())
	case config.CacheSQLite:
		var err error
		if db, err = OpenSQLite(cfg.SQLitePath); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("cache driver %q has no database", cfg.CacheDriver)
	}

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to %s: %w", cfg.CacheDriver, err)
	}

	return db, nil
}

// OpenSQLite opens a SQLite database file, or an in-memory one for ":memory:".
func OpenSQLite(path string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	sqldb.SetMaxOpenConns(1)
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// mysqlCacheEntry maps cache_entries for MySQL, where a plain BLOB stops at 64KiB.
type mysqlCacheEntry struct {
	bun.BaseModel `bun:"table:cache_entries,alias:ce"`

	Key       string `bun:"cache_key,pk"`
	Value     []byte `bun:"value,type:LONGBLOB,notnull"`
	ExpiresAt int64  `bun:"expires_at,notnull"`
}

func cacheTableModel(db *bun.DB) interface{} {
	if db.Dialect().Name() == dialect.MySQL {
		return (*mysqlCacheEntry)(nil)
	}
	return (*models.CacheEntry)(nil)
}

// CreateTables creates the cache tables if they don't exist.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		cacheTableModel(db),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	// MySQL has no CREATE INDEX IF NOT EXISTS. Tables created with a BLOB value
	// column are widened in place.
	if db.Dialect().Name() == dialect.MySQL {
		_, err := db.NewRaw("ALTER TABLE ? MODIFY ? LONGBLOB NOT NULL",
			bun.Ident("cache_entries"), bun.Ident("value")).Exec(ctx)
		if err != nil {
			return fmt.Errorf("widening cache value column: %w", err)
		}
		return nil
	}
	_, err := db.NewCreateIndex().
		Model((*models.CacheEntry)(nil)).
		Index("cache_entries_expires_at_idx").
		IfNotExists().
		Column("expires_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("creating expiry index: %w", err)
	}

	return nil
}
