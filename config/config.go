// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cache drivers understood by CACHE_DRIVER.
const (
	CacheMemory   = "memory"
	CachePostgres = "postgres"
	CacheMySQL    = "mysql"
	CacheSQLite   = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	// Scraping
	BaseURL      string
	FetchTimeout time.Duration
	UserAgent    string

	// Cache – memory, postgres, mysql or sqlite.
	CacheDriver string
	CacheSize   int
	SQLitePath  string

	// PostgreSQL – either set DatabaseURL directly, or the individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// MySQL – used when CACHE_DRIVER=mysql.
	MySQLDSN string

	// Error reporting. Empty DSN means errors are only logged.
	SentryDSN         string
	SentryEnvironment string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	cfg, err := load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func load() (*Config, error) {
	v := newViper()

	// Defaults
	v.SetDefault("SHERDOG_BASE_URL", "http://www.sherdog.com")
	v.SetDefault("FETCH_TIMEOUT", "30s")
	v.SetDefault("USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	v.SetDefault("CACHE_DRIVER", CacheMemory)
	v.SetDefault("CACHE_SIZE", 4096)
	v.SetDefault("SQLITE_PATH", "cache.db")
	v.SetDefault("DB_USER", "sherdog")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "sherdog")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SENTRY_ENVIRONMENT", "production")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		BaseURL:           strings.TrimRight(v.GetString("SHERDOG_BASE_URL"), "/"),
		FetchTimeout:      v.GetDuration("FETCH_TIMEOUT"),
		UserAgent:         v.GetString("USER_AGENT"),
		CacheDriver:       strings.ToLower(strings.TrimSpace(v.GetString("CACHE_DRIVER"))),
		CacheSize:         v.GetInt("CACHE_SIZE"),
		SQLitePath:        v.GetString("SQLITE_PATH"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		DBUser:            v.GetString("DB_USER"),
		DBPass:            v.GetString("DB_PASS"),
		DBHost:            v.GetString("DB_HOST"),
		DBPort:            v.GetString("DB_PORT"),
		DBName:            v.GetString("DB_NAME"),
		DBSSLMode:         v.GetString("DB_SSLMODE"),
		MySQLDSN:          v.GetString("MYSQL_DSN"),
		SentryDSN:         v.GetString("SENTRY_DSN"),
		SentryEnvironment: v.GetString("SENTRY_ENVIRONMENT"),
		Debug:             v.GetBool("DEBUG"),
		Port:              v.GetString("PORT"),
		TLSDomains:        splitTrimmed(v.GetString("TLS_DOMAINS")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// UsesSQL reports whether the cache lives in a database.
func (c *Config) UsesSQL() bool {
	return c.CacheDriver != CacheMemory
}

func (c *Config) validate() error {
	switch c.CacheDriver {
	case CacheMemory:
		if c.CacheSize <= 0 {
			return fmt.Errorf("config: CACHE_SIZE must be positive, got %d", c.CacheSize)
		}
	case CachePostgres:
		if c.DatabaseURL == "" && c.DBPass == "" {
			return fmt.Errorf("config: DATABASE_URL or DB_PASS must be set for the postgres cache")
		}
	case CacheMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("config: MYSQL_DSN must be set for the mysql cache")
		}
	case CacheSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("config: SQLITE_PATH must be set for the sqlite cache")
		}
	default:
		return fmt.Errorf("config: unknown CACHE_DRIVER %q", c.CacheDriver)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("config: FETCH_TIMEOUT must be positive")
	}
	return nil
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
