package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/padraicbc/sherdogapi/cache"
	"github.com/padraicbc/sherdogapi/config"
	"github.com/padraicbc/sherdogapi/db"
	"github.com/padraicbc/sherdogapi/handlers"
	applog "github.com/padraicbc/sherdogapi/logger"
	"github.com/padraicbc/sherdogapi/report"
	"github.com/padraicbc/sherdogapi/sherdog"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug, "server")
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	store := cache.Store(cache.NewMemory(cfg.CacheSize))
	if cfg.UsesSQL() {
		bdb, err := db.Setup(context.Background(), cfg)
		if err != nil {
			logger.Fatal("cache database setup failed", zap.Error(err))
		}
		defer bdb.Close()
		if err := db.CreateTables(context.Background(), bdb); err != nil {
			logger.Fatal("create tables failed", zap.Error(err))
		}
		store = cache.NewSQL(bdb)
	}
	logger.Info("cache ready", zap.String("driver", cfg.CacheDriver))

	var reporter report.Reporter = report.NewLog(logger)
	if cfg.SentryDSN != "" {
		s, err := report.NewSentry(report.SentryOptions{
			DSN:         cfg.SentryDSN,
			Environment: cfg.SentryEnvironment,
		})
		if err != nil {
			logger.Fatal("sentry setup failed", zap.Error(err))
		}
		defer s.Flush(2 * time.Second)
		reporter = s
	}

	fetcher := sherdog.NewHTTPFetcher(sherdog.HTTPFetcherOptions{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.FetchTimeout,
	})
	scraper := sherdog.New(fetcher, sherdog.Options{BaseURL: cfg.BaseURL})

	h := handlers.New(scraper, store, reporter, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))

	h.Register(e)

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	if len(cfg.TLSDomains) == 0 {
		logger.Fatal("TLS_DOMAINS must be set outside debug mode")
	}
	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * cfg.FetchTimeout,
		IdleTimeout:  15 * time.Second,
	}

	logger.Info("starting server", zap.String("mode", "tls"), zap.Strings("domains", cfg.TLSDomains))
	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
