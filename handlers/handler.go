package handlers

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/sherdogapi/cache"
	"github.com/padraicbc/sherdogapi/models"
	"github.com/padraicbc/sherdogapi/report"
)

// Scraper builds records from the live site.
type Scraper interface {
	Promotion(ctx context.Context, id int) (*models.Promotion, error)
	Event(ctx context.Context, id int) (*models.Event, error)
	Fighter(ctx context.Context, id int) (*models.Fighter, error)
}

type builder func(ctx context.Context, id int) (interface{}, error)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	builders map[string]builder
	cache    cache.Store
	reporter report.Reporter
	logger   *zap.Logger
}

// New creates a Handler that scrapes with s, caches in store and reports
// unexpected failures to reporter.
func New(s Scraper, store cache.Store, reporter report.Reporter, logger *zap.Logger) *Handler {
	return &Handler{
		builders: map[string]builder{
			"promotion": func(ctx context.Context, id int) (interface{}, error) { return s.Promotion(ctx, id) },
			"event":     func(ctx context.Context, id int) (interface{}, error) { return s.Event(ctx, id) },
			"fighter":   func(ctx context.Context, id int) (interface{}, error) { return s.Fighter(ctx, id) },
		},
		cache:    store,
		reporter: reporter,
		logger:   logger,
	}
}

// Register installs the error handler and routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.HTTPErrorHandler = h.HTTPError
	e.GET("/:type/:id", h.Scrape)
}
