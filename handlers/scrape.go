package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/sherdogapi/cache"
	"github.com/padraicbc/sherdogapi/sherdog"
)

var decimalID = regexp.MustCompile(`^[0-9]+$`)

// Scrape serves GET /:type/:id from the cache, scraping the record on a miss.
func (h *Handler) Scrape(c echo.Context) error {
	objectType := c.Param("type")
	build, ok := h.builders[objectType]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("unknown object type %q", objectType))
	}

	rawID := c.Param("id")
	if !decimalID.MatchString(rawID) {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("invalid %s id %q", objectType, rawID))
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("invalid %s id %q", objectType, rawID))
	}

	payload, err := h.scraped(c.Request().Context(), objectType, id, build)
	if errors.Is(err, sherdog.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("%s %d not found", objectType, id))
	}
	if err != nil {
		return err
	}

	return c.JSONBlob(http.StatusOK, payload)
}

// scraped returns the serialized record from the cache, or builds and caches it.
func (h *Handler) scraped(ctx context.Context, objectType string, id int, build builder) ([]byte, error) {
	key := cache.Key(objectType, id)

	cached, hit, err := h.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if hit {
		h.logger.Debug("cache hit", zap.String("key", key))
		return cached, nil
	}

	record, err := build(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("scraping %s: %w", key, err)
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", key, err)
	}

	if err := h.cache.Set(ctx, key, payload, cache.TTL); err != nil {
		h.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return payload, nil
}
