package middleware

import (
	"log/slog"
	"time"

	"mazza/config"
	"mazza/internal/delivery/http/response"
	"mazza/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const defaultRateLimitWindow = time.Minute

// RateLimitMiddleware throttles search traffic per client IP using a
// keyed counter store. Store failures let the request through; a broken
// limiter must not take the search endpoint down with it.
type RateLimitMiddleware struct {
	store   service.KeyedStore
	logger  *slog.Logger
	enabled bool
	limit   int64
	window  time.Duration
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(store service.KeyedStore, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		store:  store,
		logger: logger,
		window: defaultRateLimitWindow,
	}

	if cfg.RateLimit != nil {
		m.enabled = cfg.RateLimit.Enabled
		m.limit = int64(cfg.RateLimit.Limit)
		if cfg.RateLimit.Window > 0 {
			m.window = cfg.RateLimit.Window
		}
	}

	return m
}

// Limit enforces the configured per-IP request budget for the wrapped routes.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled || m.limit <= 0 {
			return next(c)
		}

		key := c.RealIP() + ":" + c.Path()
		count, err := m.store.Increment(c.Request().Context(), key, m.window)
		if err != nil {
			m.logger.Warn("Rate limit store unavailable, letting request through",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return next(c)
		}

		if count > m.limit {
			return response.TooManyRequests(c, "Too many search requests, slow down")
		}

		return next(c)
	}
}
