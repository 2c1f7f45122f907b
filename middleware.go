package siteconfig

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ContextKey is the echo.Context key Middleware stores the configuration under.
const ContextKey = "siteconfig"

// Middleware pins the configuration current at the start of a request into
// the echo.Context, so every template rendered for that request reads the
// same value even if a reload happens mid-request.
func Middleware(h *Holder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cfg := h.Load()
			if cfg == nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "site configuration not loaded")
			}
			c.Set(ContextKey, cfg)
			return next(c)
		}
	}
}

// FromContext returns the configuration pinned by Middleware, or nil.
func FromContext(c echo.Context) *Config {
	cfg, _ := c.Get(ContextKey).(*Config)
	return cfg
}
