package middleware

import (
	"tracker/config"

	"github.com/labstack/echo/v4"
)

// SecureHeadersMiddleware sets the static security response headers on every
// response, plus the analytics marker header when a write key is configured.
type SecureHeadersMiddleware struct {
	analyticsEnabled bool
}

// NewSecureHeadersMiddleware creates a new secure headers middleware
func NewSecureHeadersMiddleware(cfg *config.Config) *SecureHeadersMiddleware {
	return &SecureHeadersMiddleware{
		analyticsEnabled: cfg.Analytics.WriteKey != "",
	}
}

// Process sets the headers and calls the next handler.
func (m *SecureHeadersMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Response().Header()
		header.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		header.Set("X-Content-Type-Options", "nosniff")
		header.Set("Referrer-Policy", "strict-origin")
		header.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		if m.analyticsEnabled {
			header.Set("X-Analytics-Enabled", "1")
		}

		return next(c)
	}
}
