package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/policy"
	"github.com/invenco/inventory-system/internal/metrics"
)

// HeaderAPIKey carries the data-surface service credential.
const HeaderAPIKey = "X-API-Key"

// KeyResolver resolves a service credential to its user, or returns
// domain.ErrUserNotFound. Satisfied by ports.AuthRepository.
type KeyResolver interface {
	FindByAPIKey(ctx context.Context, apiKey string) (*domain.User, error)
}

// APIKey resolves the data-surface caller from the X-API-Key header. A
// request without the header proceeds as the anonymous caller and is denied
// downstream by default-deny policy; a key that resolves to no user is
// rejected outright as a bad credential.
func APIKey(resolver KeyResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(HeaderAPIKey)
			if key == "" {
				c.Set(ContextKeyCaller, policy.Anonymous())
				return next(c)
			}

			user, err := resolver.FindByAPIKey(c.Request().Context(), key)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("data").Inc()
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid api key")
				}
				return err
			}

			c.Set(ContextKeyCaller, policy.Caller{ID: user.ID, Role: user.Role})
			c.Set(ContextKeyUsername, user.Username)

			return next(c)
		}
	}
}
