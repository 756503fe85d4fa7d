package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/policy"
	"github.com/invenco/inventory-system/internal/metrics"
)

// Context keys set by the caller-resolution middlewares. Handlers read the
// caller back through handler.CallerFrom.
const (
	ContextKeyCaller   = "caller"
	ContextKeyUsername = "username"
)

// RevocationChecker reports when a user's tokens were last revoked. The zero
// time means never.
type RevocationChecker interface {
	RevokedSince(ctx context.Context, userID string) (time.Time, error)
}

// Auth resolves the session-surface caller from a JWT bearer token. It fails
// closed: any missing, malformed, expired or revoked token yields 401, never
// a privileged identity.
func Auth(jwtSecret string, revocations RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("session").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("session").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthFailuresTotal.WithLabelValues("session").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(string)
			roleName, _ := claims["role"].(string)
			if sub == "" {
				metrics.AuthFailuresTotal.WithLabelValues("session").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			if revocations != nil {
				if err := checkRevoked(c.Request().Context(), revocations, sub, claims); err != nil {
					metrics.AuthFailuresTotal.WithLabelValues("session").Inc()
					return err
				}
			}

			c.Set(ContextKeyCaller, policy.Caller{ID: sub, Role: domain.ParseRole(roleName)})
			c.Set(ContextKeyUsername, claims["username"])

			return next(c)
		}
	}
}

// checkRevoked rejects tokens issued before the user's last password change.
// When the revocation store is unreachable the token is rejected as well:
// a caller with a possibly-stale token must not pass.
func checkRevoked(ctx context.Context, revocations RevocationChecker, userID string, claims jwt.MapClaims) error {
	revokedAt, err := revocations.RevokedSince(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "could not verify token")
	}
	if revokedAt.IsZero() {
		return nil
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "token missing issue time")
	}
	if time.Unix(int64(iat), 0).Before(revokedAt) {
		return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
	}
	return nil
}
