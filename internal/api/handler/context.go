package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/api/middleware"
	"github.com/invenco/inventory-system/internal/core/policy"
)

// CallerFrom extracts the caller identity injected by the Auth or APIKey
// middleware. A request that reached a protected handler without a caller in
// context means the middleware did not run; reject with 401 rather than
// proceeding as anyone.
func CallerFrom(c echo.Context) (policy.Caller, error) {
	caller, ok := c.Get(middleware.ContextKeyCaller).(policy.Caller)
	if !ok {
		return policy.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return caller, nil
}
