package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Admin gates a route on the admin claim. It must run after Auth; without a
// decoded claim the request is forbidden, not unauthenticated, because Auth
// has already vouched for the token by the time this runs.
func Admin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, _ := c.Get(CtxIsAdmin).(bool)
			if !isAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}
