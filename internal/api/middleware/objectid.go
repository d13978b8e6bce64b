package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectID rejects requests whose :id path parameter is not a well-formed
// store identifier, before any repository access happens.
func ObjectID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := primitive.ObjectIDFromHex(c.Param("id")); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "id parameter does not have the right format")
			}
			return next(c)
		}
	}
}
