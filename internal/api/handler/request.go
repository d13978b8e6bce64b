package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the JSON payload into req and runs the declared
// schema over it. Binding into a typed struct also strips undeclared fields,
// so downstream code can trust the shape.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
