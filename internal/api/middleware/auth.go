package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenHeader is the fixed request header carrying the signed token.
const TokenHeader = "x-auth-token"

// Context keys set by Auth for downstream guards and handlers.
const (
	CtxUserID  = "user_id"
	CtxIsAdmin = "is_admin"
)

// Auth validates the token from the x-auth-token header and injects the
// decoded claims into the request context. Missing or invalid tokens are
// rejected with 401 before the handler runs.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied, no token provided")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, _ := claims["sub"].(string)
			isAdmin, _ := claims["is_admin"].(bool)
			c.Set(CtxUserID, userID)
			c.Set(CtxIsAdmin, isAdmin)

			return next(c)
		}
	}
}
