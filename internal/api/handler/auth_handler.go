package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinehub/rental-service/internal/api/metrics"
	"github.com/cinehub/rental-service/internal/core/domain"
	"github.com/cinehub/rental-service/internal/core/ports"
)

// AuthHandler handles credential verification.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email,min=5,max=255"`
	Password string `json:"password" validate:"required,min=5,max=1024"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login verifies credentials and returns a signed token.
//
// @Summary      Authenticate
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrTooManyAttempts) {
			metrics.AuthFailuresTotal.Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
