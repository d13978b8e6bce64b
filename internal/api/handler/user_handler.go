package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinehub/rental-service/internal/api/middleware"
	"github.com/cinehub/rental-service/internal/core/ports"
)

// UserHandler handles registration and identity lookup.
type UserHandler struct {
	auth ports.AuthService
}

func NewUserHandler(auth ports.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=255"`
	Email    string `json:"email"    validate:"required,email,min=5,max=255"`
	Password string `json:"password" validate:"required,min=5,max=1024"`
}

// registerResponse deliberately carries only the public fields; the password
// hash never leaves the service.
type registerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register creates a user account and returns the issued token in the
// x-auth-token response header.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, token, err := h.auth.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Response().Header().Set(middleware.TokenHeader, token)
	return c.JSON(http.StatusOK, registerResponse{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
	})
}

// Me returns the authenticated user, without the password field.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserID).(string)

	user, err := h.auth.Me(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}
