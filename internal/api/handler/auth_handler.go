package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vallespasiegos/catalog-system/internal/api/metrics"
	"github.com/vallespasiegos/catalog-system/internal/core/domain"
	"github.com/vallespasiegos/catalog-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=4"`
	// Role is accepted but ignored: registration always yields "usuario"
	// and admin accounts are promoted out-of-band.
	Role string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string    `json:"token"`
	User  *userView `json:"user"`
}

type userView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func toUserView(u *domain.User) *userView {
	return &userView{ID: u.ID, Username: u.Username, Role: u.Role}
}

// Register creates a new user account and returns a signed token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Message})
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "user already exists"})
		}
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: toUserView(result.User)})
}

// Login authenticates a user and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Message})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: toUserView(result.User)})
}
