package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alesthetic/booking-api/internal/api/metrics"
	"github.com/alesthetic/booking-api/internal/core/ports"
)

type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Token handles POST /api/auth/token.
//
// @Summary      Exchange credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Credentials"
// @Success      200   {object}  APIResponse
// @Failure      401   {object}  APIResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return respond(c, http.StatusOK, "", tokenResponse{Token: token})
}

// Refresh handles GET /api/auth/refresh. The subject comes from the bearer
// token validated by the auth middleware, not from the request body.
//
// @Summary      Issue a fresh token for the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  APIResponse
// @Failure      401  {object}  APIResponse
// @Router       /auth/refresh [get]
func (h *AuthHandler) Refresh(c echo.Context) error {
	username, _ := c.Get("username").(string)
	if username == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token subject")
	}

	token, err := h.service.Refresh(c.Request().Context(), username)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return respond(c, http.StatusOK, "", tokenResponse{Token: token})
}
