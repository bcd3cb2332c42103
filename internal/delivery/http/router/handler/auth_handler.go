package handler

import (
	"net/http"

	"accounts/internal/errors"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves the password login endpoint.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login exchanges username (the email) and password for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Tokens must not be cached by intermediaries.
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	})
}
