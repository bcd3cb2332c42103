package middleware

import (
	"strings"

	deliverycontext "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer"

// AuthMiddleware resolves the bearer token of protected requests to a user.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects the request with 401 unless it carries a valid bearer
// token whose subject still exists. The resolved user is available to the
// handler through deliverycontext.CurrentUser.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrUnauthenticated.WrapMessage("missing or malformed bearer token")
		}

		user, err := m.authUC.ResolveSession(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>" header.
// The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}

	return token, true
}
