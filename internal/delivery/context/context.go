// Package context carries request-scoped values (request id, logger, current user)
// between the HTTP layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyCurrentUser is the key for the user resolved from the bearer token.
	KeyCurrentUser ContextKey = "current_user"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored on c, or a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when none is set.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetCurrentUser stores user on both the echo context and the request context.
// The value lives only as long as the request.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyCurrentUser), user)
	req := c.Request()
	c.SetRequest(req.WithContext(context.WithValue(req.Context(), KeyCurrentUser, user)))
}

// CurrentUser returns the authenticated user of the request, if any.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyCurrentUser)).(*entity.User)

	return user, ok && user != nil
}

// CurrentUserFromContext is CurrentUser for a plain context.Context.
func CurrentUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(KeyCurrentUser).(*entity.User)

	return user, ok && user != nil
}
