package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"accounts/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	assert.Len(t, generated, 36)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.Default().With("request_id", "x")

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestCurrentUser(t *testing.T) {
	c := newEchoContext()

	_, ok := CurrentUser(c)
	assert.False(t, ok)

	user := &entity.User{ID: 7, Email: "a@x.com"}
	SetCurrentUser(c, user)

	got, ok := CurrentUser(c)
	require.True(t, ok)
	assert.Same(t, user, got)

	fromCtx, ok := CurrentUserFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Same(t, user, fromCtx)

	_, ok = CurrentUserFromContext(context.Background())
	assert.False(t, ok)
}
