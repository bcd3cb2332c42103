package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"accounts/config"
	deliverycontext "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ctxID string
	err := m.Process(func(c echo.Context) error {
		ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

		return nil
	})(c)
	require.NoError(t, err)

	headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.Len(t, headerID, 36)
	assert.Equal(t, headerID, ctxID)
	assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
	assert.Contains(t, buf.String(), `"request_id":"`+headerID+`"`)
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	m := NewRequestIDMiddleware(slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()

	require.NoError(t, m.Process(func(echo.Context) error { return nil })(e.NewContext(req, rec)))
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
	rec = httptest.NewRecorder()

	require.NoError(t, m.Process(func(echo.Context) error { return nil })(e.NewContext(req, rec)))
	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestLoggerMiddleware(t *testing.T) {
	newCfg := func(debug bool) *config.Config {
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		return cfg
	}

	run := func(debug bool, path string, handler echo.HandlerFunc) string {
		var buf bytes.Buffer
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), newCfg(debug))

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer secret-token")
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath(path)
		_ = m.Handle(handler)(c)

		return buf.String()
	}

	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	assert.Empty(t, run(false, "/api/users", ok))
	assert.Empty(t, run(true, "/health", ok))

	out := run(true, "/api/users", ok)
	assert.Contains(t, out, `"status":204`)
	assert.Contains(t, out, `"level":"INFO"`)
	assert.NotContains(t, out, "secret-token")

	out = run(true, "/api/users", func(echo.Context) error { return domainerrors.ErrUserNotFound })
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"level":"WARN"`)

	out = run(true, "/api/users", func(echo.Context) error { return assert.AnError })
	assert.Contains(t, out, `"status":500`)
	assert.Contains(t, out, `"level":"ERROR"`)
}
