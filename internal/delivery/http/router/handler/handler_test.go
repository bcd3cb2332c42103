package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/validator"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/errors"
	mockUC "accounts/internal/mocks/usecase"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerSuite struct {
	e      *echo.Echo
	userUC *mockUC.MockUserUsecase
	authUC *mockUC.MockAuthUsecase
}

func newHandlerSuite(t *testing.T) *handlerSuite {
	t.Helper()

	s := &handlerSuite{
		e:      echo.New(),
		userUC: mockUC.NewMockUserUsecase(t),
		authUC: mockUC.NewMockAuthUsecase(t),
	}
	s.e.Validator = validator.New()
	s.e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	users := NewUserHandler(s.userUC)
	auth := NewAuthHandler(s.authUC)
	s.e.POST("/api/users", users.CreateUser)
	s.e.GET("/api/users", users.ListUsers)
	s.e.GET("/api/users/:id", users.GetUser)
	s.e.DELETE("/api/users/:id", users.DeleteUser)
	s.e.POST("/api/login", auth.Login)
	s.e.GET("/health", HealthCheck)

	return s
}

func (s *handlerSuite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		s := newHandlerSuite(t)
		s.userUC.EXPECT().CreateUser(mock.Anything, &usecase.CreateUserInput{
			Name:     "Alice",
			Email:    "a@x.com",
			Password: "hunter22",
		}).Return(&entity.User{ID: 1, Name: "Alice", Email: "a@x.com", PasswordHash: "$2a$hash"}, nil)

		rec := s.do(jsonRequest(http.MethodPost, "/api/users", `{"name":"Alice","email":"a@x.com","password":"hunter22"}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":1,"name":"Alice","email":"a@x.com"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "hash")
	})

	t.Run("validation", func(t *testing.T) {
		for name, body := range map[string]string{
			"missing name":   `{"email":"a@x.com","password":"hunter22"}`,
			"bad email":      `{"name":"Alice","email":"nope","password":"hunter22"}`,
			"short password": `{"name":"Alice","email":"a@x.com","password":"abcd"}`,
			"long password":  `{"name":"Alice","email":"a@x.com","password":"` + strings.Repeat("p", 29) + `"}`,
			"wide password":  `{"name":"Alice","email":"a@x.com","password":"` + strings.Repeat("密", 28) + `"}`,
			"long name":      `{"name":"` + strings.Repeat("n", 101) + `","email":"a@x.com","password":"hunter22"}`,
			"malformed":      `{"name":`,
		} {
			t.Run(name, func(t *testing.T) {
				s := newHandlerSuite(t)
				rec := s.do(jsonRequest(http.MethodPost, "/api/users", body))

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
			})
		}
	})

	t.Run("conflict", func(t *testing.T) {
		s := newHandlerSuite(t)
		s.userUC.EXPECT().CreateUser(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

		rec := s.do(jsonRequest(http.MethodPost, "/api/users", `{"name":"Alice","email":"a@x.com","password":"hunter22"}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", errorCode(t, rec))
	})
}

func TestUserHandler_ListUsers(t *testing.T) {
	s := newHandlerSuite(t)
	s.userUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{
		{ID: 1, Name: "Alice", Email: "a@x.com"},
		{ID: 2, Name: "Bob", Email: "b@x.com"},
	}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Alice","email":"a@x.com"},{"id":2,"name":"Bob","email":"b@x.com"}]`, rec.Body.String())
}

func TestUserHandler_ListUsersEmpty(t *testing.T) {
	s := newHandlerSuite(t)
	s.userUC.EXPECT().ListUsers(mock.Anything).Return(nil, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s := newHandlerSuite(t)
		s.userUC.EXPECT().GetUser(mock.Anything, int64(7)).Return(&entity.User{ID: 7, Name: "Alice", Email: "a@x.com"}, nil)

		rec := s.do(httptest.NewRequest(http.MethodGet, "/api/users/7", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":7,"name":"Alice","email":"a@x.com"}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		s := newHandlerSuite(t)
		s.userUC.EXPECT().GetUser(mock.Anything, int64(9)).Return(nil, errors.WithStack(domainerrors.ErrUserNotFound))

		rec := s.do(httptest.NewRequest(http.MethodGet, "/api/users/9", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", errorCode(t, rec))
	})

	t.Run("bad id", func(t *testing.T) {
		for _, id := range []string{"abc", "0", "-3", "1.5", "99999999999999999999"} {
			s := newHandlerSuite(t)
			rec := s.do(httptest.NewRequest(http.MethodGet, "/api/users/"+id, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code, id)
			assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec), id)
		}
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		s := newHandlerSuite(t)
		s.userUC.EXPECT().DeleteUser(mock.Anything, int64(3)).Return(nil)

		rec := s.do(httptest.NewRequest(http.MethodDelete, "/api/users/3", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		s := newHandlerSuite(t)
		s.userUC.EXPECT().DeleteUser(mock.Anything, int64(3)).Return(domainerrors.ErrUserNotFound)

		rec := s.do(httptest.NewRequest(http.MethodDelete, "/api/users/3", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	output := &usecase.LoginOutput{AccessToken: "header.payload.sig", TokenType: "bearer"}

	t.Run("form", func(t *testing.T) {
		s := newHandlerSuite(t)
		s.authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "hunter22"}).Return(output, nil)

		form := url.Values{"username": {"a@x.com"}, "password": {"hunter22"}}
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := s.do(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
		assert.JSONEq(t, `{"access_token":"header.payload.sig","token_type":"bearer"}`, rec.Body.String())
	})

	t.Run("json", func(t *testing.T) {
		s := newHandlerSuite(t)
		s.authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "hunter22"}).Return(output, nil)

		rec := s.do(jsonRequest(http.MethodPost, "/api/login", `{"username":"a@x.com","password":"hunter22"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		s := newHandlerSuite(t)
		rec := s.do(jsonRequest(http.MethodPost, "/api/login", `{"username":"a@x.com"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		s := newHandlerSuite(t)
		s.authUC.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

		rec := s.do(jsonRequest(http.MethodPost, "/api/login", `{"username":"a@x.com","password":"wrong"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
		assert.NotContains(t, rec.Body.String(), "mismatch")
	})
}

func TestHealthCheck(t *testing.T) {
	s := newHandlerSuite(t)
	rec := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
