// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	MetricsHandler http.Handler `name:"metrics" optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
	metricsHandler http.Handler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
		metricsHandler: params.MetricsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(r.metricsHandler))
	}

	api := e.Group("/api")
	api.POST("/login", r.authHandler.Login)

	// Account creation is public; reading and deleting records requires a session.
	api.POST("/users", r.userHandler.CreateUser)
	api.POST("/users/", r.userHandler.CreateUser)

	users := api.Group("/users", r.authMiddleware.Authenticate)
	{
		users.GET("", r.userHandler.ListUsers)
		users.GET("/:id", r.userHandler.GetUser)
		users.DELETE("/:id", r.userHandler.DeleteUser)
	}
}
