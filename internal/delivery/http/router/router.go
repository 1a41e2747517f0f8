// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"panel/internal/delivery/http/middleware"
	"panel/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all the handlers and middleware, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	UserHandler    *handler.UserHandler
	ExportHandler  *handler.ExportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	userHandler    *handler.UserHandler
	exportHandler  *handler.ExportHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		userHandler:    params.UserHandler,
		exportHandler:  params.ExportHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Anonymous credential-lifecycle routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Own-profile routes. Change-password is registered before the
	// password-age gate: it is the one operation an expired admin may run.
	meGroup := e.Group("/me", r.authMiddleware.Authenticate)
	meGroup.POST("/change-password", r.authHandler.ChangePassword)

	meGated := meGroup.Group("", r.authMiddleware.RequirePasswordFresh)
	{
		meGated.GET("", r.profileHandler.GetProfile)
		meGated.PATCH("", r.profileHandler.UpdateProfile)
		meGated.POST("/avatar/upload-url", r.profileHandler.AvatarUploadURL)
		meGated.GET("/avatar", r.profileHandler.GetAvatar)
	}

	// Managed-user administration
	userGroup := e.Group("/users", r.authMiddleware.Authenticate, r.authMiddleware.RequirePasswordFresh)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.PATCH("/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	// Exports
	exportGroup := e.Group("/exports", r.authMiddleware.Authenticate, r.authMiddleware.RequirePasswordFresh)
	{
		exportGroup.POST("/users", r.exportHandler.ExportUsers)
	}
}
