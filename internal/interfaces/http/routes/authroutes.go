package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/techile/fieldportal/internal/interfaces/http/handlers"
	"github.com/techile/fieldportal/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures login, registration and password routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/logout", cfg.AuthHandler.Logout)

		auth.PUT("/password", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ChangePassword)
	}
}
