package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/techile/fieldportal/internal/interfaces/http/handlers"
	"github.com/techile/fieldportal/internal/interfaces/http/middleware"
	"github.com/techile/fieldportal/internal/shared/authorization"
)

// ClientRouteConfig holds dependencies for client account routes.
type ClientRouteConfig struct {
	ClientHandler  *handlers.ClientHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupClientRoutes configures client account management routes.
func SetupClientRoutes(engine *gin.Engine, cfg *ClientRouteConfig) {
	clients := engine.Group("/clients")
	clients.Use(cfg.AuthMiddleware.RequireAuth())
	{
		clients.GET("", authorization.RequireAdmin(), cfg.ClientHandler.ListClients)

		// Self-service endpoints come before /:id to avoid route conflicts.
		clients.GET("/me", cfg.ClientHandler.GetMyProfile)
		clients.PATCH("/me", cfg.ClientHandler.UpdateMyProfile)
		clients.POST("/me/validate", cfg.ClientHandler.ValidateMyProfile)

		clients.GET("/:id", authorization.RequireAdmin(), cfg.ClientHandler.GetClient)
		clients.PATCH("/:id", authorization.RequireAdmin(), cfg.ClientHandler.UpdateClient)
		clients.PATCH("/:id/status", authorization.RequireAdmin(), cfg.ClientHandler.UpdateClientStatus)
		clients.PATCH("/:id/cloud-quota", authorization.RequireAdmin(), cfg.ClientHandler.AdjustCloudQuota)
	}
}
