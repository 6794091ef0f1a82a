package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/techile/fieldportal/internal/interfaces/http/handlers"
	"github.com/techile/fieldportal/internal/interfaces/http/middleware"
	"github.com/techile/fieldportal/internal/shared/authorization"
)

// WebsiteRouteConfig holds dependencies for website project routes.
type WebsiteRouteConfig struct {
	WebsiteHandler *handlers.WebsiteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupWebsiteRoutes configures website project routes.
func SetupWebsiteRoutes(engine *gin.Engine, cfg *WebsiteRouteConfig) {
	websites := engine.Group("/websites")
	websites.Use(cfg.AuthMiddleware.RequireAuth())
	{
		websites.POST("", cfg.WebsiteHandler.CreateWebsite)
		websites.GET("", cfg.WebsiteHandler.ListWebsites)

		websites.GET("/:id", cfg.WebsiteHandler.GetWebsite)
		websites.PUT("/:id/content", cfg.WebsiteHandler.UpdateContent)
		websites.PATCH("/:id/pages/:slug", cfg.WebsiteHandler.PublishPage)
		websites.PATCH("/:id/status", authorization.RequireAdmin(), cfg.WebsiteHandler.ChangeStatus)
	}
}
