package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/techile/fieldportal/internal/interfaces/http/handlers"
	"github.com/techile/fieldportal/internal/interfaces/http/middleware"
	"github.com/techile/fieldportal/internal/shared/authorization"
)

// DashboardRouteConfig holds dependencies for the admin dashboard routes.
type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupDashboardRoutes configures the admin dashboard routes.
func SetupDashboardRoutes(engine *gin.Engine, cfg *DashboardRouteConfig) {
	dashboard := engine.Group("/dashboard")
	dashboard.Use(cfg.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("/stats", authorization.RequireAdmin(), cfg.DashboardHandler.GetStats)
	}
}
