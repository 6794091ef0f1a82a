package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/techile/fieldportal/internal/interfaces/http/handlers"
	"github.com/techile/fieldportal/internal/interfaces/http/middleware"
	"github.com/techile/fieldportal/internal/shared/authorization"
)

// PricingRouteConfig holds dependencies for pricing and quote routes.
type PricingRouteConfig struct {
	PricingHandler *handlers.PricingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPricingRoutes configures rate table and quote routes.
// Rates and quotes are public so prospects can price services before
// creating an account.
func SetupPricingRoutes(engine *gin.Engine, cfg *PricingRouteConfig) {
	pricing := engine.Group("/pricing")
	{
		pricing.GET("/rates", cfg.PricingHandler.GetRates)
		pricing.POST("/quote", cfg.PricingHandler.GenerateQuote)

		pricing.PUT("/rates", cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin(), cfg.PricingHandler.UpdateRates)
	}
}
