package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/techile/fieldportal/internal/interfaces/http/handlers"
	"github.com/techile/fieldportal/internal/interfaces/http/middleware"
	"github.com/techile/fieldportal/internal/shared/authorization"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupSubscriptionRoutes configures maintenance plan routes.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	subs := engine.Group("/subscriptions")
	subs.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subs.GET("/me", cfg.SubscriptionHandler.GetMySubscription)
		subs.PATCH("/me/plan", cfg.SubscriptionHandler.ChangeMyPlan)
		subs.POST("/me/cancel", cfg.SubscriptionHandler.CancelMySubscription)

		subs.GET("/clients/:id", authorization.RequireAdmin(), cfg.SubscriptionHandler.GetClientSubscription)
		subs.PATCH("/clients/:id/plan", authorization.RequireAdmin(), cfg.SubscriptionHandler.ChangeClientPlan)
	}
}
