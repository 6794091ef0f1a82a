package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techile/fieldportal/internal/interfaces/http/middleware"
	"github.com/techile/fieldportal/internal/interfaces/http/routes"
)

// SetupRoutes installs the middleware chain and every route group.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupClientRoutes(c.engine, &routes.ClientRouteConfig{
		ClientHandler:  c.hdlrs.clientHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:  c.hdlrs.ticketHandler,
		InvoiceHandler: c.hdlrs.invoiceHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupInvoiceRoutes(c.engine, &routes.InvoiceRouteConfig{
		InvoiceHandler: c.hdlrs.invoiceHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupSubscriptionRoutes(c.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: c.hdlrs.subscriptionHandler,
		AuthMiddleware:      c.authMiddleware,
	})

	routes.SetupWebsiteRoutes(c.engine, &routes.WebsiteRouteConfig{
		WebsiteHandler: c.hdlrs.websiteHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupNotificationRoutes(c.engine, &routes.NotificationRouteConfig{
		NotificationHandler: c.hdlrs.notificationHandler,
		AuthMiddleware:      c.authMiddleware,
	})

	routes.SetupPricingRoutes(c.engine, &routes.PricingRouteConfig{
		PricingHandler: c.hdlrs.pricingHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupDashboardRoutes(c.engine, &routes.DashboardRouteConfig{
		DashboardHandler: c.hdlrs.dashboardHandler,
		AuthMiddleware:   c.authMiddleware,
	})
}

// GetEngine returns the gin engine, mainly for tests.
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}
