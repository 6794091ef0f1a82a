package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/techile/fieldportal/internal/interfaces/http/handlers"
	"github.com/techile/fieldportal/internal/interfaces/http/middleware"
	"github.com/techile/fieldportal/internal/shared/authorization"
)

// InvoiceRouteConfig holds dependencies for invoice routes.
type InvoiceRouteConfig struct {
	InvoiceHandler *handlers.InvoiceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupInvoiceRoutes configures invoice lifecycle routes.
func SetupInvoiceRoutes(engine *gin.Engine, cfg *InvoiceRouteConfig) {
	invoices := engine.Group("/invoices")
	invoices.Use(cfg.AuthMiddleware.RequireAuth())
	{
		invoices.POST("", authorization.RequireAdmin(), cfg.InvoiceHandler.CreateInvoice)
		invoices.GET("", cfg.InvoiceHandler.ListInvoices)
		invoices.POST("/process-overdue", authorization.RequireAdmin(), cfg.InvoiceHandler.ProcessOverdue)

		invoices.GET("/:id", cfg.InvoiceHandler.GetInvoice)
		invoices.POST("/:id/send", authorization.RequireAdmin(), cfg.InvoiceHandler.SendInvoice)
		invoices.POST("/:id/pay", authorization.RequireAdmin(), cfg.InvoiceHandler.MarkPaid)
		invoices.POST("/:id/cancel", authorization.RequireAdmin(), cfg.InvoiceHandler.CancelInvoice)
	}
}
