package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/techile/fieldportal/internal/interfaces/http/handlers"
	"github.com/techile/fieldportal/internal/interfaces/http/middleware"
	"github.com/techile/fieldportal/internal/shared/authorization"
)

// TicketRouteConfig holds dependencies for ticket and intervention routes.
type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	InvoiceHandler *handlers.InvoiceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket lifecycle and intervention routes.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.POST("/:id/schedule", authorization.RequireAdmin(), cfg.TicketHandler.ScheduleTicket)
		tickets.POST("/:id/assign", authorization.RequireAdmin(), cfg.TicketHandler.AssignTicket)
		tickets.PATCH("/:id/status", authorization.RequireTechnician(), cfg.TicketHandler.ChangeTicketStatus)
		tickets.POST("/:id/cancel", cfg.TicketHandler.CancelTicket)

		tickets.POST("/:id/intervention/start", authorization.RequireTechnician(), cfg.TicketHandler.StartIntervention)
		tickets.PATCH("/:id/intervention/steps/:step_id", authorization.RequireTechnician(), cfg.TicketHandler.UpdateWorkflowStep)
		tickets.POST("/:id/intervention/complete", authorization.RequireTechnician(), cfg.TicketHandler.CompleteIntervention)

		tickets.POST("/:id/notes", authorization.RequireTechnician(), cfg.TicketHandler.AddNote)
		tickets.POST("/:id/invoice", authorization.RequireAdmin(), cfg.InvoiceHandler.CreateFromTicket)
	}
}
