package http

import (
	"github.com/techile/fieldportal/internal/interfaces/http/handlers"
	"github.com/techile/fieldportal/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	clientHandler       *handlers.ClientHandler
	ticketHandler       *handlers.TicketHandler
	invoiceHandler      *handlers.InvoiceHandler
	subscriptionHandler *handlers.SubscriptionHandler
	websiteHandler      *handlers.WebsiteHandler
	notificationHandler *handlers.NotificationHandler
	pricingHandler      *handlers.PricingHandler
	dashboardHandler    *handlers.DashboardHandler
}

func (c *Container) initHandlers() {
	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(
			c.ucs.login, c.ucs.changePassword, c.ucs.registerClient, c.cfg.Auth.Cookie, c.log,
		),
		clientHandler: handlers.NewClientHandler(
			c.ucs.listClients, c.ucs.getClient, c.ucs.updateProfile,
			c.ucs.validateProfile, c.ucs.suspendClient, c.ucs.adjustQuota, c.log,
		),
		ticketHandler: handlers.NewTicketHandler(
			c.ucs.createTicket, c.ucs.listTickets, c.ucs.getTicket,
			c.ucs.scheduleTicket, c.ucs.assignTicket, c.ucs.changeTicketStatus,
			c.ucs.cancelTicket, c.ucs.startIntervention, c.ucs.updateWorkflowStep,
			c.ucs.completeIntervent, c.ucs.addNote, c.ucs.getClient, c.log,
		),
		invoiceHandler: handlers.NewInvoiceHandler(
			c.ucs.createInvoice, c.ucs.invoiceFromTicket, c.ucs.getInvoice,
			c.ucs.listInvoices, c.ucs.sendInvoice, c.ucs.markInvoicePaid,
			c.ucs.cancelInvoice, c.ucs.processOverdue, c.ucs.getClient, c.log,
		),
		subscriptionHandler: handlers.NewSubscriptionHandler(
			c.ucs.getSubscription, c.ucs.changePlan, c.ucs.cancelSubscription, c.ucs.getClient, c.log,
		),
		websiteHandler: handlers.NewWebsiteHandler(
			c.ucs.createWebsite, c.ucs.getWebsite, c.ucs.listWebsites,
			c.ucs.updateWebsiteContent, c.ucs.publishPage, c.ucs.changeWebsiteStatus,
			c.ucs.getClient, c.log,
		),
		notificationHandler: handlers.NewNotificationHandler(
			c.ucs.listNotifications, c.ucs.markRead, c.ucs.markAllRead, c.log,
		),
		pricingHandler: handlers.NewPricingHandler(
			c.ucs.getRates, c.ucs.updateRates, c.ucs.generateQuote, c.log,
		),
		dashboardHandler: handlers.NewDashboardHandler(c.ucs.dashboardStats, c.log),
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
}
