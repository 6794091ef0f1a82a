package http

import (
	authUC "github.com/techile/fieldportal/internal/application/auth/usecases"
	clientUC "github.com/techile/fieldportal/internal/application/client/usecases"
	invoiceUC "github.com/techile/fieldportal/internal/application/invoice/usecases"
	notifUC "github.com/techile/fieldportal/internal/application/notification/usecases"
	pricingUC "github.com/techile/fieldportal/internal/application/pricing/usecases"
	reportUC "github.com/techile/fieldportal/internal/application/report/usecases"
	subUC "github.com/techile/fieldportal/internal/application/subscription/usecases"
	ticketUC "github.com/techile/fieldportal/internal/application/ticket/usecases"
	websiteUC "github.com/techile/fieldportal/internal/application/website/usecases"
)

// allUseCases holds all use case instances used by the handlers and the
// background commands.
type allUseCases struct {
	// Auth
	login          *authUC.LoginUseCase
	changePassword *authUC.ChangePasswordUseCase

	// Client
	registerClient  *clientUC.RegisterClientUseCase
	listClients     *clientUC.ListClientsUseCase
	getClient       *clientUC.GetClientUseCase
	updateProfile   *clientUC.UpdateProfileUseCase
	validateProfile *clientUC.ValidateProfileUseCase
	suspendClient   *clientUC.SuspendClientUseCase
	adjustQuota     *clientUC.AdjustCloudQuotaUseCase

	// Ticket
	createTicket       *ticketUC.CreateTicketUseCase
	listTickets        *ticketUC.ListTicketsUseCase
	getTicket          *ticketUC.GetTicketUseCase
	scheduleTicket     *ticketUC.ScheduleTicketUseCase
	assignTicket       *ticketUC.AssignTicketUseCase
	changeTicketStatus *ticketUC.ChangeStatusUseCase
	cancelTicket       *ticketUC.CancelTicketUseCase
	startIntervention  *ticketUC.StartInterventionUseCase
	updateWorkflowStep *ticketUC.UpdateWorkflowStepUseCase
	completeIntervent  *ticketUC.CompleteInterventionUseCase
	addNote            *ticketUC.AddNoteUseCase

	// Invoice
	createInvoice     *invoiceUC.CreateInvoiceUseCase
	invoiceFromTicket *invoiceUC.CreateInvoiceFromTicketUseCase
	getInvoice        *invoiceUC.GetInvoiceUseCase
	listInvoices      *invoiceUC.ListInvoicesUseCase
	sendInvoice       *invoiceUC.SendInvoiceUseCase
	markInvoicePaid   *invoiceUC.MarkInvoicePaidUseCase
	cancelInvoice     *invoiceUC.CancelInvoiceUseCase
	processOverdue    *invoiceUC.ProcessOverdueUseCase

	// Subscription
	getSubscription    *subUC.GetSubscriptionUseCase
	changePlan         *subUC.ChangePlanUseCase
	cancelSubscription *subUC.CancelSubscriptionUseCase

	// Website
	createWebsite        *websiteUC.CreateWebsiteUseCase
	getWebsite           *websiteUC.GetWebsiteUseCase
	listWebsites         *websiteUC.ListWebsitesUseCase
	updateWebsiteContent *websiteUC.UpdateWebsiteContentUseCase
	publishPage          *websiteUC.PublishPageUseCase
	changeWebsiteStatus  *websiteUC.ChangeWebsiteStatusUseCase

	// Notification
	listNotifications *notifUC.ListNotificationsUseCase
	markRead          *notifUC.MarkReadUseCase
	markAllRead       *notifUC.MarkAllReadUseCase

	// Pricing
	getRates      *pricingUC.GetRatesUseCase
	updateRates   *pricingUC.UpdateRatesUseCase
	generateQuote *pricingUC.GenerateQuoteUseCase

	// Reporting
	dashboardStats *reportUC.DashboardStatsUseCase
}

func (c *Container) initUseCases() {
	ucs := &allUseCases{}

	// Pricing comes first so later sections can use the rate provider.
	ucs.getRates = pricingUC.NewGetRatesUseCase(c.repos.rateSettingRepo, c.rateCache, c.log)
	ucs.updateRates = pricingUC.NewUpdateRatesUseCase(c.repos.rateSettingRepo, c.rateCache, c.log)
	ucs.generateQuote = pricingUC.NewGenerateQuoteUseCase(ucs.getRates, c.log)

	ucs.login = authUC.NewLoginUseCase(c.repos.userRepo, c.hasher, c.jwtSvc, c.loginLimiter, c.log)
	ucs.changePassword = authUC.NewChangePasswordUseCase(c.repos.userRepo, c.hasher, c.log)

	ucs.registerClient = clientUC.NewRegisterClientUseCase(
		c.repos.clientRepo, c.repos.userRepo, c.repos.subscriptionRepo,
		c.hasher, ucs.getRates, c.dispatcher, c.log,
	)
	ucs.listClients = clientUC.NewListClientsUseCase(c.repos.clientRepo, c.log)
	ucs.getClient = clientUC.NewGetClientUseCase(c.repos.clientRepo, c.log)
	ucs.updateProfile = clientUC.NewUpdateProfileUseCase(c.repos.clientRepo, c.log)
	ucs.validateProfile = clientUC.NewValidateProfileUseCase(c.repos.clientRepo, c.log)
	ucs.suspendClient = clientUC.NewSuspendClientUseCase(c.repos.clientRepo, c.dispatcher, c.log)
	ucs.adjustQuota = clientUC.NewAdjustCloudQuotaUseCase(c.repos.clientRepo, c.log)

	ucs.createTicket = ticketUC.NewCreateTicketUseCase(c.repos.ticketRepo, c.dispatcher, c.log)
	ucs.listTickets = ticketUC.NewListTicketsUseCase(c.repos.ticketRepo, c.log)
	ucs.getTicket = ticketUC.NewGetTicketUseCase(c.repos.ticketRepo, c.log)
	ucs.scheduleTicket = ticketUC.NewScheduleTicketUseCase(c.repos.ticketRepo, c.log)
	ucs.assignTicket = ticketUC.NewAssignTicketUseCase(c.repos.ticketRepo, c.repos.userRepo, c.log)
	ucs.changeTicketStatus = ticketUC.NewChangeStatusUseCase(c.repos.ticketRepo, c.dispatcher, c.log)
	ucs.cancelTicket = ticketUC.NewCancelTicketUseCase(c.repos.ticketRepo, c.dispatcher, c.log)
	ucs.startIntervention = ticketUC.NewStartInterventionUseCase(c.repos.ticketRepo, c.workflowTemplates, c.dispatcher, c.log)
	ucs.updateWorkflowStep = ticketUC.NewUpdateWorkflowStepUseCase(c.repos.ticketRepo, c.log)
	ucs.completeIntervent = ticketUC.NewCompleteInterventionUseCase(c.repos.ticketRepo, c.dispatcher, c.log)
	ucs.addNote = ticketUC.NewAddNoteUseCase(c.repos.ticketRepo, c.log)

	ucs.createInvoice = invoiceUC.NewCreateInvoiceUseCase(c.repos.invoiceRepo, ucs.getRates, c.log)
	ucs.invoiceFromTicket = invoiceUC.NewCreateInvoiceFromTicketUseCase(
		c.repos.invoiceRepo, c.repos.ticketRepo, ucs.getRates, c.txManager, c.log,
	)
	ucs.getInvoice = invoiceUC.NewGetInvoiceUseCase(c.repos.invoiceRepo, c.log)
	ucs.listInvoices = invoiceUC.NewListInvoicesUseCase(c.repos.invoiceRepo, c.log)
	ucs.sendInvoice = invoiceUC.NewSendInvoiceUseCase(c.repos.invoiceRepo, c.dispatcher, c.log)
	ucs.markInvoicePaid = invoiceUC.NewMarkInvoicePaidUseCase(c.repos.invoiceRepo, c.log)
	ucs.cancelInvoice = invoiceUC.NewCancelInvoiceUseCase(c.repos.invoiceRepo, c.log)
	ucs.processOverdue = invoiceUC.NewProcessOverdueUseCase(c.repos.invoiceRepo, c.dispatcher, c.log)

	ucs.getSubscription = subUC.NewGetSubscriptionUseCase(c.repos.subscriptionRepo, c.log)
	ucs.changePlan = subUC.NewChangePlanUseCase(c.repos.subscriptionRepo, c.repos.clientRepo, ucs.getRates, c.log)
	ucs.cancelSubscription = subUC.NewCancelSubscriptionUseCase(c.repos.subscriptionRepo, c.log)

	ucs.createWebsite = websiteUC.NewCreateWebsiteUseCase(c.repos.websiteRepo, c.repos.clientRepo, c.log)
	ucs.getWebsite = websiteUC.NewGetWebsiteUseCase(c.repos.websiteRepo, c.log)
	ucs.listWebsites = websiteUC.NewListWebsitesUseCase(c.repos.websiteRepo, c.log)
	ucs.updateWebsiteContent = websiteUC.NewUpdateWebsiteContentUseCase(c.repos.websiteRepo, c.log)
	ucs.publishPage = websiteUC.NewPublishPageUseCase(c.repos.websiteRepo, c.log)
	ucs.changeWebsiteStatus = websiteUC.NewChangeWebsiteStatusUseCase(c.repos.websiteRepo, c.log)

	ucs.listNotifications = notifUC.NewListNotificationsUseCase(c.repos.notificationRepo, c.log)
	ucs.markRead = notifUC.NewMarkReadUseCase(c.repos.notificationRepo, c.log)
	ucs.markAllRead = notifUC.NewMarkAllReadUseCase(c.repos.notificationRepo, c.log)

	ucs.dashboardStats = reportUC.NewDashboardStatsUseCase(
		c.repos.clientRepo, c.repos.subscriptionRepo, c.repos.ticketRepo, c.repos.invoiceRepo, c.log,
	)

	c.ucs = ucs
}
