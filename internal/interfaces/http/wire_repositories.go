package http

import (
	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/domain/notification"
	"github.com/techile/fieldportal/internal/domain/subscription"
	"github.com/techile/fieldportal/internal/domain/ticket"
	"github.com/techile/fieldportal/internal/domain/user"
	"github.com/techile/fieldportal/internal/domain/website"
	"github.com/techile/fieldportal/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         user.Repository
	clientRepo       client.Repository
	ticketRepo       ticket.Repository
	invoiceRepo      invoice.Repository
	subscriptionRepo subscription.Repository
	websiteRepo      website.Repository
	notificationRepo notification.Repository
	rateSettingRepo  *repository.RateSettingRepository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:         repository.NewUserRepository(c.db, c.log),
		clientRepo:       repository.NewClientRepository(c.db, c.log),
		ticketRepo:       repository.NewTicketRepository(c.db, c.log),
		invoiceRepo:      repository.NewInvoiceRepository(c.db, c.log),
		subscriptionRepo: repository.NewSubscriptionRepository(c.db, c.log),
		websiteRepo:      repository.NewWebsiteRepository(c.db, c.log),
		notificationRepo: repository.NewNotificationRepository(c.db, c.log),
		rateSettingRepo:  repository.NewRateSettingRepository(c.db, c.log),
	}
}
