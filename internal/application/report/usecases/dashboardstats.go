package usecases

import (
	"context"
	"math"

	"github.com/techile/fieldportal/internal/domain/client"
	clvo "github.com/techile/fieldportal/internal/domain/client/valueobjects"
	"github.com/techile/fieldportal/internal/domain/invoice"
	invo "github.com/techile/fieldportal/internal/domain/invoice/valueobjects"
	"github.com/techile/fieldportal/internal/domain/subscription"
	subvo "github.com/techile/fieldportal/internal/domain/subscription/valueobjects"
	"github.com/techile/fieldportal/internal/domain/ticket"
	tkvo "github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	TotalClients    int64   `json:"total_clients"`
	ActiveClients   int64   `json:"active_clients"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	PendingTickets  int64   `json:"pending_tickets"`
	OverdueInvoices int64   `json:"overdue_invoices"`
	CloudUsedGB     float64 `json:"cloud_used_gb"`
	CloudQuotaGB    float64 `json:"cloud_quota_gb"`
	CloudUsagePct   float64 `json:"cloud_usage_pct"`
}

type DashboardStatsExecutor interface {
	Execute(ctx context.Context) (*DashboardStats, error)
}

type DashboardStatsUseCase struct {
	clientRepo  client.Repository
	subRepo     subscription.Repository
	ticketRepo  ticket.Repository
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewDashboardStatsUseCase(
	clientRepo client.Repository,
	subRepo subscription.Repository,
	ticketRepo ticket.Repository,
	invoiceRepo invoice.Repository,
	logger logger.Interface,
) *DashboardStatsUseCase {
	return &DashboardStatsUseCase{
		clientRepo:  clientRepo,
		subRepo:     subRepo,
		ticketRepo:  ticketRepo,
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (uc *DashboardStatsUseCase) Execute(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	active, err := uc.clientRepo.CountByStatus(ctx, clvo.StatusActive)
	if err != nil {
		uc.logger.Errorw("failed to count active clients", "error", err)
		return nil, errors.NewInternalError("failed to compute dashboard stats")
	}
	suspended, err := uc.clientRepo.CountByStatus(ctx, clvo.StatusSuspended)
	if err != nil {
		return nil, errors.NewInternalError("failed to compute dashboard stats")
	}
	cancelled, err := uc.clientRepo.CountByStatus(ctx, clvo.StatusCancelled)
	if err != nil {
		return nil, errors.NewInternalError("failed to compute dashboard stats")
	}
	stats.ActiveClients = active
	stats.TotalClients = active + suspended + cancelled

	// MRR: annual subscriptions normalized to their monthly value.
	subs, err := uc.subRepo.ListByStatus(ctx, subvo.StatusActive)
	if err != nil {
		uc.logger.Errorw("failed to list active subscriptions", "error", err)
		return nil, errors.NewInternalError("failed to compute dashboard stats")
	}
	var mrr float64
	for _, s := range subs {
		mrr += s.MonthlyValue()
	}
	stats.MonthlyRevenue = math.Round(mrr*100) / 100

	open, err := uc.ticketRepo.CountByStatus(ctx, tkvo.StatusOpen)
	if err != nil {
		return nil, errors.NewInternalError("failed to compute dashboard stats")
	}
	inProgress, err := uc.ticketRepo.CountByStatus(ctx, tkvo.StatusInProgress)
	if err != nil {
		return nil, errors.NewInternalError("failed to compute dashboard stats")
	}
	stats.PendingTickets = open + inProgress

	overdue, err := uc.invoiceRepo.CountByStatus(ctx, invo.StatusOverdue)
	if err != nil {
		return nil, errors.NewInternalError("failed to compute dashboard stats")
	}
	stats.OverdueInvoices = overdue

	// Aggregate cloud usage across every non-cancelled client.
	clients, _, err := uc.clientRepo.List(ctx, client.ListFilter{}, 0, 1000, "")
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, errors.NewInternalError("failed to compute dashboard stats")
	}
	for _, c := range clients {
		if c.Status() == clvo.StatusCancelled {
			continue
		}
		stats.CloudUsedGB += c.CloudUsedGB()
		stats.CloudQuotaGB += c.CloudQuotaGB()
	}
	if stats.CloudQuotaGB > 0 {
		stats.CloudUsagePct = math.Round(stats.CloudUsedGB/stats.CloudQuotaGB*10000) / 100
	}

	uc.logger.Infow("dashboard stats computed",
		"clients", stats.TotalClients, "mrr", stats.MonthlyRevenue, "pending_tickets", stats.PendingTickets)
	return stats, nil
}
