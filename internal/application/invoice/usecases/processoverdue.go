package usecases

import (
	"context"
	"time"

	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type ProcessOverdueCommand struct {
	// AsOf defaults to the current time when zero.
	AsOf time.Time
}

type ProcessOverdueResult struct {
	Flagged int      `json:"flagged"`
	Numbers []string `json:"numbers,omitempty"`
}

// ProcessOverdueUseCase is the periodic sweep that flags sent invoices past
// their due date. Failures on individual invoices are logged and skipped so
// one bad row cannot stall the sweep.
type ProcessOverdueUseCase struct {
	invoiceRepo invoice.Repository
	publisher   events.EventPublisher
	logger      logger.Interface
}

func NewProcessOverdueUseCase(
	invoiceRepo invoice.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ProcessOverdueUseCase {
	return &ProcessOverdueUseCase{invoiceRepo: invoiceRepo, publisher: publisher, logger: logger}
}

func (uc *ProcessOverdueUseCase) Execute(ctx context.Context, cmd ProcessOverdueCommand) (*ProcessOverdueResult, error) {
	asOf := cmd.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}
	uc.logger.Infow("executing process overdue use case", "as_of", asOf)

	candidates, err := uc.invoiceRepo.FindSentPastDue(ctx, asOf)
	if err != nil {
		uc.logger.Errorw("failed to query past-due invoices", "error", err)
		return nil, errors.NewInternalError("failed to query past-due invoices")
	}

	result := &ProcessOverdueResult{}
	for _, inv := range candidates {
		if err := inv.MarkOverdue(asOf); err != nil {
			uc.logger.Warnw("skipping invoice in overdue sweep", "invoice_id", inv.ID(), "error", err)
			continue
		}
		if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
			uc.logger.Warnw("failed to update overdue invoice", "invoice_id", inv.ID(), "error", err)
			continue
		}
		if uc.publisher != nil {
			if err := uc.publisher.Publish(invoice.NewInvoiceOverdueEvent(inv)); err != nil {
				uc.logger.Warnw("failed to publish invoice overdue event", "invoice_id", inv.ID(), "error", err)
			}
		}
		result.Flagged++
		result.Numbers = append(result.Numbers, inv.Number())
	}

	uc.logger.Infow("overdue sweep finished", "candidates", len(candidates), "flagged", result.Flagged)
	return result, nil
}
