package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type SendInvoiceCommand struct {
	InvoiceID uint
}

// SendInvoiceUseCase moves a draft to sent. The client email goes out
// through the automation layer off the published event.
type SendInvoiceUseCase struct {
	invoiceRepo invoice.Repository
	publisher   events.EventPublisher
	logger      logger.Interface
}

func NewSendInvoiceUseCase(
	invoiceRepo invoice.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *SendInvoiceUseCase {
	return &SendInvoiceUseCase{invoiceRepo: invoiceRepo, publisher: publisher, logger: logger}
}

func (uc *SendInvoiceUseCase) Execute(ctx context.Context, cmd SendInvoiceCommand) (*InvoiceDetail, error) {
	uc.logger.Infow("executing send invoice use case", "invoice_id", cmd.InvoiceID)

	if cmd.InvoiceID == 0 {
		return nil, errors.NewValidationError("invoice ID is required")
	}

	inv, err := uc.invoiceRepo.FindByID(ctx, cmd.InvoiceID)
	if err != nil {
		uc.logger.Errorw("failed to get invoice", "invoice_id", cmd.InvoiceID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("invoice %d not found", cmd.InvoiceID))
	}

	if err := inv.MarkSent(time.Now()); err != nil {
		return nil, err
	}

	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		uc.logger.Errorw("failed to update invoice", "invoice_id", cmd.InvoiceID, "error", err)
		return nil, errors.NewInternalError("failed to update invoice")
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(invoice.NewInvoiceSentEvent(inv)); err != nil {
			uc.logger.Warnw("failed to publish invoice sent event", "invoice_id", inv.ID(), "error", err)
		}
	}

	uc.logger.Infow("invoice sent", "invoice_id", inv.ID(), "number", inv.Number())
	return toInvoiceDetail(inv), nil
}
