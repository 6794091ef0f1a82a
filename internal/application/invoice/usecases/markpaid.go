package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type MarkInvoicePaidCommand struct {
	InvoiceID uint
}

type MarkInvoicePaidUseCase struct {
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewMarkInvoicePaidUseCase(invoiceRepo invoice.Repository, logger logger.Interface) *MarkInvoicePaidUseCase {
	return &MarkInvoicePaidUseCase{invoiceRepo: invoiceRepo, logger: logger}
}

func (uc *MarkInvoicePaidUseCase) Execute(ctx context.Context, cmd MarkInvoicePaidCommand) (*InvoiceDetail, error) {
	uc.logger.Infow("executing mark invoice paid use case", "invoice_id", cmd.InvoiceID)

	if cmd.InvoiceID == 0 {
		return nil, errors.NewValidationError("invoice ID is required")
	}

	inv, err := uc.invoiceRepo.FindByID(ctx, cmd.InvoiceID)
	if err != nil {
		uc.logger.Errorw("failed to get invoice", "invoice_id", cmd.InvoiceID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("invoice %d not found", cmd.InvoiceID))
	}

	if err := inv.MarkPaid(time.Now()); err != nil {
		return nil, err
	}

	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		uc.logger.Errorw("failed to update invoice", "invoice_id", cmd.InvoiceID, "error", err)
		return nil, errors.NewInternalError("failed to update invoice")
	}

	uc.logger.Infow("invoice paid", "invoice_id", inv.ID(), "number", inv.Number(), "total", inv.Total())
	return toInvoiceDetail(inv), nil
}
