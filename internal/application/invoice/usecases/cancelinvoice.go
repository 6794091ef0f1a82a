package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type CancelInvoiceCommand struct {
	InvoiceID uint
}

type CancelInvoiceUseCase struct {
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewCancelInvoiceUseCase(invoiceRepo invoice.Repository, logger logger.Interface) *CancelInvoiceUseCase {
	return &CancelInvoiceUseCase{invoiceRepo: invoiceRepo, logger: logger}
}

func (uc *CancelInvoiceUseCase) Execute(ctx context.Context, cmd CancelInvoiceCommand) (*InvoiceDetail, error) {
	uc.logger.Infow("executing cancel invoice use case", "invoice_id", cmd.InvoiceID)

	if cmd.InvoiceID == 0 {
		return nil, errors.NewValidationError("invoice ID is required")
	}

	inv, err := uc.invoiceRepo.FindByID(ctx, cmd.InvoiceID)
	if err != nil {
		uc.logger.Errorw("failed to get invoice", "invoice_id", cmd.InvoiceID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("invoice %d not found", cmd.InvoiceID))
	}

	if err := inv.Cancel(); err != nil {
		return nil, err
	}

	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		uc.logger.Errorw("failed to update invoice", "invoice_id", cmd.InvoiceID, "error", err)
		return nil, errors.NewInternalError("failed to update invoice")
	}

	uc.logger.Infow("invoice cancelled", "invoice_id", inv.ID(), "number", inv.Number())
	return toInvoiceDetail(inv), nil
}
