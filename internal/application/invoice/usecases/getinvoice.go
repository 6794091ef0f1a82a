package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

// GetInvoiceQuery looks an invoice up by ID or by number. ClientID, when
// set, restricts the result to that client's own invoices.
type GetInvoiceQuery struct {
	InvoiceID uint
	Number    string
	ClientID  uint
}

type GetInvoiceUseCase struct {
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewGetInvoiceUseCase(invoiceRepo invoice.Repository, logger logger.Interface) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{invoiceRepo: invoiceRepo, logger: logger}
}

func (uc *GetInvoiceUseCase) Execute(ctx context.Context, query GetInvoiceQuery) (*InvoiceDetail, error) {
	var (
		inv *invoice.Invoice
		err error
	)
	switch {
	case query.InvoiceID != 0:
		inv, err = uc.invoiceRepo.FindByID(ctx, query.InvoiceID)
	case query.Number != "":
		inv, err = uc.invoiceRepo.FindByNumber(ctx, query.Number)
	default:
		return nil, errors.NewValidationError("invoice ID or number is required")
	}
	if err != nil {
		uc.logger.Errorw("failed to get invoice", "invoice_id", query.InvoiceID, "number", query.Number, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("invoice %d not found", query.InvoiceID))
	}

	if query.ClientID != 0 && inv.ClientID() != query.ClientID {
		return nil, errors.NewForbiddenError("invoice belongs to another client")
	}

	return toInvoiceDetail(inv), nil
}
