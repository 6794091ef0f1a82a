package usecases

import (
	"context"
	"time"

	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/shared/constants"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type CreateInvoiceItemInput struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type CreateInvoiceCommand struct {
	ClientID uint
	TicketID *uint
	Items    []CreateInvoiceItemInput
	// TaxRate overrides the published rate when positive.
	TaxRate float64
	// DueDays defaults to the standard payment window when zero.
	DueDays int
	Notes   string
}

type CreateInvoiceUseCase struct {
	invoiceRepo invoice.Repository
	rates       RateProvider
	logger      logger.Interface
}

func NewCreateInvoiceUseCase(
	invoiceRepo invoice.Repository,
	rates RateProvider,
	logger logger.Interface,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{invoiceRepo: invoiceRepo, rates: rates, logger: logger}
}

func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, cmd CreateInvoiceCommand) (*InvoiceDetail, error) {
	uc.logger.Infow("executing create invoice use case", "client_id", cmd.ClientID, "items", len(cmd.Items))

	if cmd.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}
	if len(cmd.Items) == 0 {
		return nil, errors.NewValidationError("invoice needs at least one item")
	}

	taxRate := cmd.TaxRate
	if taxRate <= 0 {
		taxRate = uc.rates.Rates(ctx).TaxRate
	}
	dueDays := cmd.DueDays
	if dueDays <= 0 {
		dueDays = constants.InvoiceDueDays
	}

	items := make([]invoice.ItemInput, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		items = append(items, invoice.ItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	inv, err := invoice.NewInvoice(cmd.ClientID, cmd.TicketID, items, taxRate, dueDays, time.Now())
	if err != nil {
		return nil, err
	}
	if cmd.Notes != "" {
		inv.SetNotes(cmd.Notes)
	}

	if err := uc.invoiceRepo.Save(ctx, inv); err != nil {
		uc.logger.Errorw("failed to save invoice", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to save invoice")
	}

	uc.logger.Infow("invoice created", "invoice_id", inv.ID(), "number", inv.Number(), "total", inv.Total())
	return toInvoiceDetail(inv), nil
}
