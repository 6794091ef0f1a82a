package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/domain/ticket"
	vo "github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
	"github.com/techile/fieldportal/internal/shared/constants"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type CreateInvoiceFromTicketCommand struct {
	TicketID uint
}

// CreateInvoiceFromTicketUseCase builds the draft invoice for a resolved
// intervention from the recorded work: labor from actual minutes, travel
// from the scheduled distance, and the urgent surcharge when it applies.
// The write runs in a transaction so a duplicate check and the insert
// cannot interleave with a concurrent resolution.
type CreateInvoiceFromTicketUseCase struct {
	invoiceRepo invoice.Repository
	ticketRepo  ticket.Repository
	rates       RateProvider
	txManager   TransactionManager
	logger      logger.Interface
}

func NewCreateInvoiceFromTicketUseCase(
	invoiceRepo invoice.Repository,
	ticketRepo ticket.Repository,
	rates RateProvider,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateInvoiceFromTicketUseCase {
	return &CreateInvoiceFromTicketUseCase{
		invoiceRepo: invoiceRepo,
		ticketRepo:  ticketRepo,
		rates:       rates,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CreateInvoiceFromTicketUseCase) Execute(ctx context.Context, cmd CreateInvoiceFromTicketCommand) (*InvoiceDetail, error) {
	uc.logger.Infow("executing create invoice from ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	tk, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}
	if !tk.IsIntervention() {
		return nil, errors.NewValidationError("only intervention tickets are billable")
	}
	if tk.Status() != vo.StatusResolved && tk.Status() != vo.StatusClosed {
		return nil, errors.NewConflictError("ticket is not resolved")
	}
	if tk.ActualMinutes() <= 0 {
		return nil, errors.NewValidationError("ticket has no recorded work time")
	}

	rt := uc.rates.Rates(ctx)
	price := pricing.CalculateInterventionPrice(rt, tk.ActualMinutes(), tk.DistanceKM(), tk.IsUrgent())

	items := []invoice.ItemInput{{
		Description: fmt.Sprintf("Main-d'œuvre (%d min)", tk.ActualMinutes()),
		Quantity:    1,
		UnitPrice:   price.LaborCost,
	}}
	if price.TravelCost > 0 {
		items = append(items, invoice.ItemInput{
			Description: fmt.Sprintf("Déplacement (%.1f km)", tk.DistanceKM()),
			Quantity:    1,
			UnitPrice:   price.TravelCost,
		})
	}
	if price.UrgentSurcharge > 0 {
		items = append(items, invoice.ItemInput{
			Description: "Supplément urgence",
			Quantity:    1,
			UnitPrice:   price.UrgentSurcharge,
		})
	}

	var inv *invoice.Invoice
	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.invoiceRepo.FindByTicketID(txCtx, cmd.TicketID)
		if err == nil && existing != nil {
			inv = existing
			return nil
		}

		ticketID := cmd.TicketID
		created, err := invoice.NewInvoice(tk.ClientID(), &ticketID, items, rt.TaxRate, constants.InvoiceDueDays, time.Now())
		if err != nil {
			return err
		}
		created.SetNotes(fmt.Sprintf("Intervention %s", tk.Number()))

		if err := uc.invoiceRepo.Save(txCtx, created); err != nil {
			uc.logger.Errorw("failed to save invoice", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewInternalError("failed to save invoice")
		}
		inv = created
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("invoice created from ticket",
		"ticket_id", cmd.TicketID, "invoice_id", inv.ID(), "number", inv.Number(), "total", inv.Total())
	return toInvoiceDetail(inv), nil
}
