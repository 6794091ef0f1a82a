package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/domain/ticket"
	tkvo "github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
)

func resolvedIntervention(t *testing.T, actualMinutes int, distanceKM float64, priority tkvo.Priority) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	assignee := uint(3)
	resolved := now.Add(-time.Hour)
	return ticket.ReconstructTicket(
		12, "TKT-abc123", 7,
		"Serveur en panne", "Le serveur ne démarre plus",
		tkvo.TypeIntervention, priority, tkvo.StatusResolved,
		&assignee, nil, "Cap-aux-Meules", distanceKM,
		60, actualMinutes, &resolved,
		nil, "Alimentation remplacée", nil,
		&resolved, nil, now.Add(-24*time.Hour), now,
	)
}

func TestCreateInvoiceFromTicketUseCase_Execute(t *testing.T) {
	rates := &staticRateProvider{table: pricing.DefaultRateTable()}

	t.Run("bills labor, travel, and the urgent surcharge", func(t *testing.T) {
		tk := resolvedIntervention(t, 90, 10, tkvo.PriorityUrgent)
		var saved *invoice.Invoice
		invoiceRepo := &mockInvoiceRepository{
			FindByTicketIDFunc: func(ctx context.Context, ticketID uint) (*invoice.Invoice, error) {
				return nil, assert.AnError
			},
			SaveFunc: func(ctx context.Context, inv *invoice.Invoice) error {
				inv.SetID(41)
				saved = inv
				return nil
			},
		}
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		uc := NewCreateInvoiceFromTicketUseCase(invoiceRepo, ticketRepo, rates, passthroughTx{}, testLogger())

		detail, err := uc.Execute(context.Background(), CreateInvoiceFromTicketCommand{TicketID: 12})
		require.NoError(t, err)
		require.NotNil(t, saved)
		require.Len(t, detail.Items, 3)
		assert.Equal(t, 112.50, detail.Items[0].Total)
		assert.Equal(t, 6.50, detail.Items[1].Total)
		assert.Equal(t, 50.00, detail.Items[2].Total)
		assert.Equal(t, 169.00, detail.Amount)
		assert.Equal(t, 25.35, detail.TaxAmount)
		assert.Equal(t, 194.35, detail.Total)
		assert.Equal(t, "draft", detail.Status)
		require.NotNil(t, detail.TicketID)
		assert.Equal(t, uint(12), *detail.TicketID)
	})

	t.Run("skips travel and surcharge lines when they are zero", func(t *testing.T) {
		tk := resolvedIntervention(t, 60, 0, tkvo.PriorityNormal)
		invoiceRepo := &mockInvoiceRepository{
			FindByTicketIDFunc: func(ctx context.Context, ticketID uint) (*invoice.Invoice, error) {
				return nil, assert.AnError
			},
		}
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		uc := NewCreateInvoiceFromTicketUseCase(invoiceRepo, ticketRepo, rates, passthroughTx{}, testLogger())

		detail, err := uc.Execute(context.Background(), CreateInvoiceFromTicketCommand{TicketID: 12})
		require.NoError(t, err)
		require.Len(t, detail.Items, 1)
		assert.Equal(t, 75.00, detail.Amount)
	})

	t.Run("returns the existing invoice instead of billing twice", func(t *testing.T) {
		tk := resolvedIntervention(t, 90, 10, tkvo.PriorityUrgent)
		ticketID := uint(12)
		existing, err := invoice.NewInvoice(7, &ticketID, []invoice.ItemInput{
			{Description: "Main-d'œuvre (90 min)", Quantity: 1, UnitPrice: 112.50},
		}, 15, 30, time.Now())
		require.NoError(t, err)
		existing.SetID(41)

		saves := 0
		invoiceRepo := &mockInvoiceRepository{
			FindByTicketIDFunc: func(ctx context.Context, id uint) (*invoice.Invoice, error) {
				return existing, nil
			},
			SaveFunc: func(ctx context.Context, inv *invoice.Invoice) error {
				saves++
				return nil
			},
		}
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		uc := NewCreateInvoiceFromTicketUseCase(invoiceRepo, ticketRepo, rates, passthroughTx{}, testLogger())

		detail, err := uc.Execute(context.Background(), CreateInvoiceFromTicketCommand{TicketID: 12})
		require.NoError(t, err)
		assert.Equal(t, uint(41), detail.ID)
		assert.Zero(t, saves)
	})

	t.Run("rejects a support ticket", func(t *testing.T) {
		now := time.Now()
		tk := ticket.ReconstructTicket(
			13, "TKT-def456", 7, "Question facturation", "",
			tkvo.TypeSupport, tkvo.PriorityNormal, tkvo.StatusResolved,
			nil, nil, "", 0, 0, 30, nil, nil, "ok", nil, &now, nil, now, now,
		)
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		uc := NewCreateInvoiceFromTicketUseCase(&mockInvoiceRepository{}, ticketRepo, rates, passthroughTx{}, testLogger())

		_, err := uc.Execute(context.Background(), CreateInvoiceFromTicketCommand{TicketID: 13})
		assert.Error(t, err)
	})

	t.Run("rejects an unresolved ticket", func(t *testing.T) {
		tk := resolvedIntervention(t, 90, 10, tkvo.PriorityNormal)
		require.NoError(t, tk.ChangeStatus(tkvo.StatusInProgress))
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		uc := NewCreateInvoiceFromTicketUseCase(&mockInvoiceRepository{}, ticketRepo, rates, passthroughTx{}, testLogger())

		_, err := uc.Execute(context.Background(), CreateInvoiceFromTicketCommand{TicketID: 12})
		assert.Error(t, err)
	})
}
