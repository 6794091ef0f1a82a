package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/domain/pricing"
)

func draftInvoice(t *testing.T, id uint) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(7, nil, []invoice.ItemInput{
		{Description: "Forfait maintenance standard", Quantity: 1, UnitPrice: 45},
	}, 15, 30, time.Now())
	require.NoError(t, err)
	inv.SetID(id)
	return inv
}

func TestCreateInvoiceUseCase_Execute(t *testing.T) {
	rates := &staticRateProvider{table: pricing.DefaultRateTable()}

	t.Run("applies the published tax rate and payment window", func(t *testing.T) {
		var saved *invoice.Invoice
		repo := &mockInvoiceRepository{
			SaveFunc: func(ctx context.Context, inv *invoice.Invoice) error {
				inv.SetID(9)
				saved = inv
				return nil
			},
		}
		uc := NewCreateInvoiceUseCase(repo, rates, testLogger())

		detail, err := uc.Execute(context.Background(), CreateInvoiceCommand{
			ClientID: 7,
			Items: []CreateInvoiceItemInput{
				{Description: "Site web vitrine", Quantity: 1, UnitPrice: 25},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, 15.0, detail.TaxRate)
		assert.Equal(t, 25.00, detail.Amount)
		assert.Equal(t, 3.75, detail.TaxAmount)
		assert.Equal(t, 28.75, detail.Total)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), detail.DueDate, time.Minute)
	})

	t.Run("rejects an empty item list", func(t *testing.T) {
		uc := NewCreateInvoiceUseCase(&mockInvoiceRepository{}, rates, testLogger())
		_, err := uc.Execute(context.Background(), CreateInvoiceCommand{ClientID: 7})
		assert.Error(t, err)
	})
}

func TestSendInvoiceUseCase_Execute(t *testing.T) {
	inv := draftInvoice(t, 9)
	repo := &mockInvoiceRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*invoice.Invoice, error) {
			return inv, nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := NewSendInvoiceUseCase(repo, publisher, testLogger())

	detail, err := uc.Execute(context.Background(), SendInvoiceCommand{InvoiceID: 9})
	require.NoError(t, err)
	assert.Equal(t, "sent", detail.Status)
	assert.NotNil(t, detail.SentAt)

	require.Len(t, publisher.Published, 1)
	sent, ok := publisher.Published[0].(*invoice.InvoiceSentEvent)
	require.True(t, ok)
	assert.Equal(t, uint(9), sent.InvoiceID)
	assert.Equal(t, inv.Number(), sent.Number)

	// Already sent, sending again is a transition error.
	_, err = uc.Execute(context.Background(), SendInvoiceCommand{InvoiceID: 9})
	assert.Error(t, err)
}

func TestMarkInvoicePaidUseCase_Execute(t *testing.T) {
	inv := draftInvoice(t, 9)
	require.NoError(t, inv.MarkSent(time.Now()))
	repo := &mockInvoiceRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*invoice.Invoice, error) {
			return inv, nil
		},
	}
	uc := NewMarkInvoicePaidUseCase(repo, testLogger())

	detail, err := uc.Execute(context.Background(), MarkInvoicePaidCommand{InvoiceID: 9})
	require.NoError(t, err)
	assert.Equal(t, "paid", detail.Status)
	assert.NotNil(t, detail.PaidAt)
}

func TestProcessOverdueUseCase_Execute(t *testing.T) {
	now := time.Now()

	makeSentPastDue := func(id uint) *invoice.Invoice {
		inv, err := invoice.NewInvoice(7, nil, []invoice.ItemInput{
			{Description: "Stockage cloud", Quantity: 1, UnitPrice: 10},
		}, 15, 1, now.AddDate(0, 0, -10))
		require.NoError(t, err)
		inv.SetID(id)
		require.NoError(t, inv.MarkSent(now.AddDate(0, 0, -10)))
		return inv
	}

	first := makeSentPastDue(1)
	second := makeSentPastDue(2)

	updates := 0
	repo := &mockInvoiceRepository{
		FindSentPastDueFunc: func(ctx context.Context, asOf time.Time) ([]*invoice.Invoice, error) {
			return []*invoice.Invoice{first, second}, nil
		},
		UpdateFunc: func(ctx context.Context, inv *invoice.Invoice) error {
			updates++
			return nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := NewProcessOverdueUseCase(repo, publisher, testLogger())

	result, err := uc.Execute(context.Background(), ProcessOverdueCommand{AsOf: now})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Flagged)
	assert.Equal(t, 2, updates)
	assert.Len(t, publisher.Published, 2)
	assert.Equal(t, "overdue", first.Status().String())
	assert.Equal(t, "overdue", second.Status().String())

	overdue, ok := publisher.Published[0].(*invoice.InvoiceOverdueEvent)
	require.True(t, ok)
	assert.Equal(t, uint(1), overdue.InvoiceID)
}
