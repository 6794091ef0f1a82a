package invoice

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techile/fieldportal/internal/domain/invoice/valueobjects"
)

var issuedAt = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestInvoice(t *testing.T) *Invoice {
	t.Helper()
	inv, err := NewInvoice(1, nil, []ItemInput{
		{Description: "Intervention technique", Quantity: 1.5, UnitPrice: 75},
		{Description: "Déplacement", Quantity: 10, UnitPrice: 0.65},
	}, 15, 30, issuedAt)
	require.NoError(t, err)
	return inv
}

func TestNewInvoice(t *testing.T) {
	inv := newTestInvoice(t)

	items := inv.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 112.50, items[0].Total)
	assert.Equal(t, 6.50, items[1].Total)

	assert.Equal(t, 119.00, inv.Amount())
	assert.Equal(t, 17.85, inv.TaxAmount())
	assert.Equal(t, 136.85, inv.Total())
	assert.Equal(t, valueobjects.StatusDraft, inv.Status())
	assert.Equal(t, issuedAt.AddDate(0, 0, 30), inv.DueDate())
	assert.True(t, strings.HasPrefix(inv.Number(), "INV-202506-"))
}

func TestNewInvoiceValidation(t *testing.T) {
	valid := []ItemInput{{Description: "x", Quantity: 1, UnitPrice: 10}}

	tests := []struct {
		name     string
		clientID uint
		items    []ItemInput
		taxRate  float64
		dueDays  int
	}{
		{"missing client", 0, valid, 15, 30},
		{"no items", 1, nil, 15, 30},
		{"negative tax", 1, valid, -1, 30},
		{"zero due days", 1, valid, 15, 0},
		{"blank description", 1, []ItemInput{{Description: " ", Quantity: 1, UnitPrice: 1}}, 15, 30},
		{"zero quantity", 1, []ItemInput{{Description: "x", Quantity: 0, UnitPrice: 1}}, 15, 30},
		{"negative price", 1, []ItemInput{{Description: "x", Quantity: 1, UnitPrice: -1}}, 15, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInvoice(tt.clientID, nil, tt.items, tt.taxRate, tt.dueDays, issuedAt)
			assert.Error(t, err)
		})
	}
}

func TestInvoiceLifecycle(t *testing.T) {
	inv := newTestInvoice(t)

	sentAt := issuedAt.Add(time.Hour)
	require.NoError(t, inv.MarkSent(sentAt))
	assert.Equal(t, valueobjects.StatusSent, inv.Status())
	require.NotNil(t, inv.SentAt())
	assert.Equal(t, sentAt, *inv.SentAt())

	// Sending twice is rejected.
	assert.Error(t, inv.MarkSent(sentAt))

	paidAt := sentAt.AddDate(0, 0, 5)
	require.NoError(t, inv.MarkPaid(paidAt))
	assert.Equal(t, valueobjects.StatusPaid, inv.Status())
	require.NotNil(t, inv.PaidAt())

	// Paid is terminal.
	assert.Error(t, inv.Cancel())
	assert.Error(t, inv.MarkOverdue(paidAt.AddDate(0, 2, 0)))
}

func TestInvoiceOverdueFlow(t *testing.T) {
	inv := newTestInvoice(t)
	require.NoError(t, inv.MarkSent(issuedAt))

	t.Run("not yet past due", func(t *testing.T) {
		assert.Error(t, inv.MarkOverdue(inv.DueDate()))
		assert.False(t, inv.IsPastDue(inv.DueDate()))
	})

	lateBy := inv.DueDate().AddDate(0, 0, 1)
	require.True(t, inv.IsPastDue(lateBy))
	require.NoError(t, inv.MarkOverdue(lateBy))
	assert.Equal(t, valueobjects.StatusOverdue, inv.Status())

	// Overdue invoices can still be paid.
	require.NoError(t, inv.MarkPaid(lateBy.AddDate(0, 0, 3)))
	assert.Equal(t, valueobjects.StatusPaid, inv.Status())
}

func TestInvoiceCancel(t *testing.T) {
	t.Run("draft", func(t *testing.T) {
		inv := newTestInvoice(t)
		require.NoError(t, inv.Cancel())
		assert.Equal(t, valueobjects.StatusCancelled, inv.Status())
		assert.Error(t, inv.MarkSent(issuedAt))
	})

	t.Run("sent", func(t *testing.T) {
		inv := newTestInvoice(t)
		require.NoError(t, inv.MarkSent(issuedAt))
		require.NoError(t, inv.Cancel())
	})
}

func TestDraftCannotGoOverdueOrPaid(t *testing.T) {
	inv := newTestInvoice(t)
	assert.Error(t, inv.MarkPaid(issuedAt))
	assert.Error(t, inv.MarkOverdue(inv.DueDate().AddDate(0, 1, 0)))
}

func TestReconstructInvoiceRecomputesAmounts(t *testing.T) {
	items := []Item{
		{Description: "Forfait maintenance standard", Quantity: 1, UnitPrice: 45, Total: 45},
	}
	inv := ReconstructInvoice(
		3, "INV-202505-abc123", 7, nil, items, 15,
		valueobjects.StatusSent, issuedAt.AddDate(0, 0, 30),
		&issuedAt, nil, "", issuedAt, issuedAt,
	)
	assert.Equal(t, 45.00, inv.Amount())
	assert.Equal(t, 6.75, inv.TaxAmount())
	assert.Equal(t, 51.75, inv.Total())
}

func TestGenerateNumber(t *testing.T) {
	n := GenerateNumber(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(n, "INV-202501-"))
	assert.Len(t, n, len("INV-202501-")+6)
}
