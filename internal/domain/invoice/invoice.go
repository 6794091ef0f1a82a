// Package invoice models client billing documents: line items, tax,
// status lifecycle from draft through payment.
package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/techile/fieldportal/internal/domain/invoice/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/id"
)

// Item is one invoice line. Total is always Quantity times UnitPrice; it is
// computed here and never accepted from callers.
type Item struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Invoice is a billing document for a client. Amounts are derived from the
// items and tax rate at construction so they cannot drift apart.
type Invoice struct {
	id        uint
	number    string
	clientID  uint
	ticketID  *uint
	items     []Item
	amount    float64
	taxAmount float64
	total     float64
	taxRate   float64
	status    valueobjects.InvoiceStatus
	dueDate   time.Time
	sentAt    *time.Time
	paidAt    *time.Time
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

// ItemInput is a line as provided by the caller, without a total.
type ItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// NewInvoice creates a draft invoice. The number is generated from the
// issue month, the amounts are computed from the items and the tax rate
// (a percentage), and the due date is dueDays out.
func NewInvoice(clientID uint, ticketID *uint, items []ItemInput, taxRate float64, dueDays int, now time.Time) (*Invoice, error) {
	if clientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}
	if len(items) == 0 {
		return nil, errors.NewValidationError("invoice needs at least one item")
	}
	if taxRate < 0 {
		return nil, errors.NewValidationError("tax rate cannot be negative")
	}
	if dueDays <= 0 {
		return nil, errors.NewValidationError("due days must be positive")
	}

	lines := make([]Item, 0, len(items))
	for _, in := range items {
		desc := strings.TrimSpace(in.Description)
		if desc == "" {
			return nil, errors.NewValidationError("item description is required")
		}
		if in.Quantity <= 0 {
			return nil, errors.NewValidationError("item quantity must be positive", desc)
		}
		if in.UnitPrice < 0 {
			return nil, errors.NewValidationError("item unit price cannot be negative", desc)
		}
		lines = append(lines, Item{
			Description: desc,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Total:       round2(in.Quantity * in.UnitPrice),
		})
	}

	inv := &Invoice{
		number:    GenerateNumber(now),
		clientID:  clientID,
		ticketID:  ticketID,
		items:     lines,
		taxRate:   taxRate,
		status:    valueobjects.StatusDraft,
		dueDate:   now.AddDate(0, 0, dueDays),
		createdAt: now,
		updatedAt: now,
	}
	inv.recompute()
	return inv, nil
}

// ReconstructInvoice rebuilds an invoice from persistence. Amounts are
// recomputed from the stored items and tax rate.
func ReconstructInvoice(
	id uint,
	number string,
	clientID uint,
	ticketID *uint,
	items []Item,
	taxRate float64,
	status valueobjects.InvoiceStatus,
	dueDate time.Time,
	sentAt, paidAt *time.Time,
	notes string,
	createdAt, updatedAt time.Time,
) *Invoice {
	inv := &Invoice{
		id:        id,
		number:    number,
		clientID:  clientID,
		ticketID:  ticketID,
		items:     items,
		taxRate:   taxRate,
		status:    status,
		dueDate:   dueDate,
		sentAt:    sentAt,
		paidAt:    paidAt,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	inv.recompute()
	return inv
}

// GenerateNumber builds an invoice number like INV-202506-a1B2c3 from the
// issue date.
func GenerateNumber(now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", id.PrefixInvoice, now.Format("200601"), id.MustGenerate(6))
}

func (i *Invoice) ID() uint                               { return i.id }
func (i *Invoice) Number() string                         { return i.number }
func (i *Invoice) ClientID() uint                         { return i.clientID }
func (i *Invoice) TicketID() *uint                        { return i.ticketID }
func (i *Invoice) Amount() float64                        { return i.amount }
func (i *Invoice) TaxAmount() float64                     { return i.taxAmount }
func (i *Invoice) Total() float64                         { return i.total }
func (i *Invoice) TaxRate() float64                       { return i.taxRate }
func (i *Invoice) Status() valueobjects.InvoiceStatus     { return i.status }
func (i *Invoice) DueDate() time.Time                     { return i.dueDate }
func (i *Invoice) SentAt() *time.Time                     { return i.sentAt }
func (i *Invoice) PaidAt() *time.Time                     { return i.paidAt }
func (i *Invoice) Notes() string                          { return i.notes }
func (i *Invoice) CreatedAt() time.Time                   { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time                   { return i.updatedAt }

// SetID sets the ID after persistence.
func (i *Invoice) SetID(id uint) { i.id = id }

// Items returns a copy of the invoice lines.
func (i *Invoice) Items() []Item {
	items := make([]Item, len(i.items))
	copy(items, i.items)
	return items
}

// SetNotes replaces the free-text notes shown on the document.
func (i *Invoice) SetNotes(notes string) {
	i.notes = notes
	i.updatedAt = time.Now()
}

// MarkSent moves a draft to sent and stamps the send time.
func (i *Invoice) MarkSent(now time.Time) error {
	if err := i.transition(valueobjects.StatusSent); err != nil {
		return err
	}
	i.sentAt = &now
	i.updatedAt = now
	return nil
}

// MarkPaid records payment. Both sent and overdue invoices can be paid.
func (i *Invoice) MarkPaid(now time.Time) error {
	if err := i.transition(valueobjects.StatusPaid); err != nil {
		return err
	}
	i.paidAt = &now
	i.updatedAt = now
	return nil
}

// MarkOverdue flags a sent invoice past its due date.
func (i *Invoice) MarkOverdue(now time.Time) error {
	if !now.After(i.dueDate) {
		return errors.NewConflictError("invoice is not past its due date")
	}
	if err := i.transition(valueobjects.StatusOverdue); err != nil {
		return err
	}
	i.updatedAt = now
	return nil
}

// Cancel voids an unpaid invoice.
func (i *Invoice) Cancel() error {
	if err := i.transition(valueobjects.StatusCancelled); err != nil {
		return err
	}
	i.updatedAt = time.Now()
	return nil
}

// IsPastDue reports whether an unpaid invoice has blown its due date.
func (i *Invoice) IsPastDue(now time.Time) bool {
	unpaid := i.status == valueobjects.StatusSent || i.status == valueobjects.StatusOverdue
	return unpaid && now.After(i.dueDate)
}

func (i *Invoice) transition(to valueobjects.InvoiceStatus) error {
	if !i.status.CanTransitionTo(to) {
		return errors.NewValidationError(
			"cannot transition invoice from " + i.status.String() + " to " + to.String())
	}
	i.status = to
	return nil
}

func (i *Invoice) recompute() {
	var sum float64
	for _, it := range i.items {
		sum += it.Total
	}
	i.amount = round2(sum)
	i.taxAmount = round2(i.amount * i.taxRate / 100)
	i.total = round2(i.amount + i.taxAmount)
}
