package invoice

import (
	"strconv"

	"github.com/techile/fieldportal/internal/domain/shared/events"
)

const (
	EventInvoiceSent    = "invoice.sent"
	EventInvoiceOverdue = "invoice.overdue"
)

// InvoiceSentEvent fires when an invoice is sent to the client.
type InvoiceSentEvent struct {
	events.BaseEvent
	InvoiceID uint    `json:"invoice_id"`
	ClientID  uint    `json:"client_id"`
	Number    string  `json:"number"`
	Total     float64 `json:"total"`
}

func NewInvoiceSentEvent(inv *Invoice) *InvoiceSentEvent {
	return &InvoiceSentEvent{
		BaseEvent: events.NewBaseEvent(strconv.FormatUint(uint64(inv.ID()), 10), EventInvoiceSent),
		InvoiceID: inv.ID(),
		ClientID:  inv.ClientID(),
		Number:    inv.Number(),
		Total:     inv.Total(),
	}
}

// InvoiceOverdueEvent fires when the overdue sweep flags an invoice. The
// automation layer sends the payment reminder off this event.
type InvoiceOverdueEvent struct {
	events.BaseEvent
	InvoiceID uint    `json:"invoice_id"`
	ClientID  uint    `json:"client_id"`
	Number    string  `json:"number"`
	Total     float64 `json:"total"`
}

func NewInvoiceOverdueEvent(inv *Invoice) *InvoiceOverdueEvent {
	return &InvoiceOverdueEvent{
		BaseEvent: events.NewBaseEvent(strconv.FormatUint(uint64(inv.ID()), 10), EventInvoiceOverdue),
		InvoiceID: inv.ID(),
		ClientID:  inv.ClientID(),
		Number:    inv.Number(),
		Total:     inv.Total(),
	}
}
