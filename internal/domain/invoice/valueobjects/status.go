package valueobjects

import "fmt"

// InvoiceStatus represents the billing state of an invoice.
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "draft"
	StatusSent      InvoiceStatus = "sent"
	StatusPaid      InvoiceStatus = "paid"
	StatusOverdue   InvoiceStatus = "overdue"
	StatusCancelled InvoiceStatus = "cancelled"
)

var validInvoiceStatuses = map[InvoiceStatus]bool{
	StatusDraft:     true,
	StatusSent:      true,
	StatusPaid:      true,
	StatusOverdue:   true,
	StatusCancelled: true,
}

// invoiceStatusTransitions is the authoritative transition table.
// Overdue invoices can still be paid; paid and cancelled are terminal.
var invoiceStatusTransitions = map[InvoiceStatus][]InvoiceStatus{
	StatusDraft: {
		StatusSent,
		StatusCancelled,
	},
	StatusSent: {
		StatusPaid,
		StatusOverdue,
		StatusCancelled,
	},
	StatusOverdue: {
		StatusPaid,
		StatusCancelled,
	},
	StatusPaid:      {},
	StatusCancelled: {},
}

func (is InvoiceStatus) String() string {
	return string(is)
}

func (is InvoiceStatus) IsValid() bool {
	return validInvoiceStatuses[is]
}

func (is InvoiceStatus) CanTransitionTo(newStatus InvoiceStatus) bool {
	allowedTransitions, ok := invoiceStatusTransitions[is]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (is InvoiceStatus) IsDraft() bool {
	return is == StatusDraft
}

func (is InvoiceStatus) IsSent() bool {
	return is == StatusSent
}

func (is InvoiceStatus) IsPaid() bool {
	return is == StatusPaid
}

func (is InvoiceStatus) IsOverdue() bool {
	return is == StatusOverdue
}

func (is InvoiceStatus) IsCancelled() bool {
	return is == StatusCancelled
}

func NewInvoiceStatus(s string) (InvoiceStatus, error) {
	is := InvoiceStatus(s)
	if !is.IsValid() {
		return "", fmt.Errorf("invalid invoice status: %s", s)
	}
	return is, nil
}
