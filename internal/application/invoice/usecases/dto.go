package usecases

import (
	"time"

	"github.com/techile/fieldportal/internal/domain/invoice"
)

// InvoiceItem is one line of an invoice as exposed to callers.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// InvoiceDetail is the full invoice view returned by the use cases.
type InvoiceDetail struct {
	ID        uint          `json:"id"`
	Number    string        `json:"number"`
	ClientID  uint          `json:"client_id"`
	TicketID  *uint         `json:"ticket_id,omitempty"`
	Items     []InvoiceItem `json:"items"`
	Amount    float64       `json:"amount"`
	TaxAmount float64       `json:"tax_amount"`
	Total     float64       `json:"total"`
	TaxRate   float64       `json:"tax_rate"`
	Status    string        `json:"status"`
	DueDate   time.Time     `json:"due_date"`
	SentAt    *time.Time    `json:"sent_at,omitempty"`
	PaidAt    *time.Time    `json:"paid_at,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// InvoiceList is a paginated page of invoices.
type InvoiceList struct {
	Invoices []InvoiceDetail `json:"invoices"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

func toInvoiceDetail(inv *invoice.Invoice) *InvoiceDetail {
	items := make([]InvoiceItem, 0, len(inv.Items()))
	for _, it := range inv.Items() {
		items = append(items, InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return &InvoiceDetail{
		ID:        inv.ID(),
		Number:    inv.Number(),
		ClientID:  inv.ClientID(),
		TicketID:  inv.TicketID(),
		Items:     items,
		Amount:    inv.Amount(),
		TaxAmount: inv.TaxAmount(),
		Total:     inv.Total(),
		TaxRate:   inv.TaxRate(),
		Status:    inv.Status().String(),
		DueDate:   inv.DueDate(),
		SentAt:    inv.SentAt(),
		PaidAt:    inv.PaidAt(),
		Notes:     inv.Notes(),
		CreatedAt: inv.CreatedAt(),
		UpdatedAt: inv.UpdatedAt(),
	}
}
