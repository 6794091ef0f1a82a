package invoice

import (
	"context"
	"time"

	"github.com/techile/fieldportal/internal/domain/invoice/valueobjects"
)

// ListFilter narrows invoice list queries. Zero values mean no filtering.
type ListFilter struct {
	ClientID uint
	Status   valueobjects.InvoiceStatus
}

// Repository persists invoices with their line items.
type Repository interface {
	Save(ctx context.Context, inv *Invoice) error
	Update(ctx context.Context, inv *Invoice) error
	FindByID(ctx context.Context, id uint) (*Invoice, error)
	FindByNumber(ctx context.Context, number string) (*Invoice, error)
	FindByTicketID(ctx context.Context, ticketID uint) (*Invoice, error)
	List(ctx context.Context, filter ListFilter, offset, limit int, orderBy string) ([]*Invoice, int64, error)
	FindSentPastDue(ctx context.Context, asOf time.Time) ([]*Invoice, error)
	CountByStatus(ctx context.Context, status valueobjects.InvoiceStatus) (int64, error)
}
