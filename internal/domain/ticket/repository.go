package ticket

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
)

// ListFilter narrows ticket list queries. Zero values mean no filtering.
type ListFilter struct {
	ClientID   uint
	AssigneeID uint
	Status     valueobjects.TicketStatus
	Type       valueobjects.TicketType
	Priority   valueobjects.Priority
}

// Repository persists tickets together with their checklist and notes.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter ListFilter, offset, limit int, orderBy string) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context, status valueobjects.TicketStatus) (int64, error)
}
