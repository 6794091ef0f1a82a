package ticket

import (
	"strconv"

	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
)

const (
	EventTicketCreated       = "ticket.created"
	EventTicketStatusChanged = "ticket.status_changed"
)

// TicketCreatedEvent fires when a ticket is saved for the first time.
type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID uint   `json:"ticket_id"`
	ClientID uint   `json:"client_id"`
	Number   string `json:"number"`
	Title    string `json:"title"`
}

func NewTicketCreatedEvent(t *Ticket) *TicketCreatedEvent {
	return &TicketCreatedEvent{
		BaseEvent: events.NewBaseEvent(strconv.FormatUint(uint64(t.ID()), 10), EventTicketCreated),
		TicketID:  t.ID(),
		ClientID:  t.ClientID(),
		Number:    t.Number(),
		Title:     t.Title(),
	}
}

// TicketStatusChangedEvent fires on every lifecycle transition. The
// automation layer listens for the move to resolved on intervention
// tickets to raise the invoice.
type TicketStatusChangedEvent struct {
	events.BaseEvent
	TicketID   uint                      `json:"ticket_id"`
	ClientID   uint                      `json:"client_id"`
	Number     string                    `json:"number"`
	FromStatus valueobjects.TicketStatus `json:"from_status"`
	ToStatus   valueobjects.TicketStatus `json:"to_status"`
}

func NewTicketStatusChangedEvent(t *Ticket, from valueobjects.TicketStatus) *TicketStatusChangedEvent {
	return &TicketStatusChangedEvent{
		BaseEvent:  events.NewBaseEvent(strconv.FormatUint(uint64(t.ID()), 10), EventTicketStatusChanged),
		TicketID:   t.ID(),
		ClientID:   t.ClientID(),
		Number:     t.Number(),
		FromStatus: from,
		ToStatus:   t.Status(),
	}
}
