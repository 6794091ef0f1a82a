package client

import (
	"strconv"

	"github.com/techile/fieldportal/internal/domain/shared/events"
)

const (
	EventClientCreated   = "client.created"
	EventClientSuspended = "client.suspended"
)

// ClientCreatedEvent fires when a new client account is registered. The
// automation layer sends the welcome email off this event.
type ClientCreatedEvent struct {
	events.BaseEvent
	ClientID uint   `json:"client_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// NewClientCreatedEvent builds the creation event for a saved client.
func NewClientCreatedEvent(c *Client) *ClientCreatedEvent {
	return &ClientCreatedEvent{
		BaseEvent: events.NewBaseEvent(strconv.FormatUint(uint64(c.ID()), 10), EventClientCreated),
		ClientID:  c.ID(),
		Email:     c.Email(),
		Name:      c.DisplayName(),
	}
}

// ClientSuspendedEvent fires when an account is suspended by an admin.
type ClientSuspendedEvent struct {
	events.BaseEvent
	ClientID uint   `json:"client_id"`
	Email    string `json:"email"`
}

func NewClientSuspendedEvent(c *Client) *ClientSuspendedEvent {
	return &ClientSuspendedEvent{
		BaseEvent: events.NewBaseEvent(strconv.FormatUint(uint64(c.ID()), 10), EventClientSuspended),
		ClientID:  c.ID(),
		Email:     c.Email(),
	}
}
