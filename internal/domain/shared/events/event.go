// Package events defines the domain event contracts and the in-process
// dispatcher that delivers them to automation hooks.
package events

import "time"

// DomainEvent is implemented by every event an aggregate records.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetOccurredAt() time.Time
}

// BaseEvent carries the fields shared by all domain events. Concrete events
// embed it and add their own payload.
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e BaseEvent) GetAggregateID() string   { return e.AggregateID }
func (e BaseEvent) GetEventType() string     { return e.EventType }
func (e BaseEvent) GetOccurredAt() time.Time { return e.OccurredAt }

// NewBaseEvent stamps the common fields with the current time.
func NewBaseEvent(aggregateID, eventType string) BaseEvent {
	return BaseEvent{
		AggregateID: aggregateID,
		EventType:   eventType,
		OccurredAt:  time.Now(),
	}
}

// EventHandler consumes events of the types it declares via CanHandle.
type EventHandler interface {
	Handle(event DomainEvent) error
	CanHandle(eventType string) bool
}

// EventPublisher is the side use cases see: fire events, never wait on
// their handlers.
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

// EventSubscriber is the side automation hooks see at wiring time.
type EventSubscriber interface {
	Subscribe(eventType string, handler EventHandler) error
}
