package valueobjects

import "fmt"

// TicketStatus represents the lifecycle state of a ticket.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
	StatusCancelled  TicketStatus = "cancelled"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
	StatusCancelled:  true,
}

// ticketStatusTransitions is the authoritative transition table. Closed and
// cancelled are terminal; resolved tickets can be reopened for rework or
// closed for good.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusInProgress,
		StatusClosed,
		StatusCancelled,
	},
	StatusInProgress: {
		StatusResolved,
		StatusCancelled,
	},
	StatusResolved: {
		StatusClosed,
		StatusInProgress,
	},
	StatusClosed:    {},
	StatusCancelled: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
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

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func (ts TicketStatus) IsCancelled() bool {
	return ts == StatusCancelled
}

// IsTerminal reports whether no further transitions are possible.
func (ts TicketStatus) IsTerminal() bool {
	return len(ticketStatusTransitions[ts]) == 0
}

// IsPending reports whether the ticket still needs attention.
func (ts TicketStatus) IsPending() bool {
	return ts == StatusOpen || ts == StatusInProgress
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
