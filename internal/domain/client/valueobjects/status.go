package valueobjects

import "fmt"

// ClientStatus represents the account state of a client.
// Clients are never hard-deleted; cancellation is a status change.
type ClientStatus string

const (
	StatusActive    ClientStatus = "active"
	StatusSuspended ClientStatus = "suspended"
	StatusCancelled ClientStatus = "cancelled"
)

var validClientStatuses = map[ClientStatus]bool{
	StatusActive:    true,
	StatusSuspended: true,
	StatusCancelled: true,
}

func (cs ClientStatus) String() string {
	return string(cs)
}

func (cs ClientStatus) IsValid() bool {
	return validClientStatuses[cs]
}

func (cs ClientStatus) IsActive() bool {
	return cs == StatusActive
}

func NewClientStatus(s string) (ClientStatus, error) {
	cs := ClientStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid client status: %s", s)
	}
	return cs, nil
}
