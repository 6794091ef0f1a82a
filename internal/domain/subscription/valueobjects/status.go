package valueobjects

import "fmt"

// SubscriptionStatus represents the billing state of a subscription.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusPastDue   SubscriptionStatus = "past_due"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusSuspended SubscriptionStatus = "suspended"
)

var validSubscriptionStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusPastDue:   true,
	StatusCancelled: true,
	StatusSuspended: true,
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) IsValid() bool {
	return validSubscriptionStatuses[s]
}

func (s SubscriptionStatus) IsActive() bool {
	return s == StatusActive
}

func (s SubscriptionStatus) IsCancelled() bool {
	return s == StatusCancelled
}

func NewSubscriptionStatus(s string) (SubscriptionStatus, error) {
	st := SubscriptionStatus(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid subscription status: %s", s)
	}
	return st, nil
}
