package valueobjects

import "fmt"

// ClientPriority is the service priority tier assigned by the back office.
type ClientPriority string

const (
	PriorityLow    ClientPriority = "low"
	PriorityNormal ClientPriority = "normal"
	PriorityHigh   ClientPriority = "high"
)

func (cp ClientPriority) String() string {
	return string(cp)
}

func (cp ClientPriority) IsValid() bool {
	return cp == PriorityLow || cp == PriorityNormal || cp == PriorityHigh
}

func NewClientPriority(s string) (ClientPriority, error) {
	cp := ClientPriority(s)
	if !cp.IsValid() {
		return "", fmt.Errorf("invalid client priority: %s", s)
	}
	return cp, nil
}
