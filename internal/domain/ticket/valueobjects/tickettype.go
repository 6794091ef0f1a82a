package valueobjects

import "fmt"

// TicketType classifies the kind of work a ticket requests.
type TicketType string

const (
	TypeIntervention TicketType = "intervention"
	TypeSupport      TicketType = "support"
	TypeBilling      TicketType = "billing"
	TypeGeneral      TicketType = "general"
)

var validTicketTypes = map[TicketType]bool{
	TypeIntervention: true,
	TypeSupport:      true,
	TypeBilling:      true,
	TypeGeneral:      true,
}

func (tt TicketType) String() string {
	return string(tt)
}

func (tt TicketType) IsValid() bool {
	return validTicketTypes[tt]
}

// IsIntervention reports whether the ticket requires an on-site visit.
// Intervention tickets carry a workflow checklist and are billable by duration.
func (tt TicketType) IsIntervention() bool {
	return tt == TypeIntervention
}

func NewTicketType(s string) (TicketType, error) {
	tt := TicketType(s)
	if !tt.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return tt, nil
}
