package usecases

import (
	"time"

	"github.com/techile/fieldportal/internal/domain/ticket"
)

// TicketDetail is the full ticket view returned by most use cases.
type TicketDetail struct {
	ID                   uint                    `json:"id"`
	Number               string                  `json:"number"`
	ClientID             uint                    `json:"client_id"`
	Title                string                  `json:"title"`
	Description          string                  `json:"description,omitempty"`
	Type                 string                  `json:"type"`
	Priority             string                  `json:"priority"`
	Status               string                  `json:"status"`
	AssigneeID           *uint                   `json:"assignee_id,omitempty"`
	ScheduledAt          *time.Time              `json:"scheduled_at,omitempty"`
	Location             string                  `json:"location,omitempty"`
	DistanceKM           float64                 `json:"distance_km,omitempty"`
	EstimatedMinutes     int                     `json:"estimated_minutes,omitempty"`
	ActualMinutes        int                     `json:"actual_minutes,omitempty"`
	InterventionStarted  *time.Time              `json:"intervention_started,omitempty"`
	WorkflowSteps        []ticket.WorkflowStep   `json:"workflow_steps,omitempty"`
	CompletionPercentage int                     `json:"completion_percentage"`
	CompletionNotes      string                  `json:"completion_notes,omitempty"`
	Notes                []ticket.TechnicianNote `json:"notes,omitempty"`
	ResolvedAt           *time.Time              `json:"resolved_at,omitempty"`
	ClosedAt             *time.Time              `json:"closed_at,omitempty"`
	CreatedAt            time.Time               `json:"created_at"`
	UpdatedAt            time.Time               `json:"updated_at"`
}

func toTicketDetail(t *ticket.Ticket) *TicketDetail {
	return &TicketDetail{
		ID:                   t.ID(),
		Number:               t.Number(),
		ClientID:             t.ClientID(),
		Title:                t.Title(),
		Description:          t.Description(),
		Type:                 t.Type().String(),
		Priority:             t.Priority().String(),
		Status:               t.Status().String(),
		AssigneeID:           t.AssigneeID(),
		ScheduledAt:          t.ScheduledAt(),
		Location:             t.Location(),
		DistanceKM:           t.DistanceKM(),
		EstimatedMinutes:     t.EstimatedMinutes(),
		ActualMinutes:        t.ActualMinutes(),
		InterventionStarted:  t.InterventionStarted(),
		WorkflowSteps:        t.WorkflowSteps(),
		CompletionPercentage: t.CompletionPercentage(),
		CompletionNotes:      t.CompletionNotes(),
		Notes:                t.Notes(),
		ResolvedAt:           t.ResolvedAt(),
		ClosedAt:             t.ClosedAt(),
		CreatedAt:            t.CreatedAt(),
		UpdatedAt:            t.UpdatedAt(),
	}
}
