// Package ticket models a service ticket through its whole life: creation,
// assignment, on-site intervention with a step checklist, resolution, and
// closure.
package ticket

import (
	"strings"
	"time"

	"github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
)

// Ticket is a client service request. Interventions additionally carry
// scheduling fields and a workflow checklist.
type Ticket struct {
	id                  uint
	number              string
	clientID            uint
	title               string
	description         string
	ticketType          valueobjects.TicketType
	priority            valueobjects.Priority
	status              valueobjects.TicketStatus
	assigneeID          *uint
	scheduledAt         *time.Time
	location            string
	distanceKM          float64
	estimatedMinutes    int
	actualMinutes       int
	interventionStarted *time.Time
	workflowSteps       []WorkflowStep
	completionPct       int
	completionNotes     string
	notes               []TechnicianNote
	resolvedAt          *time.Time
	closedAt            *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

// NewTicket creates an open ticket for a client.
func NewTicket(clientID uint, number, title, description string, ticketType valueobjects.TicketType, priority valueobjects.Priority) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if clientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}
	if title == "" {
		return nil, errors.NewValidationError("title is required")
	}
	if !ticketType.IsValid() {
		return nil, errors.NewValidationError("invalid ticket type", ticketType.String())
	}
	if !priority.IsValid() {
		return nil, errors.NewValidationError("invalid priority", priority.String())
	}

	now := time.Now()
	return &Ticket{
		number:      number,
		clientID:    clientID,
		title:       title,
		description: strings.TrimSpace(description),
		ticketType:  ticketType,
		priority:    priority,
		status:      valueobjects.StatusOpen,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	number string,
	clientID uint,
	title, description string,
	ticketType valueobjects.TicketType,
	priority valueobjects.Priority,
	status valueobjects.TicketStatus,
	assigneeID *uint,
	scheduledAt *time.Time,
	location string,
	distanceKM float64,
	estimatedMinutes, actualMinutes int,
	interventionStarted *time.Time,
	workflowSteps []WorkflowStep,
	completionNotes string,
	notes []TechnicianNote,
	resolvedAt, closedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:                  id,
		number:              number,
		clientID:            clientID,
		title:               title,
		description:         description,
		ticketType:          ticketType,
		priority:            priority,
		status:              status,
		assigneeID:          assigneeID,
		scheduledAt:         scheduledAt,
		location:            location,
		distanceKM:          distanceKM,
		estimatedMinutes:    estimatedMinutes,
		actualMinutes:       actualMinutes,
		interventionStarted: interventionStarted,
		workflowSteps:       workflowSteps,
		completionPct:       completionPercentage(workflowSteps),
		completionNotes:     completionNotes,
		notes:               notes,
		resolvedAt:          resolvedAt,
		closedAt:            closedAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (t *Ticket) ID() uint                               { return t.id }
func (t *Ticket) Number() string                         { return t.number }
func (t *Ticket) ClientID() uint                         { return t.clientID }
func (t *Ticket) Title() string                          { return t.title }
func (t *Ticket) Description() string                    { return t.description }
func (t *Ticket) Type() valueobjects.TicketType          { return t.ticketType }
func (t *Ticket) Priority() valueobjects.Priority        { return t.priority }
func (t *Ticket) Status() valueobjects.TicketStatus      { return t.status }
func (t *Ticket) AssigneeID() *uint                      { return t.assigneeID }
func (t *Ticket) ScheduledAt() *time.Time                { return t.scheduledAt }
func (t *Ticket) Location() string                       { return t.location }
func (t *Ticket) DistanceKM() float64                    { return t.distanceKM }
func (t *Ticket) EstimatedMinutes() int                  { return t.estimatedMinutes }
func (t *Ticket) ActualMinutes() int                     { return t.actualMinutes }
func (t *Ticket) InterventionStarted() *time.Time        { return t.interventionStarted }
func (t *Ticket) CompletionNotes() string                { return t.completionNotes }
func (t *Ticket) ResolvedAt() *time.Time                 { return t.resolvedAt }
func (t *Ticket) ClosedAt() *time.Time                   { return t.closedAt }
func (t *Ticket) CreatedAt() time.Time                   { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time                   { return t.updatedAt }

// SetID sets the ID after persistence.
func (t *Ticket) SetID(id uint) { t.id = id }

// WorkflowSteps returns a copy of the checklist.
func (t *Ticket) WorkflowSteps() []WorkflowStep {
	steps := make([]WorkflowStep, len(t.workflowSteps))
	copy(steps, t.workflowSteps)
	return steps
}

// CompletionPercentage is the checklist progress, 0 to 100.
func (t *Ticket) CompletionPercentage() int { return t.completionPct }

// Notes returns a copy of the technician notes in insertion order.
func (t *Ticket) Notes() []TechnicianNote {
	notes := make([]TechnicianNote, len(t.notes))
	copy(notes, t.notes)
	return notes
}

// IsUrgent reports whether the ticket bills the urgent surcharge.
func (t *Ticket) IsUrgent() bool { return t.priority.IsUrgent() }

// IsIntervention reports whether the ticket is an on-site intervention.
func (t *Ticket) IsIntervention() bool { return t.ticketType.IsIntervention() }

// Assign hands the ticket to a technician. Terminal tickets cannot be
// reassigned.
func (t *Ticket) Assign(technicianID uint) error {
	if technicianID == 0 {
		return errors.NewValidationError("technician ID is required")
	}
	if t.status.IsTerminal() {
		return errors.NewConflictError("cannot assign a " + t.status.String() + " ticket")
	}
	t.assigneeID = &technicianID
	t.updatedAt = time.Now()
	return nil
}

// Schedule sets the planned visit: when, where, how far, and the estimated
// duration in minutes.
func (t *Ticket) Schedule(at time.Time, location string, distanceKM float64, estimatedMinutes int) error {
	if t.status.IsTerminal() {
		return errors.NewConflictError("cannot schedule a " + t.status.String() + " ticket")
	}
	if distanceKM < 0 {
		return errors.NewValidationError("distance cannot be negative")
	}
	if estimatedMinutes < 0 {
		return errors.NewValidationError("estimated duration cannot be negative")
	}
	t.scheduledAt = &at
	t.location = strings.TrimSpace(location)
	t.distanceKM = distanceKM
	t.estimatedMinutes = estimatedMinutes
	t.updatedAt = time.Now()
	return nil
}

// ChangeStatus moves the ticket along the lifecycle. Only transitions in
// the table are allowed; anything else is a validation error.
func (t *Ticket) ChangeStatus(newStatus valueobjects.TicketStatus) error {
	if !newStatus.IsValid() {
		return errors.NewValidationError("invalid ticket status", newStatus.String())
	}
	if !t.status.CanTransitionTo(newStatus) {
		return errors.NewValidationError(
			"cannot transition ticket from " + t.status.String() + " to " + newStatus.String())
	}

	now := time.Now()
	t.status = newStatus
	switch newStatus {
	case valueobjects.StatusResolved:
		t.resolvedAt = &now
	case valueobjects.StatusClosed:
		t.closedAt = &now
	case valueobjects.StatusInProgress:
		// Reopening for rework clears the resolution stamp.
		t.resolvedAt = nil
	}
	t.updatedAt = now
	return nil
}

// StartIntervention moves an open ticket to in_progress, stamps the start
// time, and seeds the checklist if the ticket has none.
func (t *Ticket) StartIntervention(template WorkflowTemplate) error {
	if err := t.ChangeStatus(valueobjects.StatusInProgress); err != nil {
		return err
	}
	now := time.Now()
	t.interventionStarted = &now
	t.EnsureWorkflow(template)
	return nil
}

// EnsureWorkflow seeds the checklist from the template when the ticket has
// no steps yet. An existing checklist is never replaced.
func (t *Ticket) EnsureWorkflow(template WorkflowTemplate) {
	if len(t.workflowSteps) > 0 {
		return
	}
	if template.IsEmpty() {
		template = DefaultWorkflowTemplate()
	}
	t.workflowSteps = template.Materialize()
	t.completionPct = 0
	t.updatedAt = time.Now()
}

// SetStepCompleted toggles a checklist step. Completing a step stamps the
// time; un-completing clears both the stamp and leaves notes untouched
// unless new notes are given. Progress is recomputed on every toggle.
func (t *Ticket) SetStepCompleted(stepID int, completed bool, notes string) error {
	if t.status.IsTerminal() {
		return errors.NewConflictError("cannot update steps on a " + t.status.String() + " ticket")
	}

	idx := -1
	for i := range t.workflowSteps {
		if t.workflowSteps[i].ID == stepID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errors.NewNotFoundError("workflow step not found")
	}

	step := &t.workflowSteps[idx]
	step.Completed = completed
	if completed {
		now := time.Now()
		step.CompletedAt = &now
	} else {
		step.CompletedAt = nil
	}
	if notes != "" {
		step.Notes = notes
	}

	t.completionPct = completionPercentage(t.workflowSteps)
	t.updatedAt = time.Now()
	return nil
}

// Complete resolves an in-progress ticket. Every required checklist step
// must be done and completion notes must be provided; the actual duration
// in minutes is recorded for billing.
func (t *Ticket) Complete(notes string, actualMinutes int) error {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return errors.NewValidationError("completion notes are required")
	}
	if actualMinutes < 0 {
		return errors.NewValidationError("actual duration cannot be negative")
	}
	if missing := incompleteRequiredSteps(t.workflowSteps); len(missing) > 0 {
		return errors.NewValidationError("required steps not completed", missing...)
	}
	if err := t.ChangeStatus(valueobjects.StatusResolved); err != nil {
		return err
	}
	t.completionNotes = notes
	t.actualMinutes = actualMinutes
	return nil
}

// Cancel drops the ticket. Only open and in-progress tickets can be
// cancelled.
func (t *Ticket) Cancel() error {
	return t.ChangeStatus(valueobjects.StatusCancelled)
}

// Close archives a ticket after resolution, or closes an open one that
// needs no work.
func (t *Ticket) Close() error {
	return t.ChangeStatus(valueobjects.StatusClosed)
}
