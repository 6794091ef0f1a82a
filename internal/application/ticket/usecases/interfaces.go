package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/ticket"
)

// WorkflowTemplateProvider supplies the intervention checklist template.
// The infrastructure implementation reads it from a YAML file and falls
// back to the built-in eight-step list.
type WorkflowTemplateProvider interface {
	Template() ticket.WorkflowTemplate
}

// CreateTicketExecutor creates tickets.
type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

// GetTicketExecutor fetches a single ticket.
type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketDetail, error)
}

// ListTicketsExecutor lists tickets with filters and pagination.
type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

// AssignTicketExecutor assigns tickets to technicians.
type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

// ChangeStatusExecutor moves tickets along the lifecycle.
type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

// StartInterventionExecutor begins on-site work on a ticket.
type StartInterventionExecutor interface {
	Execute(ctx context.Context, cmd StartInterventionCommand) (*TicketDetail, error)
}

// UpdateWorkflowStepExecutor toggles checklist steps.
type UpdateWorkflowStepExecutor interface {
	Execute(ctx context.Context, cmd UpdateWorkflowStepCommand) (*TicketDetail, error)
}

// CompleteInterventionExecutor resolves a ticket after the checklist gate.
type CompleteInterventionExecutor interface {
	Execute(ctx context.Context, cmd CompleteInterventionCommand) (*TicketDetail, error)
}

// AddNoteExecutor appends technician notes.
type AddNoteExecutor interface {
	Execute(ctx context.Context, cmd AddNoteCommand) (*TicketDetail, error)
}

// CancelTicketExecutor cancels tickets.
type CancelTicketExecutor interface {
	Execute(ctx context.Context, cmd CancelTicketCommand) (*ChangeStatusResult, error)
}

// ScheduleTicketExecutor plans the on-site visit.
type ScheduleTicketExecutor interface {
	Execute(ctx context.Context, cmd ScheduleTicketCommand) (*TicketDetail, error)
}
