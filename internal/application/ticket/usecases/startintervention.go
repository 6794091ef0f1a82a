package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/domain/ticket"
	vo "github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type StartInterventionCommand struct {
	TicketID     uint
	TechnicianID uint
}

type StartInterventionUseCase struct {
	ticketRepo ticket.Repository
	templates  WorkflowTemplateProvider
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewStartInterventionUseCase(
	ticketRepo ticket.Repository,
	templates WorkflowTemplateProvider,
	publisher events.EventPublisher,
	logger logger.Interface,
) *StartInterventionUseCase {
	return &StartInterventionUseCase{
		ticketRepo: ticketRepo,
		templates:  templates,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *StartInterventionUseCase) Execute(ctx context.Context, cmd StartInterventionCommand) (*TicketDetail, error) {
	uc.logger.Infow("executing start intervention use case", "ticket_id", cmd.TicketID, "technician_id", cmd.TechnicianID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.TechnicianID == 0 {
		return nil, errors.NewValidationError("technician ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if t.AssigneeID() == nil || *t.AssigneeID() != cmd.TechnicianID {
		return nil, errors.NewForbiddenError("ticket is not assigned to this technician")
	}

	oldStatus := t.Status()

	var template ticket.WorkflowTemplate
	if uc.templates != nil {
		template = uc.templates.Template()
	}
	if err := t.StartIntervention(template); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	if uc.publisher != nil && oldStatus != vo.StatusInProgress {
		if err := uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus)); err != nil {
			uc.logger.Warnw("failed to publish status changed event", "ticket_id", t.ID(), "error", err)
		}
	}

	uc.logger.Infow("intervention started", "ticket_id", t.ID(), "steps", len(t.WorkflowSteps()))

	return toTicketDetail(t), nil
}
