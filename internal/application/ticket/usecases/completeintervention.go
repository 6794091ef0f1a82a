package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/domain/ticket"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type CompleteInterventionCommand struct {
	TicketID      uint
	TechnicianID  uint
	Notes         string
	ActualMinutes int
}

type CompleteInterventionUseCase struct {
	ticketRepo ticket.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewCompleteInterventionUseCase(
	ticketRepo ticket.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CompleteInterventionUseCase {
	return &CompleteInterventionUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *CompleteInterventionUseCase) Execute(ctx context.Context, cmd CompleteInterventionCommand) (*TicketDetail, error) {
	uc.logger.Infow("executing complete intervention use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if cmd.TechnicianID != 0 && (t.AssigneeID() == nil || *t.AssigneeID() != cmd.TechnicianID) {
		return nil, errors.NewForbiddenError("ticket is not assigned to this technician")
	}

	oldStatus := t.Status()

	if err := t.Complete(cmd.Notes, cmd.ActualMinutes); err != nil {
		uc.logger.Warnw("intervention completion rejected", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	// The resolved transition drives the auto-invoice automation.
	if uc.publisher != nil {
		if err := uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus)); err != nil {
			uc.logger.Warnw("failed to publish status changed event", "ticket_id", t.ID(), "error", err)
		}
	}

	uc.logger.Infow("intervention completed", "ticket_id", t.ID(), "actual_minutes", cmd.ActualMinutes)

	return toTicketDetail(t), nil
}
