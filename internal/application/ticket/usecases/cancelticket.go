package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/domain/ticket"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type CancelTicketCommand struct {
	TicketID    uint
	CancelledBy uint
	// ClientID restricts cancellation to the owning client when non-zero.
	ClientID uint
}

type CancelTicketUseCase struct {
	ticketRepo ticket.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewCancelTicketUseCase(
	ticketRepo ticket.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CancelTicketUseCase {
	return &CancelTicketUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *CancelTicketUseCase) Execute(ctx context.Context, cmd CancelTicketCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing cancel ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if cmd.ClientID != 0 && t.ClientID() != cmd.ClientID {
		return nil, errors.NewForbiddenError("ticket belongs to another client")
	}

	oldStatus := t.Status()

	if err := t.Cancel(); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus)); err != nil {
			uc.logger.Warnw("failed to publish status changed event", "ticket_id", t.ID(), "error", err)
		}
	}

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
		UpdatedAt: t.UpdatedAt().Format(time.RFC3339),
	}, nil
}
