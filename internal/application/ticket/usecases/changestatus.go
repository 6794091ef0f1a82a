package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/domain/ticket"
	vo "github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	ChangedBy uint
}

type ChangeStatusResult struct {
	TicketID  uint   `json:"ticket_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	UpdatedAt string `json:"updated_at"`
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "new_status", cmd.NewStatus)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid change status command", "error", err)
		return nil, err
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	oldStatus := t.Status()

	if err := t.ChangeStatus(newStatus); err != nil {
		uc.logger.Errorw("failed to change ticket status", "ticket_id", cmd.TicketID, "error", err)
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

	uc.logger.Infow("ticket status changed successfully", "ticket_id", t.ID(), "old_status", oldStatus, "new_status", t.Status())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
		UpdatedAt: t.UpdatedAt().Format(time.RFC3339),
	}, nil
}

func (uc *ChangeStatusUseCase) validateCommand(cmd ChangeStatusCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.NewStatus == "" {
		return errors.NewValidationError("new status is required")
	}
	if cmd.ChangedBy == 0 {
		return errors.NewValidationError("changed by user ID is required")
	}
	return nil
}
