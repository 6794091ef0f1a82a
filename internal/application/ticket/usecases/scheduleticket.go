package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/techile/fieldportal/internal/domain/ticket"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type ScheduleTicketCommand struct {
	TicketID         uint
	ScheduledAt      time.Time
	Location         string
	DistanceKM       float64
	EstimatedMinutes int
}

type ScheduleTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewScheduleTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ScheduleTicketUseCase {
	return &ScheduleTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ScheduleTicketUseCase) Execute(ctx context.Context, cmd ScheduleTicketCommand) (*TicketDetail, error) {
	uc.logger.Infow("executing schedule ticket use case", "ticket_id", cmd.TicketID, "scheduled_at", cmd.ScheduledAt)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.ScheduledAt.IsZero() {
		return nil, errors.NewValidationError("scheduled time is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if err := t.Schedule(cmd.ScheduledAt, cmd.Location, cmd.DistanceKM, cmd.EstimatedMinutes); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	return toTicketDetail(t), nil
}
