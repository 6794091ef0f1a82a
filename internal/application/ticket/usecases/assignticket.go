package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/ticket"
	"github.com/techile/fieldportal/internal/domain/user"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID     uint
	TechnicianID uint
	AssignedBy   uint
}

type AssignTicketResult struct {
	TicketID     uint   `json:"ticket_id"`
	TechnicianID uint   `json:"technician_id"`
	Status       string `json:"status"`
}

type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case", "ticket_id", cmd.TicketID, "technician_id", cmd.TechnicianID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.TechnicianID == 0 {
		return nil, errors.NewValidationError("technician ID is required")
	}

	technician, err := uc.userRepo.FindByID(ctx, cmd.TechnicianID)
	if err != nil {
		uc.logger.Errorw("failed to get technician", "technician_id", cmd.TechnicianID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("technician %d not found", cmd.TechnicianID))
	}
	if !technician.IsTechnician() {
		return nil, errors.NewValidationError("assignee is not a technician")
	}
	if !technician.IsActive() {
		return nil, errors.NewValidationError("assignee account is deactivated")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if err := t.Assign(cmd.TechnicianID); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket assigned successfully", "ticket_id", t.ID(), "technician_id", cmd.TechnicianID)

	return &AssignTicketResult{
		TicketID:     t.ID(),
		TechnicianID: cmd.TechnicianID,
		Status:       t.Status().String(),
	}, nil
}
