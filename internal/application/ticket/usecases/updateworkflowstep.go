package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/ticket"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type UpdateWorkflowStepCommand struct {
	TicketID     uint
	TechnicianID uint
	StepID       int
	Completed    bool
	Notes        string
}

type UpdateWorkflowStepUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateWorkflowStepUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateWorkflowStepUseCase {
	return &UpdateWorkflowStepUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *UpdateWorkflowStepUseCase) Execute(ctx context.Context, cmd UpdateWorkflowStepCommand) (*TicketDetail, error) {
	uc.logger.Infow("executing update workflow step use case",
		"ticket_id", cmd.TicketID, "step_id", cmd.StepID, "completed", cmd.Completed)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.StepID <= 0 {
		return nil, errors.NewValidationError("step ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if cmd.TechnicianID != 0 && (t.AssigneeID() == nil || *t.AssigneeID() != cmd.TechnicianID) {
		return nil, errors.NewForbiddenError("ticket is not assigned to this technician")
	}

	if err := t.SetStepCompleted(cmd.StepID, cmd.Completed, cmd.Notes); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("workflow step updated", "ticket_id", t.ID(), "step_id", cmd.StepID, "completion", t.CompletionPercentage())

	return toTicketDetail(t), nil
}
