package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/ticket"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type AddNoteCommand struct {
	TicketID uint
	AuthorID uint
	NoteType string
	Content  string
}

type AddNoteUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAddNoteUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AddNoteUseCase {
	return &AddNoteUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*TicketDetail, error) {
	uc.logger.Infow("executing add note use case", "ticket_id", cmd.TicketID, "type", cmd.NoteType)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if err := t.AddNote(ticket.NoteType(cmd.NoteType), cmd.AuthorID, cmd.Content); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	return toTicketDetail(t), nil
}
