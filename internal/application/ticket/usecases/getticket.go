package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/ticket"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	// ClientID restricts the lookup to tickets owned by this client when
	// non-zero. Admin and technician callers leave it zero.
	ClientID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDetail, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	if query.ClientID != 0 && t.ClientID() != query.ClientID {
		return nil, errors.NewForbiddenError("ticket belongs to another client")
	}

	return toTicketDetail(t), nil
}
