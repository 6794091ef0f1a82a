package usecases

import (
	"context"
	"strings"

	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/domain/ticket"
	vo "github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/id"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type CreateTicketCommand struct {
	ClientID    uint
	Title       string
	Description string
	Type        string
	Priority    string
}

type CreateTicketResult struct {
	TicketID uint   `json:"ticket_id"`
	Number   string `json:"number"`
	Status   string `json:"status"`
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "client_id", cmd.ClientID, "type", cmd.Type)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	ticketType, err := vo.NewTicketType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := id.GenerateWithPrefix(id.PrefixTicket, 8)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewInternalError("failed to generate ticket number")
	}

	t, err := ticket.NewTicket(cmd.ClientID, number, cmd.Title, cmd.Description, ticketType, priority)
	if err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to save ticket")
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ticket.NewTicketCreatedEvent(t)); err != nil {
			uc.logger.Warnw("failed to publish ticket created event", "ticket_id", t.ID(), "error", err)
		}
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID(), "number", t.Number())

	return &CreateTicketResult{
		TicketID: t.ID(),
		Number:   t.Number(),
		Status:   t.Status().String(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.ClientID == 0 {
		return errors.NewValidationError("client ID is required")
	}
	if strings.TrimSpace(cmd.Title) == "" {
		return errors.NewValidationError("title is required")
	}
	return nil
}
