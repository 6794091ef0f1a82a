package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

// SuspendClientAction selects the account operation to perform.
type SuspendClientAction string

const (
	ActionSuspend  SuspendClientAction = "suspend"
	ActionActivate SuspendClientAction = "activate"
	ActionCancel   SuspendClientAction = "cancel"
)

type SuspendClientCommand struct {
	ClientID uint
	Action   SuspendClientAction
}

type SuspendClientUseCase struct {
	clientRepo client.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewSuspendClientUseCase(
	clientRepo client.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *SuspendClientUseCase {
	return &SuspendClientUseCase{
		clientRepo: clientRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *SuspendClientUseCase) Execute(ctx context.Context, cmd SuspendClientCommand) (*ClientDetail, error) {
	uc.logger.Infow("executing suspend client use case", "client_id", cmd.ClientID, "action", cmd.Action)

	if cmd.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	c, err := uc.clientRepo.FindByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", cmd.ClientID))
	}

	switch cmd.Action {
	case ActionSuspend:
		err = c.Suspend()
	case ActionActivate:
		err = c.Activate()
	case ActionCancel:
		c.Cancel()
	default:
		return nil, errors.NewValidationError("invalid action", string(cmd.Action))
	}
	if err != nil {
		return nil, err
	}

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to update client")
	}

	if uc.publisher != nil && cmd.Action == ActionSuspend {
		if err := uc.publisher.Publish(client.NewClientSuspendedEvent(c)); err != nil {
			uc.logger.Warnw("failed to publish client suspended event", "client_id", c.ID(), "error", err)
		}
	}

	uc.logger.Infow("client account updated", "client_id", c.ID(), "status", c.Status())

	return toClientDetail(c), nil
}
