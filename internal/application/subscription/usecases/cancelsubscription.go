package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/techile/fieldportal/internal/domain/subscription"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	ClientID uint
}

type CancelSubscriptionUseCase struct {
	subRepo subscription.Repository
	logger  logger.Interface
}

func NewCancelSubscriptionUseCase(subRepo subscription.Repository, logger logger.Interface) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{subRepo: subRepo, logger: logger}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*SubscriptionDetail, error) {
	uc.logger.Infow("executing cancel subscription use case", "client_id", cmd.ClientID)

	if cmd.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	s, err := uc.subRepo.FindByClientID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("subscription for client %d not found", cmd.ClientID))
	}

	if err := s.Cancel(time.Now()); err != nil {
		return nil, err
	}

	if err := uc.subRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update subscription", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to update subscription")
	}

	uc.logger.Infow("subscription cancelled", "client_id", cmd.ClientID, "subscription_id", s.ID())
	return toSubscriptionDetail(s), nil
}
