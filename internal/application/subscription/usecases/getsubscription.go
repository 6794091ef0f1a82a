package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/subscription"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type GetSubscriptionQuery struct {
	ClientID uint
}

type GetSubscriptionUseCase struct {
	subRepo subscription.Repository
	logger  logger.Interface
}

func NewGetSubscriptionUseCase(subRepo subscription.Repository, logger logger.Interface) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{subRepo: subRepo, logger: logger}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, query GetSubscriptionQuery) (*SubscriptionDetail, error) {
	if query.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	s, err := uc.subRepo.FindByClientID(ctx, query.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "client_id", query.ClientID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("subscription for client %d not found", query.ClientID))
	}

	return toSubscriptionDetail(s), nil
}
