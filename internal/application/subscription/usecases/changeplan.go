package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/domain/subscription"
	vo "github.com/techile/fieldportal/internal/domain/subscription/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type ChangePlanCommand struct {
	ClientID uint
	// Tier switches the maintenance plan when set.
	Tier string
	// Cycle switches the billing cycle when set.
	Cycle string
}

// ChangePlanUseCase switches a client's plan tier or billing cycle. The
// new price always comes from the published rate table, and the client's
// cloud quota follows the tier.
type ChangePlanUseCase struct {
	subRepo    subscription.Repository
	clientRepo client.Repository
	rates      RateProvider
	logger     logger.Interface
}

func NewChangePlanUseCase(
	subRepo subscription.Repository,
	clientRepo client.Repository,
	rates RateProvider,
	logger logger.Interface,
) *ChangePlanUseCase {
	return &ChangePlanUseCase{subRepo: subRepo, clientRepo: clientRepo, rates: rates, logger: logger}
}

func (uc *ChangePlanUseCase) Execute(ctx context.Context, cmd ChangePlanCommand) (*SubscriptionDetail, error) {
	uc.logger.Infow("executing change plan use case", "client_id", cmd.ClientID, "tier", cmd.Tier, "cycle", cmd.Cycle)

	if cmd.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}
	if cmd.Tier == "" && cmd.Cycle == "" {
		return nil, errors.NewValidationError("a new tier or cycle is required")
	}

	c, err := uc.clientRepo.FindByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", cmd.ClientID))
	}
	if !c.CanPurchase() {
		return nil, errors.NewConflictError("client profile is incomplete or account is not active")
	}

	s, err := uc.subRepo.FindByClientID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("subscription for client %d not found", cmd.ClientID))
	}

	rt := uc.rates.Rates(ctx)
	now := time.Now()

	if cmd.Tier != "" {
		tier := vo.PlanTier(cmd.Tier)
		if !tier.IsValid() {
			return nil, errors.NewValidationError("invalid plan tier", cmd.Tier)
		}
		if err := s.ChangePlan(tier, rt, now); err != nil {
			return nil, err
		}
	}
	if cmd.Cycle != "" {
		cycle := vo.BillingCycle(cmd.Cycle)
		if !cycle.IsValid() {
			return nil, errors.NewValidationError("invalid billing cycle", cmd.Cycle)
		}
		if err := s.ChangeCycle(cycle, rt, now); err != nil {
			return nil, err
		}
	}

	if err := uc.subRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update subscription", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to update subscription")
	}

	if cmd.Tier != "" {
		if err := c.SetCloudQuota(s.CloudQuotaGB()); err == nil {
			if err := uc.clientRepo.Update(ctx, c); err != nil {
				uc.logger.Warnw("failed to sync cloud quota", "client_id", cmd.ClientID, "error", err)
			}
		}
	}

	uc.logger.Infow("subscription plan changed",
		"client_id", cmd.ClientID, "tier", s.Tier(), "cycle", s.Cycle(), "price", s.Price())
	return toSubscriptionDetail(s), nil
}
