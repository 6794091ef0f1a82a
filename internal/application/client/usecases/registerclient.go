package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/domain/subscription"
	subvo "github.com/techile/fieldportal/internal/domain/subscription/valueobjects"
	"github.com/techile/fieldportal/internal/domain/user"
	"github.com/techile/fieldportal/internal/shared/authorization"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type RegisterClientCommand struct {
	Email       string
	Password    string
	CompanyName string
	FirstName   string
	LastName    string
}

type RegisterClientResult struct {
	ClientID       uint    `json:"client_id"`
	UserID         uint    `json:"user_id"`
	SubscriptionID uint    `json:"subscription_id"`
	PlanTier       string  `json:"plan_tier"`
	CloudQuotaGB   float64 `json:"cloud_quota_gb"`
}

// RateProvider returns the currently published rate table.
type RateProvider interface {
	Rates(ctx context.Context) pricing.RateTable
}

type RegisterClientUseCase struct {
	clientRepo client.Repository
	userRepo   user.Repository
	subRepo    subscription.Repository
	hasher     PasswordHasher
	rates      RateProvider
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewRegisterClientUseCase(
	clientRepo client.Repository,
	userRepo user.Repository,
	subRepo subscription.Repository,
	hasher PasswordHasher,
	rates RateProvider,
	publisher events.EventPublisher,
	logger logger.Interface,
) *RegisterClientUseCase {
	return &RegisterClientUseCase{
		clientRepo: clientRepo,
		userRepo:   userRepo,
		subRepo:    subRepo,
		hasher:     hasher,
		rates:      rates,
		publisher:  publisher,
		logger:     logger,
	}
}

// Execute creates the portal account, the client record, and the default
// base subscription with its cloud quota.
func (uc *RegisterClientUseCase) Execute(ctx context.Context, cmd RegisterClientCommand) (*RegisterClientResult, error) {
	uc.logger.Infow("executing register client use case", "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid register client command", "error", err)
		return nil, err
	}

	if existing, _ := uc.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(cmd.Email))); existing != nil {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	displayName := strings.TrimSpace(cmd.FirstName + " " + cmd.LastName)
	u, err := user.NewUser(cmd.Email, hash, displayName, authorization.RoleClient)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.Save(ctx, u); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("an account with this email already exists")
		}
		return nil, errors.NewInternalError("failed to create account")
	}

	c, err := client.NewClient(u.ID(), cmd.Email, cmd.CompanyName)
	if err != nil {
		return nil, err
	}
	c.UpdateProfile(client.ProfileUpdate{
		CompanyName: cmd.CompanyName,
		FirstName:   cmd.FirstName,
		LastName:    cmd.LastName,
	})

	if err := c.SetCloudQuota(subvo.TierBase.CloudQuotaGB()); err != nil {
		return nil, err
	}
	if err := uc.clientRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save client", "error", err)
		return nil, errors.NewInternalError("failed to create client")
	}

	rt := pricing.DefaultRateTable()
	if uc.rates != nil {
		rt = uc.rates.Rates(ctx)
	}
	sub, err := subscription.NewSubscription(c.ID(), subvo.TierBase, subvo.CycleMonthly, rt, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.subRepo.Save(ctx, sub); err != nil {
		uc.logger.Errorw("failed to save subscription", "error", err)
		return nil, errors.NewInternalError("failed to create subscription")
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(client.NewClientCreatedEvent(c)); err != nil {
			uc.logger.Warnw("failed to publish client created event", "client_id", c.ID(), "error", err)
		}
	}

	uc.logger.Infow("client registered successfully", "client_id", c.ID(), "user_id", u.ID())

	return &RegisterClientResult{
		ClientID:       c.ID(),
		UserID:         u.ID(),
		SubscriptionID: sub.ID(),
		PlanTier:       sub.Tier().String(),
		CloudQuotaGB:   c.CloudQuotaGB(),
	}, nil
}

func (uc *RegisterClientUseCase) validateCommand(cmd RegisterClientCommand) error {
	if strings.TrimSpace(cmd.Email) == "" {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	return nil
}
