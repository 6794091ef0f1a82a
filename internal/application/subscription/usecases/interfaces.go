package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/pricing"
)

// RateProvider returns the currently published rate table.
type RateProvider interface {
	Rates(ctx context.Context) pricing.RateTable
}

type GetSubscriptionExecutor interface {
	Execute(ctx context.Context, query GetSubscriptionQuery) (*SubscriptionDetail, error)
}

type ChangePlanExecutor interface {
	Execute(ctx context.Context, cmd ChangePlanCommand) (*SubscriptionDetail, error)
}

type CancelSubscriptionExecutor interface {
	Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*SubscriptionDetail, error)
}
