package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/pricing"
)

// RateConfigRepository persists the single configured rate table. Load
// reports found=false when no table has ever been stored.
type RateConfigRepository interface {
	Load(ctx context.Context) (pricing.RateTable, bool, error)
	Store(ctx context.Context, rt pricing.RateTable) error
}

// RateCache is a read-through cache in front of the rate configuration.
// All methods are best-effort; callers fall back to the repository.
type RateCache interface {
	Get(ctx context.Context) (pricing.RateTable, bool, error)
	Set(ctx context.Context, rt pricing.RateTable) error
	Invalidate(ctx context.Context) error
}

// GetRatesExecutor resolves the currently effective rate table.
type GetRatesExecutor interface {
	Execute(ctx context.Context) (pricing.RateTable, error)
}

// UpdateRatesExecutor replaces the configured rate table.
type UpdateRatesExecutor interface {
	Execute(ctx context.Context, cmd UpdateRatesCommand) (pricing.RateTable, error)
}

// GenerateQuoteExecutor prices a multi-service quote request.
type GenerateQuoteExecutor interface {
	Execute(ctx context.Context, cmd GenerateQuoteCommand) (*pricing.Quote, error)
}
