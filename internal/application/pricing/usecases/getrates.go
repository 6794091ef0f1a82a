package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type GetRatesUseCase struct {
	configRepo RateConfigRepository
	cache      RateCache
	logger     logger.Interface
}

func NewGetRatesUseCase(configRepo RateConfigRepository, cache RateCache, logger logger.Interface) *GetRatesUseCase {
	return &GetRatesUseCase{configRepo: configRepo, cache: cache, logger: logger}
}

// Execute returns the effective rate table: cache first, then the persisted
// configuration, then the published defaults. Stored tables are normalized
// so zero-valued fields never reach a calculator.
func (uc *GetRatesUseCase) Execute(ctx context.Context) (pricing.RateTable, error) {
	if uc.cache != nil {
		rt, found, err := uc.cache.Get(ctx)
		if err != nil {
			uc.logger.Warnw("rate cache read failed", "error", err)
		} else if found {
			return rt, nil
		}
	}

	rt, found, err := uc.configRepo.Load(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load rate configuration", "error", err)
		return pricing.DefaultRateTable(), nil
	}
	if !found {
		rt = pricing.DefaultRateTable()
	} else {
		rt = rt.Normalize()
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, rt); err != nil {
			uc.logger.Warnw("rate cache write failed", "error", err)
		}
	}
	return rt, nil
}

// Rates adapts Execute to callers that only need a table and can accept the
// published defaults when resolution fails.
func (uc *GetRatesUseCase) Rates(ctx context.Context) pricing.RateTable {
	rt, err := uc.Execute(ctx)
	if err != nil {
		return pricing.DefaultRateTable()
	}
	return rt
}
