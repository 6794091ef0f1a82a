package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type UpdateRatesCommand struct {
	Rates pricing.RateTable
}

type UpdateRatesUseCase struct {
	configRepo RateConfigRepository
	cache      RateCache
	logger     logger.Interface
}

func NewUpdateRatesUseCase(configRepo RateConfigRepository, cache RateCache, logger logger.Interface) *UpdateRatesUseCase {
	return &UpdateRatesUseCase{configRepo: configRepo, cache: cache, logger: logger}
}

func (uc *UpdateRatesUseCase) Execute(ctx context.Context, cmd UpdateRatesCommand) (pricing.RateTable, error) {
	uc.logger.Infow("executing update rates use case")

	if err := validateRates(cmd.Rates); err != nil {
		return pricing.RateTable{}, err
	}

	rt := cmd.Rates.Normalize()
	if err := uc.configRepo.Store(ctx, rt); err != nil {
		uc.logger.Errorw("failed to store rate configuration", "error", err)
		return pricing.RateTable{}, errors.NewInternalError("failed to store rate configuration")
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			uc.logger.Warnw("rate cache invalidation failed", "error", err)
		}
	}

	uc.logger.Infow("rate configuration updated", "hourly_rate", rt.InterventionHourlyRate, "tax_rate", rt.TaxRate)
	return rt, nil
}

func validateRates(rt pricing.RateTable) error {
	fields := map[string]float64{
		"intervention_hourly_rate": rt.InterventionHourlyRate,
		"travel_rate":              rt.TravelRate,
		"urgent_surcharge":         rt.UrgentSurcharge,
		"cloud_storage_base":       rt.CloudStorageBase,
		"cloud_storage_per_gb":     rt.CloudStoragePerGB,
		"website_vitrine":          rt.WebsiteVitrine,
		"website_pme":              rt.WebsitePME,
		"website_ecommerce":        rt.WebsiteEcommerce,
		"maintenance_base":         rt.MaintenanceBase,
		"maintenance_standard":     rt.MaintenanceStandard,
		"maintenance_plus":         rt.MaintenancePlus,
		"maintenance_prestige":     rt.MaintenancePrestige,
		"tax_rate":                 rt.TaxRate,
	}
	for name, v := range fields {
		if v < 0 {
			return errors.NewValidationError("rates must not be negative", name)
		}
	}
	if rt.TaxRate > 100 {
		return errors.NewValidationError("tax rate must be a percentage", "tax_rate")
	}
	return nil
}
