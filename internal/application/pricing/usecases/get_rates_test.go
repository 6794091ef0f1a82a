package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techile/fieldportal/internal/domain/pricing"
)

func TestGetRatesUseCase_Execute(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		cached := pricing.DefaultRateTable()
		cached.InterventionHourlyRate = 95
		cache := &mockRateCache{
			GetFunc: func(ctx context.Context) (pricing.RateTable, bool, error) {
				return cached, true, nil
			},
		}
		repo := &mockRateConfigRepository{
			LoadFunc: func(ctx context.Context) (pricing.RateTable, bool, error) {
				t.Fatal("repository should not be consulted on a cache hit")
				return pricing.RateTable{}, false, nil
			},
		}
		uc := NewGetRatesUseCase(repo, cache, testLogger())

		rt, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 95.0, rt.InterventionHourlyRate)
	})

	t.Run("stored table is normalized and cached", func(t *testing.T) {
		stored := pricing.RateTable{InterventionHourlyRate: 80}
		repo := &mockRateConfigRepository{
			LoadFunc: func(ctx context.Context) (pricing.RateTable, bool, error) {
				return stored, true, nil
			},
		}
		cache := &mockRateCache{}
		uc := NewGetRatesUseCase(repo, cache, testLogger())

		rt, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 80.0, rt.InterventionHourlyRate)
		assert.Equal(t, pricing.DefaultTravelRate, rt.TravelRate)
		assert.Equal(t, pricing.DefaultTaxRate, rt.TaxRate)
		require.Len(t, cache.stored, 1)
		assert.Equal(t, rt, cache.stored[0])
	})

	t.Run("missing configuration falls back to defaults", func(t *testing.T) {
		uc := NewGetRatesUseCase(&mockRateConfigRepository{}, &mockRateCache{}, testLogger())

		rt, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, pricing.DefaultRateTable(), rt)
	})

	t.Run("repository failure degrades to defaults", func(t *testing.T) {
		repo := &mockRateConfigRepository{
			LoadFunc: func(ctx context.Context) (pricing.RateTable, bool, error) {
				return pricing.RateTable{}, false, errors.New("connection refused")
			},
		}
		uc := NewGetRatesUseCase(repo, nil, testLogger())

		rt, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, pricing.DefaultRateTable(), rt)
	})
}

func TestUpdateRatesUseCase_Execute(t *testing.T) {
	t.Run("stores the normalized table and invalidates the cache", func(t *testing.T) {
		var saved pricing.RateTable
		repo := &mockRateConfigRepository{
			StoreFunc: func(ctx context.Context, rt pricing.RateTable) error {
				saved = rt
				return nil
			},
		}
		cache := &mockRateCache{}
		uc := NewUpdateRatesUseCase(repo, cache, testLogger())

		rt, err := uc.Execute(context.Background(), UpdateRatesCommand{
			Rates: pricing.RateTable{InterventionHourlyRate: 85, TaxRate: 14.975},
		})
		require.NoError(t, err)
		assert.Equal(t, 85.0, rt.InterventionHourlyRate)
		assert.Equal(t, 14.975, rt.TaxRate)
		assert.Equal(t, pricing.DefaultUrgentSurcharge, rt.UrgentSurcharge)
		assert.Equal(t, rt, saved)
		assert.Equal(t, 1, cache.invalidations)
	})

	t.Run("rejects negative rates", func(t *testing.T) {
		uc := NewUpdateRatesUseCase(&mockRateConfigRepository{}, nil, testLogger())

		_, err := uc.Execute(context.Background(), UpdateRatesCommand{
			Rates: pricing.RateTable{TravelRate: -0.10},
		})
		assert.Error(t, err)
	})

	t.Run("rejects a tax rate above 100", func(t *testing.T) {
		uc := NewUpdateRatesUseCase(&mockRateConfigRepository{}, nil, testLogger())

		_, err := uc.Execute(context.Background(), UpdateRatesCommand{
			Rates: pricing.RateTable{TaxRate: 115},
		})
		assert.Error(t, err)
	})
}
