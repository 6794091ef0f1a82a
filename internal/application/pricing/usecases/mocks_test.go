package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type mockRateConfigRepository struct {
	LoadFunc  func(ctx context.Context) (pricing.RateTable, bool, error)
	StoreFunc func(ctx context.Context, rt pricing.RateTable) error
}

func (m *mockRateConfigRepository) Load(ctx context.Context) (pricing.RateTable, bool, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return pricing.RateTable{}, false, nil
}

func (m *mockRateConfigRepository) Store(ctx context.Context, rt pricing.RateTable) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, rt)
	}
	return nil
}

type mockRateCache struct {
	GetFunc        func(ctx context.Context) (pricing.RateTable, bool, error)
	SetFunc        func(ctx context.Context, rt pricing.RateTable) error
	InvalidateFunc func(ctx context.Context) error

	invalidations int
	stored        []pricing.RateTable
}

func (m *mockRateCache) Get(ctx context.Context) (pricing.RateTable, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return pricing.RateTable{}, false, nil
}

func (m *mockRateCache) Set(ctx context.Context, rt pricing.RateTable) error {
	m.stored = append(m.stored, rt)
	if m.SetFunc != nil {
		return m.SetFunc(ctx, rt)
	}
	return nil
}

func (m *mockRateCache) Invalidate(ctx context.Context) error {
	m.invalidations++
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	return nil
}

type staticRates struct {
	table pricing.RateTable
}

func (s *staticRates) Execute(ctx context.Context) (pricing.RateTable, error) {
	return s.table, nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
