package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/client"
	clvo "github.com/techile/fieldportal/internal/domain/client/valueobjects"
	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/domain/subscription"
	vo "github.com/techile/fieldportal/internal/domain/subscription/valueobjects"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type mockSubscriptionRepository struct {
	SaveFunc           func(ctx context.Context, s *subscription.Subscription) error
	UpdateFunc         func(ctx context.Context, s *subscription.Subscription) error
	FindByIDFunc       func(ctx context.Context, id uint) (*subscription.Subscription, error)
	FindByClientIDFunc func(ctx context.Context, clientID uint) (*subscription.Subscription, error)
	ListByStatusFunc   func(ctx context.Context, status vo.SubscriptionStatus) ([]*subscription.Subscription, error)
}

func (m *mockSubscriptionRepository) Save(ctx context.Context, s *subscription.Subscription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriptionRepository) FindByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) FindByClientID(ctx context.Context, clientID uint) (*subscription.Subscription, error) {
	if m.FindByClientIDFunc != nil {
		return m.FindByClientIDFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListByStatus(ctx context.Context, status vo.SubscriptionStatus) ([]*subscription.Subscription, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return nil, nil
}

type mockClientRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*client.Client, error)
	UpdateFunc   func(ctx context.Context, c *client.Client) error
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error { return nil }

func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) FindByID(ctx context.Context, id uint) (*client.Client, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClientRepository) FindByUserID(ctx context.Context, userID uint) (*client.Client, error) {
	return nil, nil
}

func (m *mockClientRepository) FindByEmail(ctx context.Context, email string) (*client.Client, error) {
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context, filter client.ListFilter, offset, limit int, orderBy string) ([]*client.Client, int64, error) {
	return nil, 0, nil
}

func (m *mockClientRepository) CountByStatus(ctx context.Context, status clvo.ClientStatus) (int64, error) {
	return 0, nil
}

type staticRateProvider struct {
	table pricing.RateTable
}

func (p *staticRateProvider) Rates(ctx context.Context) pricing.RateTable {
	return p.table
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
