package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/client"
	vo "github.com/techile/fieldportal/internal/domain/client/valueobjects"
	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/domain/subscription"
	subvo "github.com/techile/fieldportal/internal/domain/subscription/valueobjects"
	"github.com/techile/fieldportal/internal/domain/user"
	"github.com/techile/fieldportal/internal/shared/authorization"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type mockClientRepository struct {
	SaveFunc          func(ctx context.Context, c *client.Client) error
	UpdateFunc        func(ctx context.Context, c *client.Client) error
	FindByIDFunc      func(ctx context.Context, id uint) (*client.Client, error)
	FindByUserIDFunc  func(ctx context.Context, userID uint) (*client.Client, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*client.Client, error)
	ListFunc          func(ctx context.Context, filter client.ListFilter, offset, limit int, orderBy string) ([]*client.Client, int64, error)
	CountByStatusFunc func(ctx context.Context, status vo.ClientStatus) (int64, error)
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

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
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockClientRepository) FindByEmail(ctx context.Context, email string) (*client.Client, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context, filter client.ListFilter, offset, limit int, orderBy string) ([]*client.Client, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit, orderBy)
	}
	return nil, 0, nil
}

func (m *mockClientRepository) CountByStatus(ctx context.Context, status vo.ClientStatus) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	UpdateFunc      func(ctx context.Context, u *user.User) error
	FindByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ListByRoleFunc  func(ctx context.Context, role authorization.UserRole) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
}

type mockSubscriptionRepository struct {
	SaveFunc         func(ctx context.Context, s *subscription.Subscription) error
	UpdateFunc       func(ctx context.Context, s *subscription.Subscription) error
	FindByIDFunc     func(ctx context.Context, id uint) (*subscription.Subscription, error)
	FindByClientFunc func(ctx context.Context, clientID uint) (*subscription.Subscription, error)
	ListByStatusFunc func(ctx context.Context, status subvo.SubscriptionStatus) ([]*subscription.Subscription, error)
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
	if m.FindByClientFunc != nil {
		return m.FindByClientFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListByStatus(ctx context.Context, status subvo.SubscriptionStatus) ([]*subscription.Subscription, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return nil, nil
}

type mockHasher struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hashedPassword, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Compare(hashedPassword, password string) error {
	if m.CompareFunc != nil {
		return m.CompareFunc(hashedPassword, password)
	}
	return nil
}

type staticRateProvider struct {
	table pricing.RateTable
}

func (p *staticRateProvider) Rates(ctx context.Context) pricing.RateTable {
	return p.table
}

type mockEventPublisher struct {
	PublishFunc func(event events.DomainEvent) error
	Published   []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	for _, e := range evts {
		if err := m.Publish(e); err != nil {
			return err
		}
	}
	return nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
