package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/domain/ticket"
	vo "github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
	"github.com/techile/fieldportal/internal/domain/user"
	"github.com/techile/fieldportal/internal/shared/authorization"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc        func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc      func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByNumberFunc  func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc          func(ctx context.Context, filter ticket.ListFilter, offset, limit int, orderBy string) ([]*ticket.Ticket, int64, error)
	CountByStatusFunc func(ctx context.Context, status vo.TicketStatus) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter, offset, limit int, orderBy string) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit, orderBy)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, status vo.TicketStatus) (int64, error) {
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

type staticTemplateProvider struct {
	template ticket.WorkflowTemplate
}

func (p *staticTemplateProvider) Template() ticket.WorkflowTemplate {
	return p.template
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
