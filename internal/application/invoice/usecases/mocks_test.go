package usecases

import (
	"context"
	"time"

	"github.com/techile/fieldportal/internal/domain/invoice"
	vo "github.com/techile/fieldportal/internal/domain/invoice/valueobjects"
	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/domain/ticket"
	tkvo "github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type mockInvoiceRepository struct {
	SaveFunc            func(ctx context.Context, inv *invoice.Invoice) error
	UpdateFunc          func(ctx context.Context, inv *invoice.Invoice) error
	FindByIDFunc        func(ctx context.Context, id uint) (*invoice.Invoice, error)
	FindByNumberFunc    func(ctx context.Context, number string) (*invoice.Invoice, error)
	FindByTicketIDFunc  func(ctx context.Context, ticketID uint) (*invoice.Invoice, error)
	ListFunc            func(ctx context.Context, filter invoice.ListFilter, offset, limit int, orderBy string) ([]*invoice.Invoice, int64, error)
	FindSentPastDueFunc func(ctx context.Context, asOf time.Time) ([]*invoice.Invoice, error)
	CountByStatusFunc   func(ctx context.Context, status vo.InvoiceStatus) (int64, error)
}

func (m *mockInvoiceRepository) Save(ctx context.Context, inv *invoice.Invoice) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, inv)
	}
	return nil
}

func (m *mockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, inv)
	}
	return nil
}

func (m *mockInvoiceRepository) FindByID(ctx context.Context, id uint) (*invoice.Invoice, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) FindByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) FindByTicketID(ctx context.Context, ticketID uint) (*invoice.Invoice, error) {
	if m.FindByTicketIDFunc != nil {
		return m.FindByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) List(ctx context.Context, filter invoice.ListFilter, offset, limit int, orderBy string) ([]*invoice.Invoice, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit, orderBy)
	}
	return nil, 0, nil
}

func (m *mockInvoiceRepository) FindSentPastDue(ctx context.Context, asOf time.Time) ([]*invoice.Invoice, error) {
	if m.FindSentPastDueFunc != nil {
		return m.FindSentPastDueFunc(ctx, asOf)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) CountByStatus(ctx context.Context, status vo.InvoiceStatus) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

type mockTicketRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter, offset, limit int, orderBy string) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, status tkvo.TicketStatus) (int64, error) {
	return 0, nil
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

type staticRateProvider struct {
	table pricing.RateTable
}

func (p *staticRateProvider) Rates(ctx context.Context) pricing.RateTable {
	return p.table
}

// passthroughTx runs the function without a real transaction.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
