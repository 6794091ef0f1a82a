package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/pricing"
)

// RateProvider returns the currently published rate table.
type RateProvider interface {
	Rates(ctx context.Context) pricing.RateTable
}

// TransactionManager scopes a function to a database transaction. The
// context passed to fn carries the transaction for repository calls.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateInvoiceExecutor interface {
	Execute(ctx context.Context, cmd CreateInvoiceCommand) (*InvoiceDetail, error)
}

type CreateInvoiceFromTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateInvoiceFromTicketCommand) (*InvoiceDetail, error)
}

type GetInvoiceExecutor interface {
	Execute(ctx context.Context, query GetInvoiceQuery) (*InvoiceDetail, error)
}

type ListInvoicesExecutor interface {
	Execute(ctx context.Context, query ListInvoicesQuery) (*InvoiceList, error)
}

type SendInvoiceExecutor interface {
	Execute(ctx context.Context, cmd SendInvoiceCommand) (*InvoiceDetail, error)
}

type MarkInvoicePaidExecutor interface {
	Execute(ctx context.Context, cmd MarkInvoicePaidCommand) (*InvoiceDetail, error)
}

type CancelInvoiceExecutor interface {
	Execute(ctx context.Context, cmd CancelInvoiceCommand) (*InvoiceDetail, error)
}

type ProcessOverdueExecutor interface {
	Execute(ctx context.Context, cmd ProcessOverdueCommand) (*ProcessOverdueResult, error)
}
