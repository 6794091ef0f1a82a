package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/domain/invoice/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type ListInvoicesQuery struct {
	ClientID uint
	Status   string
	Page     int
	PageSize int
	OrderBy  string
}

type ListInvoicesUseCase struct {
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewListInvoicesUseCase(invoiceRepo invoice.Repository, logger logger.Interface) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{invoiceRepo: invoiceRepo, logger: logger}
}

func (uc *ListInvoicesUseCase) Execute(ctx context.Context, query ListInvoicesQuery) (*InvoiceList, error) {
	filter := invoice.ListFilter{ClientID: query.ClientID}
	if query.Status != "" {
		status := valueobjects.InvoiceStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid invoice status", query.Status)
		}
		filter.Status = status
	}

	pg := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (pg.Page - 1) * pg.PageSize

	invoices, total, err := uc.invoiceRepo.List(ctx, filter, offset, pg.PageSize, query.OrderBy)
	if err != nil {
		uc.logger.Errorw("failed to list invoices", "client_id", query.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to list invoices")
	}

	details := make([]InvoiceDetail, 0, len(invoices))
	for _, inv := range invoices {
		details = append(details, *toInvoiceDetail(inv))
	}

	return &InvoiceList{
		Invoices: details,
		Total:    total,
		Page:     pg.Page,
		PageSize: pg.PageSize,
	}, nil
}
