package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/client"
	vo "github.com/techile/fieldportal/internal/domain/client/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type ListClientsQuery struct {
	Status   string
	Priority string
	Search   string
	Page     int
	PageSize int
	OrderBy  string
}

type ListClientsResult struct {
	Clients  []*ClientDetail `json:"clients"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

type ListClientsUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListClientsUseCase(clientRepo client.Repository, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{clientRepo: clientRepo, logger: logger}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, query ListClientsQuery) (*ListClientsResult, error) {
	pg := utils.ValidatePagination(query.Page, query.PageSize)

	filter := client.ListFilter{Search: query.Search}
	if query.Status != "" {
		status, err := vo.NewClientStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = status
	}
	if query.Priority != "" {
		priority, err := vo.NewClientPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = priority
	}

	offset := (pg.Page - 1) * pg.PageSize
	clients, total, err := uc.clientRepo.List(ctx, filter, offset, pg.PageSize, query.OrderBy)
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, errors.NewInternalError("failed to list clients")
	}

	details := make([]*ClientDetail, len(clients))
	for i, c := range clients {
		details[i] = toClientDetail(c)
	}

	return &ListClientsResult{
		Clients:  details,
		Total:    total,
		Page:     pg.Page,
		PageSize: pg.PageSize,
	}, nil
}
