package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/ticket"
	vo "github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type ListTicketsQuery struct {
	ClientID   uint
	AssigneeID uint
	Status     string
	Type       string
	Priority   string
	Page       int
	PageSize   int
	OrderBy    string
}

type ListTicketsResult struct {
	Tickets  []*TicketDetail `json:"tickets"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pg := utils.ValidatePagination(query.Page, query.PageSize)
	page, pageSize := pg.Page, pg.PageSize

	filter := ticket.ListFilter{
		ClientID:   query.ClientID,
		AssigneeID: query.AssigneeID,
	}
	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = status
	}
	if query.Type != "" {
		ticketType, err := vo.NewTicketType(query.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Type = ticketType
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = priority
	}

	offset := (page - 1) * pageSize
	tickets, total, err := uc.ticketRepo.List(ctx, filter, offset, pageSize, query.OrderBy)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	details := make([]*TicketDetail, len(tickets))
	for i, t := range tickets {
		details[i] = toTicketDetail(t)
	}

	return &ListTicketsResult{
		Tickets:  details,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
