package usecases

import (
	"context"

	"github.com/techile/fieldportal/internal/domain/website"
	vo "github.com/techile/fieldportal/internal/domain/website/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type ListWebsitesQuery struct {
	ClientID uint
	Status   string
	Type     string
	Page     int
	PageSize int
	OrderBy  string
}

type ListWebsitesUseCase struct {
	websiteRepo website.Repository
	logger      logger.Interface
}

func NewListWebsitesUseCase(websiteRepo website.Repository, logger logger.Interface) *ListWebsitesUseCase {
	return &ListWebsitesUseCase{websiteRepo: websiteRepo, logger: logger}
}

func (uc *ListWebsitesUseCase) Execute(ctx context.Context, query ListWebsitesQuery) (*WebsiteList, error) {
	filter := website.ListFilter{ClientID: query.ClientID}
	if query.Status != "" {
		status := vo.ProjectStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid project status", query.Status)
		}
		filter.Status = status
	}
	if query.Type != "" {
		websiteType := vo.WebsiteType(query.Type)
		if !websiteType.IsValid() {
			return nil, errors.NewValidationError("invalid website type", query.Type)
		}
		filter.Type = websiteType
	}

	pg := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (pg.Page - 1) * pg.PageSize

	websites, total, err := uc.websiteRepo.List(ctx, filter, offset, pg.PageSize, query.OrderBy)
	if err != nil {
		uc.logger.Errorw("failed to list website projects", "client_id", query.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to list website projects")
	}

	details := make([]WebsiteDetail, 0, len(websites))
	for _, w := range websites {
		details = append(details, *toWebsiteDetail(w))
	}

	return &WebsiteList{
		Websites: details,
		Total:    total,
		Page:     pg.Page,
		PageSize: pg.PageSize,
	}, nil
}
