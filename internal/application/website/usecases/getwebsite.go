package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/website"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

// GetWebsiteQuery looks a project up by ID or by subdomain. ClientID, when
// set, restricts the result to that client's own projects.
type GetWebsiteQuery struct {
	WebsiteID uint
	Subdomain string
	ClientID  uint
}

type GetWebsiteUseCase struct {
	websiteRepo website.Repository
	logger      logger.Interface
}

func NewGetWebsiteUseCase(websiteRepo website.Repository, logger logger.Interface) *GetWebsiteUseCase {
	return &GetWebsiteUseCase{websiteRepo: websiteRepo, logger: logger}
}

func (uc *GetWebsiteUseCase) Execute(ctx context.Context, query GetWebsiteQuery) (*WebsiteDetail, error) {
	var (
		w   *website.WebsiteProject
		err error
	)
	switch {
	case query.WebsiteID != 0:
		w, err = uc.websiteRepo.FindByID(ctx, query.WebsiteID)
	case query.Subdomain != "":
		w, err = uc.websiteRepo.FindBySubdomain(ctx, query.Subdomain)
	default:
		return nil, errors.NewValidationError("website ID or subdomain is required")
	}
	if err != nil {
		uc.logger.Errorw("failed to get website project", "website_id", query.WebsiteID, "subdomain", query.Subdomain, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("website project %d not found", query.WebsiteID))
	}

	if query.ClientID != 0 && w.ClientID() != query.ClientID {
		return nil, errors.NewForbiddenError("website project belongs to another client")
	}

	return toWebsiteDetail(w), nil
}
