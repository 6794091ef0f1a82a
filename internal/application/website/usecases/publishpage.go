package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/website"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type PublishPageCommand struct {
	WebsiteID uint
	ClientID  uint
	PageSlug  string
	Published bool
}

type PublishPageUseCase struct {
	websiteRepo website.Repository
	logger      logger.Interface
}

func NewPublishPageUseCase(websiteRepo website.Repository, logger logger.Interface) *PublishPageUseCase {
	return &PublishPageUseCase{websiteRepo: websiteRepo, logger: logger}
}

func (uc *PublishPageUseCase) Execute(ctx context.Context, cmd PublishPageCommand) (*WebsiteDetail, error) {
	uc.logger.Infow("executing publish page use case",
		"website_id", cmd.WebsiteID, "page", cmd.PageSlug, "published", cmd.Published)

	if cmd.WebsiteID == 0 {
		return nil, errors.NewValidationError("website ID is required")
	}
	if cmd.PageSlug == "" {
		return nil, errors.NewValidationError("page slug is required")
	}

	w, err := uc.websiteRepo.FindByID(ctx, cmd.WebsiteID)
	if err != nil {
		uc.logger.Errorw("failed to get website project", "website_id", cmd.WebsiteID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("website project %d not found", cmd.WebsiteID))
	}
	if cmd.ClientID != 0 && w.ClientID() != cmd.ClientID {
		return nil, errors.NewForbiddenError("website project belongs to another client")
	}

	if err := w.PublishPage(cmd.PageSlug, cmd.Published); err != nil {
		return nil, err
	}

	if err := uc.websiteRepo.Update(ctx, w); err != nil {
		uc.logger.Errorw("failed to update website project", "website_id", cmd.WebsiteID, "error", err)
		return nil, errors.NewInternalError("failed to update website project")
	}

	return toWebsiteDetail(w), nil
}
