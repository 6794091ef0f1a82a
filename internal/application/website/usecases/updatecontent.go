package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/website"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type UpdateWebsiteContentCommand struct {
	WebsiteID uint
	// ClientID, when set, restricts the update to the client's own project.
	ClientID uint
	Content  website.Content
}

type UpdateWebsiteContentUseCase struct {
	websiteRepo website.Repository
	logger      logger.Interface
}

func NewUpdateWebsiteContentUseCase(websiteRepo website.Repository, logger logger.Interface) *UpdateWebsiteContentUseCase {
	return &UpdateWebsiteContentUseCase{websiteRepo: websiteRepo, logger: logger}
}

func (uc *UpdateWebsiteContentUseCase) Execute(ctx context.Context, cmd UpdateWebsiteContentCommand) (*WebsiteDetail, error) {
	uc.logger.Infow("executing update website content use case", "website_id", cmd.WebsiteID)

	if cmd.WebsiteID == 0 {
		return nil, errors.NewValidationError("website ID is required")
	}

	w, err := uc.websiteRepo.FindByID(ctx, cmd.WebsiteID)
	if err != nil {
		uc.logger.Errorw("failed to get website project", "website_id", cmd.WebsiteID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("website project %d not found", cmd.WebsiteID))
	}
	if cmd.ClientID != 0 && w.ClientID() != cmd.ClientID {
		return nil, errors.NewForbiddenError("website project belongs to another client")
	}

	w.UpdateContent(cmd.Content)

	if err := uc.websiteRepo.Update(ctx, w); err != nil {
		uc.logger.Errorw("failed to update website project", "website_id", cmd.WebsiteID, "error", err)
		return nil, errors.NewInternalError("failed to update website project")
	}

	return toWebsiteDetail(w), nil
}
