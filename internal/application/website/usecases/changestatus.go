package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/website"
	vo "github.com/techile/fieldportal/internal/domain/website/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type ChangeWebsiteStatusCommand struct {
	WebsiteID uint
	NewStatus string
}

type ChangeWebsiteStatusUseCase struct {
	websiteRepo website.Repository
	logger      logger.Interface
}

func NewChangeWebsiteStatusUseCase(websiteRepo website.Repository, logger logger.Interface) *ChangeWebsiteStatusUseCase {
	return &ChangeWebsiteStatusUseCase{websiteRepo: websiteRepo, logger: logger}
}

func (uc *ChangeWebsiteStatusUseCase) Execute(ctx context.Context, cmd ChangeWebsiteStatusCommand) (*WebsiteDetail, error) {
	uc.logger.Infow("executing change website status use case", "website_id", cmd.WebsiteID, "new_status", cmd.NewStatus)

	if cmd.WebsiteID == 0 {
		return nil, errors.NewValidationError("website ID is required")
	}
	newStatus := vo.ProjectStatus(cmd.NewStatus)
	if !newStatus.IsValid() {
		return nil, errors.NewValidationError("invalid project status", cmd.NewStatus)
	}

	w, err := uc.websiteRepo.FindByID(ctx, cmd.WebsiteID)
	if err != nil {
		uc.logger.Errorw("failed to get website project", "website_id", cmd.WebsiteID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("website project %d not found", cmd.WebsiteID))
	}

	oldStatus := w.Status()
	if err := w.ChangeStatus(newStatus); err != nil {
		return nil, err
	}

	if err := uc.websiteRepo.Update(ctx, w); err != nil {
		uc.logger.Errorw("failed to update website project", "website_id", cmd.WebsiteID, "error", err)
		return nil, errors.NewInternalError("failed to update website project")
	}

	uc.logger.Infow("website project status changed",
		"website_id", w.ID(), "from", oldStatus, "to", newStatus)
	return toWebsiteDetail(w), nil
}
