package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/domain/website"
	vo "github.com/techile/fieldportal/internal/domain/website/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type CreateWebsiteCommand struct {
	ClientID  uint
	Name      string
	Type      string
	Domain    string
	Subdomain string
}

type CreateWebsiteUseCase struct {
	websiteRepo website.Repository
	clientRepo  client.Repository
	logger      logger.Interface
}

func NewCreateWebsiteUseCase(
	websiteRepo website.Repository,
	clientRepo client.Repository,
	logger logger.Interface,
) *CreateWebsiteUseCase {
	return &CreateWebsiteUseCase{websiteRepo: websiteRepo, clientRepo: clientRepo, logger: logger}
}

func (uc *CreateWebsiteUseCase) Execute(ctx context.Context, cmd CreateWebsiteCommand) (*WebsiteDetail, error) {
	uc.logger.Infow("executing create website use case", "client_id", cmd.ClientID, "name", cmd.Name)

	websiteType := vo.WebsiteType(cmd.Type)
	if !websiteType.IsValid() {
		return nil, errors.NewValidationError("invalid website type", cmd.Type)
	}

	c, err := uc.clientRepo.FindByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", cmd.ClientID))
	}
	if !c.CanPurchase() {
		return nil, errors.NewConflictError("client profile is incomplete or account is not active")
	}

	w, err := website.NewWebsiteProject(cmd.ClientID, cmd.Name, websiteType, cmd.Domain, cmd.Subdomain)
	if err != nil {
		return nil, err
	}

	if existing, err := uc.websiteRepo.FindBySubdomain(ctx, w.Subdomain()); err == nil && existing != nil {
		return nil, errors.NewConflictError("subdomain is already taken", w.Subdomain())
	}

	if err := uc.websiteRepo.Save(ctx, w); err != nil {
		uc.logger.Errorw("failed to save website project", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to save website project")
	}

	uc.logger.Infow("website project created", "website_id", w.ID(), "subdomain", w.Subdomain())
	return toWebsiteDetail(w), nil
}
