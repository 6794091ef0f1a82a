package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type GetClientQuery struct {
	ClientID uint
	// UserID resolves the client through its owning user when ClientID is
	// zero (the "my profile" path).
	UserID uint
}

type GetClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewGetClientUseCase(clientRepo client.Repository, logger logger.Interface) *GetClientUseCase {
	return &GetClientUseCase{clientRepo: clientRepo, logger: logger}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, query GetClientQuery) (*ClientDetail, error) {
	var (
		c   *client.Client
		err error
	)
	switch {
	case query.ClientID != 0:
		c, err = uc.clientRepo.FindByID(ctx, query.ClientID)
	case query.UserID != 0:
		c, err = uc.clientRepo.FindByUserID(ctx, query.UserID)
	default:
		return nil, errors.NewValidationError("client ID or user ID is required")
	}
	if err != nil {
		uc.logger.Errorw("failed to get client", "client_id", query.ClientID, "user_id", query.UserID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", query.ClientID))
	}

	return toClientDetail(c), nil
}
