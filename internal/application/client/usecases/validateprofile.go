package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type ValidateProfileQuery struct {
	ClientID uint
}

type ProfileValidationResult struct {
	ClientID      uint     `json:"client_id"`
	MissingFields []string `json:"missing_fields"`
	IsComplete    bool     `json:"is_complete"`
	CanPurchase   bool     `json:"can_purchase"`
	Completion    int      `json:"completion"`
}

type ValidateProfileUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewValidateProfileUseCase(clientRepo client.Repository, logger logger.Interface) *ValidateProfileUseCase {
	return &ValidateProfileUseCase{clientRepo: clientRepo, logger: logger}
}

func (uc *ValidateProfileUseCase) Execute(ctx context.Context, query ValidateProfileQuery) (*ProfileValidationResult, error) {
	if query.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	c, err := uc.clientRepo.FindByID(ctx, query.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "client_id", query.ClientID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", query.ClientID))
	}

	v := c.ValidateProfile()
	return &ProfileValidationResult{
		ClientID:      c.ID(),
		MissingFields: v.MissingFields,
		IsComplete:    v.IsComplete,
		CanPurchase:   v.CanPurchase,
		Completion:    c.ProfileCompletionPercentage(),
	}, nil
}
