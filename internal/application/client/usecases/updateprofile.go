package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type UpdateProfileCommand struct {
	ClientID    uint
	CompanyName string
	FirstName   string
	LastName    string
	Phone       string
	Address     string
	City        string
	Province    string
	PostalCode  string
	IsInIslands bool
}

type UpdateProfileUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewUpdateProfileUseCase(clientRepo client.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{clientRepo: clientRepo, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*ClientDetail, error) {
	uc.logger.Infow("executing update profile use case", "client_id", cmd.ClientID)

	if cmd.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	c, err := uc.clientRepo.FindByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", cmd.ClientID))
	}

	c.UpdateProfile(client.ProfileUpdate{
		CompanyName: cmd.CompanyName,
		FirstName:   cmd.FirstName,
		LastName:    cmd.LastName,
		Phone:       cmd.Phone,
		Address:     cmd.Address,
		City:        cmd.City,
		Province:    cmd.Province,
		PostalCode:  cmd.PostalCode,
		IsInIslands: cmd.IsInIslands,
	})

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to update client")
	}

	uc.logger.Infow("client profile updated", "client_id", c.ID(), "completion", c.ProfileCompletionPercentage())

	return toClientDetail(c), nil
}
