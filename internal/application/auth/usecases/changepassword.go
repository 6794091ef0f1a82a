package usecases

import (
	"context"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/user"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	uc.logger.Infow("executing change password use case", "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if len(cmd.NewPassword) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	if err := uc.hasher.Compare(u.PasswordHash(), cmd.CurrentPassword); err != nil {
		return errors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to hash password")
	}
	if err := u.ChangePassword(hash); err != nil {
		return err
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)
	return nil
}
