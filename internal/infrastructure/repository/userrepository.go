package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/techile/fieldportal/internal/domain/user"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/mappers"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
	"github.com/techile/fieldportal/internal/shared/authorization"
	"github.com/techile/fieldportal/internal/shared/db"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

// UserRepository is the gorm-backed user store.
type UserRepository struct {
	db     *gorm.DB
	mapper *mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "email", model.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.SetID(model.ID)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Save(model).Error; err != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", id))
		}
		r.logger.Errorw("failed to find user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("email = ?", email).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		r.logger.Errorw("failed to find user by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	var modelList []*models.UserModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("role = ?", role.String()).Order("display_name asc").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list users by role", "role", role, "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return r.mapper.ToEntities(modelList), nil
}
