package mappers

import (
	"github.com/techile/fieldportal/internal/domain/user"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
	"github.com/techile/fieldportal/internal/shared/authorization"
)

// UserMapper converts between the user aggregate and its persistence model.
type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.PasswordHash,
		model.DisplayName,
		authorization.ParseUserRole(model.Role),
		model.Active,
		model.LastLoginAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		DisplayName:  entity.DisplayName(),
		Role:         entity.Role().String(),
		Active:       entity.IsActive(),
		LastLoginAt:  entity.LastLoginAt(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *UserMapper) ToEntities(modelList []*models.UserModel) []*user.User {
	entities := make([]*user.User, 0, len(modelList))
	for _, model := range modelList {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
