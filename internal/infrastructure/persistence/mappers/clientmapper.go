package mappers

import (
	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/domain/client/valueobjects"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
)

// ClientMapper converts between the client aggregate and its persistence
// model.
type ClientMapper struct{}

func NewClientMapper() *ClientMapper {
	return &ClientMapper{}
}

func (m *ClientMapper) ToEntity(model *models.ClientModel) *client.Client {
	if model == nil {
		return nil
	}

	return client.ReconstructClient(
		model.ID,
		model.UserID,
		model.CompanyName,
		model.FirstName,
		model.LastName,
		model.Email,
		model.Phone,
		model.Address,
		model.City,
		model.Province,
		model.PostalCode,
		model.IsInIslands,
		valueobjects.ClientStatus(model.Status),
		valueobjects.ClientPriority(model.Priority),
		model.Notes,
		model.CloudQuotaGB,
		model.CloudUsedGB,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ClientMapper) ToModel(entity *client.Client) *models.ClientModel {
	if entity == nil {
		return nil
	}

	return &models.ClientModel{
		ID:           entity.ID(),
		UserID:       entity.UserID(),
		CompanyName:  entity.CompanyName(),
		FirstName:    entity.FirstName(),
		LastName:     entity.LastName(),
		Email:        entity.Email(),
		Phone:        entity.Phone(),
		Address:      entity.Address(),
		City:         entity.City(),
		Province:     entity.Province(),
		PostalCode:   entity.PostalCode(),
		IsInIslands:  entity.IsInIslands(),
		Status:       entity.Status().String(),
		Priority:     entity.Priority().String(),
		Notes:        entity.Notes(),
		CloudQuotaGB: entity.CloudQuotaGB(),
		CloudUsedGB:  entity.CloudUsedGB(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *ClientMapper) ToEntities(modelList []*models.ClientModel) []*client.Client {
	entities := make([]*client.Client, 0, len(modelList))
	for _, model := range modelList {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
