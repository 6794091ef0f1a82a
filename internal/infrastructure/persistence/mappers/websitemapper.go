package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/website"
	"github.com/techile/fieldportal/internal/domain/website/valueobjects"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
)

// WebsiteMapper converts between the website project aggregate and its
// persistence model.
type WebsiteMapper struct{}

func NewWebsiteMapper() *WebsiteMapper {
	return &WebsiteMapper{}
}

func (m *WebsiteMapper) ToEntity(model *models.WebsiteModel) (*website.WebsiteProject, error) {
	if model == nil {
		return nil, nil
	}

	var content website.Content
	if len(model.Content) > 0 {
		if err := json.Unmarshal(model.Content, &content); err != nil {
			return nil, fmt.Errorf("failed to unmarshal website content: %w", err)
		}
	}

	return website.ReconstructWebsiteProject(
		model.ID,
		model.ClientID,
		model.Name,
		valueobjects.WebsiteType(model.Type),
		model.Domain,
		model.Subdomain,
		valueobjects.ProjectStatus(model.Status),
		content,
		model.LaunchedAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *WebsiteMapper) ToModel(entity *website.WebsiteProject) (*models.WebsiteModel, error) {
	if entity == nil {
		return nil, nil
	}

	content, err := json.Marshal(entity.Content())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal website content: %w", err)
	}

	return &models.WebsiteModel{
		ID:         entity.ID(),
		ClientID:   entity.ClientID(),
		Name:       entity.Name(),
		Type:       entity.Type().String(),
		Domain:     entity.Domain(),
		Subdomain:  entity.Subdomain(),
		Status:     entity.Status().String(),
		Content:    content,
		LaunchedAt: entity.LaunchedAt(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (m *WebsiteMapper) ToEntities(modelList []*models.WebsiteModel) ([]*website.WebsiteProject, error) {
	entities := make([]*website.WebsiteProject, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map website %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
