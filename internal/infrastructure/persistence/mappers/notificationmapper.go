package mappers

import (
	"github.com/techile/fieldportal/internal/domain/notification"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
)

// NotificationMapper converts between notifications and their persistence
// model.
type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(model *models.NotificationModel) *notification.Notification {
	if model == nil {
		return nil
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		notification.Type(model.Type),
		model.Title,
		model.Message,
		model.ActionURL,
		model.IsRead,
		model.ReadAt,
		model.CreatedAt,
	)
}

func (m *NotificationMapper) ToModel(entity *notification.Notification) *models.NotificationModel {
	if entity == nil {
		return nil
	}

	return &models.NotificationModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		Type:      string(entity.Type()),
		Title:     entity.Title(),
		Message:   entity.Message(),
		ActionURL: entity.ActionURL(),
		IsRead:    entity.IsRead(),
		ReadAt:    entity.ReadAt(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (m *NotificationMapper) ToEntities(modelList []*models.NotificationModel) []*notification.Notification {
	entities := make([]*notification.Notification, 0, len(modelList))
	for _, model := range modelList {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
