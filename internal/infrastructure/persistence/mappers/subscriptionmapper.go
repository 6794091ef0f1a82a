package mappers

import (
	"github.com/techile/fieldportal/internal/domain/subscription"
	"github.com/techile/fieldportal/internal/domain/subscription/valueobjects"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
)

// SubscriptionMapper converts between the subscription aggregate and its
// persistence model.
type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(model *models.SubscriptionModel) *subscription.Subscription {
	if model == nil {
		return nil
	}

	return subscription.ReconstructSubscription(
		model.ID,
		model.ClientID,
		valueobjects.PlanTier(model.Tier),
		valueobjects.BillingCycle(model.Cycle),
		valueobjects.SubscriptionStatus(model.Status),
		model.Price,
		model.CurrentPeriodStart,
		model.CurrentPeriodEnd,
		model.CancelledAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SubscriptionMapper) ToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	if entity == nil {
		return nil
	}

	return &models.SubscriptionModel{
		ID:                 entity.ID(),
		ClientID:           entity.ClientID(),
		Tier:               entity.Tier().String(),
		Cycle:              entity.Cycle().String(),
		Status:             entity.Status().String(),
		Price:              entity.Price(),
		CurrentPeriodStart: entity.CurrentPeriodStart(),
		CurrentPeriodEnd:   entity.CurrentPeriodEnd(),
		CancelledAt:        entity.CancelledAt(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}

func (m *SubscriptionMapper) ToEntities(modelList []*models.SubscriptionModel) []*subscription.Subscription {
	entities := make([]*subscription.Subscription, 0, len(modelList))
	for _, model := range modelList {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
