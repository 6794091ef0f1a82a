package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/techile/fieldportal/internal/domain/subscription"
	"github.com/techile/fieldportal/internal/domain/subscription/valueobjects"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/mappers"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
	"github.com/techile/fieldportal/internal/shared/db"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

// SubscriptionRepository is the gorm-backed subscription store.
type SubscriptionRepository struct {
	db     *gorm.DB
	mapper *mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepository{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepository) Save(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "client_id", model.ClientID, "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Save(model).Error; err != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	return nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("subscription %d not found", id))
		}
		r.logger.Errorw("failed to find subscription by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *SubscriptionRepository) FindByClientID(ctx context.Context, clientID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("client_id = ?", clientID).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("no subscription for client %d", clientID))
		}
		r.logger.Errorw("failed to find subscription by client ID", "client_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *SubscriptionRepository) ListByStatus(ctx context.Context, status valueobjects.SubscriptionStatus) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("status = ?", status.String()).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions by status", "status", status, "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return r.mapper.ToEntities(modelList), nil
}
