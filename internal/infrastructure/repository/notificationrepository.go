package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/techile/fieldportal/internal/domain/notification"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/mappers"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
	"github.com/techile/fieldportal/internal/shared/db"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

// NotificationRepository is the gorm-backed notification store.
type NotificationRepository struct {
	db     *gorm.DB
	mapper *mappers.NotificationMapper
	logger logger.Interface
}

func NewNotificationRepository(db *gorm.DB, logger logger.Interface) notification.Repository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
		logger: logger,
	}
}

func (r *NotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create notification", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create notification: %w", err)
	}

	n.SetID(model.ID)
	return nil
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Save(model).Error; err != nil {
		r.logger.Errorw("failed to update notification", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update notification: %w", err)
	}

	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("notification %d not found", id))
		}
		r.logger.Errorw("failed to find notification by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]*notification.Notification, int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	query := conn.Model(&models.NotificationModel{}).Where("user_id = ?", userID)

	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count notifications", "user_id", userID, "error", err)
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var modelList []*models.NotificationModel
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list notifications", "user_id", userID, "error", err)
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	return r.mapper.ToEntities(modelList), total, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	now := time.Now()

	conn := db.GetTxFromContext(ctx, r.db)
	err := conn.Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
	if err != nil {
		r.logger.Errorw("failed to mark notifications read", "user_id", userID, "error", err)
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}
