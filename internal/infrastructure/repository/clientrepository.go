package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/techile/fieldportal/internal/domain/client"
	"github.com/techile/fieldportal/internal/domain/client/valueobjects"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/mappers"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
	"github.com/techile/fieldportal/internal/shared/db"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

// allowedClientOrderByFields whitelists ORDER BY columns to keep user input
// out of the SQL text.
var allowedClientOrderByFields = map[string]bool{
	"id":           true,
	"company_name": true,
	"email":        true,
	"status":       true,
	"priority":     true,
	"created_at":   true,
	"updated_at":   true,
}

// ClientRepository is the gorm-backed client store.
type ClientRepository struct {
	db     *gorm.DB
	mapper *mappers.ClientMapper
	logger logger.Interface
}

func NewClientRepository(db *gorm.DB, logger logger.Interface) client.Repository {
	return &ClientRepository{
		db:     db,
		mapper: mappers.NewClientMapper(),
		logger: logger,
	}
}

func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create client", "email", model.Email, "error", err)
		return fmt.Errorf("failed to create client: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Save(model).Error; err != nil {
		r.logger.Errorw("failed to update client", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update client: %w", err)
	}

	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uint) (*client.Client, error) {
	var model models.ClientModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", id))
		}
		r.logger.Errorw("failed to find client by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *ClientRepository) FindByUserID(ctx context.Context, userID uint) (*client.Client, error) {
	var model models.ClientModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("client not found")
		}
		r.logger.Errorw("failed to find client by user ID", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*client.Client, error) {
	var model models.ClientModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("email = ?", email).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("client not found")
		}
		r.logger.Errorw("failed to find client by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *ClientRepository) List(ctx context.Context, filter client.ListFilter, offset, limit int, orderBy string) ([]*client.Client, int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	query := conn.Model(&models.ClientModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"company_name LIKE ? OR first_name LIKE ? OR last_name LIKE ? OR email LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count clients", "error", err)
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	if orderBy == "" || !allowedClientOrderByFields[orderBy] {
		orderBy = "created_at"
	}

	var modelList []*models.ClientModel
	if err := query.Order(orderBy + " desc").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list clients", "error", err)
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	return r.mapper.ToEntities(modelList), total, nil
}

func (r *ClientRepository) CountByStatus(ctx context.Context, status valueobjects.ClientStatus) (int64, error) {
	var count int64

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Model(&models.ClientModel{}).Where("status = ?", status.String()).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count clients by status", "status", status, "error", err)
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}

	return count, nil
}
