package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/techile/fieldportal/internal/domain/website"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/mappers"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
	"github.com/techile/fieldportal/internal/shared/db"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

var allowedWebsiteOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"status":     true,
	"created_at": true,
	"updated_at": true,
}

// WebsiteRepository is the gorm-backed website project store.
type WebsiteRepository struct {
	db     *gorm.DB
	mapper *mappers.WebsiteMapper
	logger logger.Interface
}

func NewWebsiteRepository(db *gorm.DB, logger logger.Interface) website.Repository {
	return &WebsiteRepository{
		db:     db,
		mapper: mappers.NewWebsiteMapper(),
		logger: logger,
	}
}

func (r *WebsiteRepository) Save(ctx context.Context, w *website.WebsiteProject) error {
	model, err := r.mapper.ToModel(w)
	if err != nil {
		return fmt.Errorf("failed to map website: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create website", "subdomain", model.Subdomain, "error", err)
		return fmt.Errorf("failed to create website: %w", err)
	}

	w.SetID(model.ID)
	return nil
}

func (r *WebsiteRepository) Update(ctx context.Context, w *website.WebsiteProject) error {
	model, err := r.mapper.ToModel(w)
	if err != nil {
		return fmt.Errorf("failed to map website: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Save(model).Error; err != nil {
		r.logger.Errorw("failed to update website", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update website: %w", err)
	}

	return nil
}

func (r *WebsiteRepository) FindByID(ctx context.Context, id uint) (*website.WebsiteProject, error) {
	var model models.WebsiteModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("website %d not found", id))
		}
		r.logger.Errorw("failed to find website by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find website: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *WebsiteRepository) FindBySubdomain(ctx context.Context, subdomain string) (*website.WebsiteProject, error) {
	var model models.WebsiteModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("subdomain = ?", subdomain).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("website %s not found", subdomain))
		}
		r.logger.Errorw("failed to find website by subdomain", "subdomain", subdomain, "error", err)
		return nil, fmt.Errorf("failed to find website: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *WebsiteRepository) List(ctx context.Context, filter website.ListFilter, offset, limit int, orderBy string) ([]*website.WebsiteProject, int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	query := conn.Model(&models.WebsiteModel{})

	if filter.ClientID != 0 {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count websites", "error", err)
		return nil, 0, fmt.Errorf("failed to count websites: %w", err)
	}

	if orderBy == "" || !allowedWebsiteOrderByFields[orderBy] {
		orderBy = "created_at"
	}

	var modelList []*models.WebsiteModel
	if err := query.Order(orderBy + " desc").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list websites", "error", err)
		return nil, 0, fmt.Errorf("failed to list websites: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
