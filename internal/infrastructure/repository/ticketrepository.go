package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/techile/fieldportal/internal/domain/ticket"
	"github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/mappers"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
	"github.com/techile/fieldportal/internal/shared/db"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

var allowedTicketOrderByFields = map[string]bool{
	"id":           true,
	"number":       true,
	"priority":     true,
	"status":       true,
	"scheduled_at": true,
	"created_at":   true,
	"updated_at":   true,
}

// TicketRepository is the gorm-backed ticket store.
type TicketRepository struct {
	db     *gorm.DB
	mapper *mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.Repository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map ticket: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "number", model.Number, "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	t.SetID(model.ID)
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map ticket: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Save(model).Error; err != nil {
		r.logger.Errorw("failed to update ticket", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", id))
		}
		r.logger.Errorw("failed to find ticket by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TicketRepository) FindByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("number = ?", number).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %s not found", number))
		}
		r.logger.Errorw("failed to find ticket by number", "number", number, "error", err)
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.ListFilter, offset, limit int, orderBy string) ([]*ticket.Ticket, int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	query := conn.Model(&models.TicketModel{})

	if filter.ClientID != 0 {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.AssigneeID != 0 {
		query = query.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	if orderBy == "" || !allowedTicketOrderByFields[orderBy] {
		orderBy = "created_at"
	}

	var modelList []*models.TicketModel
	if err := query.Order(orderBy + " desc").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context, status valueobjects.TicketStatus) (int64, error) {
	var count int64

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Model(&models.TicketModel{}).Where("status = ?", status.String()).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count tickets by status", "status", status, "error", err)
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	return count, nil
}
