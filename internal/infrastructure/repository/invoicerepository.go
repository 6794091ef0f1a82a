package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/domain/invoice/valueobjects"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/mappers"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
	"github.com/techile/fieldportal/internal/shared/db"
	"github.com/techile/fieldportal/internal/shared/errors"
	"github.com/techile/fieldportal/internal/shared/logger"
)

var allowedInvoiceOrderByFields = map[string]bool{
	"id":         true,
	"number":     true,
	"total":      true,
	"status":     true,
	"due_date":   true,
	"created_at": true,
	"updated_at": true,
}

// InvoiceRepository is the gorm-backed invoice store.
type InvoiceRepository struct {
	db     *gorm.DB
	mapper *mappers.InvoiceMapper
	logger logger.Interface
}

func NewInvoiceRepository(db *gorm.DB, logger logger.Interface) invoice.Repository {
	return &InvoiceRepository{
		db:     db,
		mapper: mappers.NewInvoiceMapper(),
		logger: logger,
	}
}

func (r *InvoiceRepository) Save(ctx context.Context, inv *invoice.Invoice) error {
	model, err := r.mapper.ToModel(inv)
	if err != nil {
		return fmt.Errorf("failed to map invoice: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create invoice", "number", model.Number, "error", err)
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	inv.SetID(model.ID)
	return nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	model, err := r.mapper.ToModel(inv)
	if err != nil {
		return fmt.Errorf("failed to map invoice: %w", err)
	}

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Save(model).Error; err != nil {
		r.logger.Errorw("failed to update invoice", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	return nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id uint) (*invoice.Invoice, error) {
	var model models.InvoiceModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("invoice %d not found", id))
		}
		r.logger.Errorw("failed to find invoice by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *InvoiceRepository) FindByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	var model models.InvoiceModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("number = ?", number).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("invoice %s not found", number))
		}
		r.logger.Errorw("failed to find invoice by number", "number", number, "error", err)
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *InvoiceRepository) FindByTicketID(ctx context.Context, ticketID uint) (*invoice.Invoice, error) {
	var model models.InvoiceModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("ticket_id = ?", ticketID).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("no invoice for ticket %d", ticketID))
		}
		r.logger.Errorw("failed to find invoice by ticket ID", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *InvoiceRepository) List(ctx context.Context, filter invoice.ListFilter, offset, limit int, orderBy string) ([]*invoice.Invoice, int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	query := conn.Model(&models.InvoiceModel{})

	if filter.ClientID != 0 {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count invoices", "error", err)
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	if orderBy == "" || !allowedInvoiceOrderByFields[orderBy] {
		orderBy = "created_at"
	}

	var modelList []*models.InvoiceModel
	if err := query.Order(orderBy + " desc").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list invoices", "error", err)
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *InvoiceRepository) FindSentPastDue(ctx context.Context, asOf time.Time) ([]*invoice.Invoice, error) {
	var modelList []*models.InvoiceModel

	conn := db.GetTxFromContext(ctx, r.db)
	err := conn.
		Where("status = ?", valueobjects.StatusSent.String()).
		Where("due_date < ?", asOf).
		Order("due_date asc").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to find past due invoices", "error", err)
		return nil, fmt.Errorf("failed to find past due invoices: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *InvoiceRepository) CountByStatus(ctx context.Context, status valueobjects.InvoiceStatus) (int64, error) {
	var count int64

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Model(&models.InvoiceModel{}).Where("status = ?", status.String()).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count invoices by status", "status", status, "error", err)
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	return count, nil
}
