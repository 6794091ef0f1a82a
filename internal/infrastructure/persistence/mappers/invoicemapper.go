package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/invoice"
	"github.com/techile/fieldportal/internal/domain/invoice/valueobjects"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
)

// InvoiceMapper converts between the invoice aggregate and its persistence
// model. Totals are stored for listing queries; the aggregate recomputes
// them from the items on reconstruction, so the items column is the source
// of truth.
type InvoiceMapper struct{}

func NewInvoiceMapper() *InvoiceMapper {
	return &InvoiceMapper{}
}

func (m *InvoiceMapper) ToEntity(model *models.InvoiceModel) (*invoice.Invoice, error) {
	if model == nil {
		return nil, nil
	}

	var items []invoice.Item
	if len(model.Items) > 0 {
		if err := json.Unmarshal(model.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal invoice items: %w", err)
		}
	}

	return invoice.ReconstructInvoice(
		model.ID,
		model.Number,
		model.ClientID,
		model.TicketID,
		items,
		model.TaxRate,
		valueobjects.InvoiceStatus(model.Status),
		model.DueDate,
		model.SentAt,
		model.PaidAt,
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *InvoiceMapper) ToModel(entity *invoice.Invoice) (*models.InvoiceModel, error) {
	if entity == nil {
		return nil, nil
	}

	items, err := json.Marshal(entity.Items())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice items: %w", err)
	}

	return &models.InvoiceModel{
		ID:        entity.ID(),
		Number:    entity.Number(),
		ClientID:  entity.ClientID(),
		TicketID:  entity.TicketID(),
		Items:     items,
		Amount:    entity.Amount(),
		TaxRate:   entity.TaxRate(),
		TaxAmount: entity.TaxAmount(),
		Total:     entity.Total(),
		Status:    entity.Status().String(),
		DueDate:   entity.DueDate(),
		SentAt:    entity.SentAt(),
		PaidAt:    entity.PaidAt(),
		Notes:     entity.Notes(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *InvoiceMapper) ToEntities(modelList []*models.InvoiceModel) ([]*invoice.Invoice, error) {
	entities := make([]*invoice.Invoice, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map invoice %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
