package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/techile/fieldportal/internal/domain/ticket"
	"github.com/techile/fieldportal/internal/domain/ticket/valueobjects"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
)

// TicketMapper converts between the ticket aggregate and its persistence
// model. The checklist and notes round-trip through JSON columns.
type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	var steps []ticket.WorkflowStep
	if len(model.WorkflowSteps) > 0 {
		if err := json.Unmarshal(model.WorkflowSteps, &steps); err != nil {
			return nil, fmt.Errorf("failed to unmarshal workflow steps: %w", err)
		}
	}

	var notes []ticket.TechnicianNote
	if len(model.TechnicianNotes) > 0 {
		if err := json.Unmarshal(model.TechnicianNotes, &notes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal technician notes: %w", err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.ClientID,
		model.Title,
		model.Description,
		valueobjects.TicketType(model.Type),
		valueobjects.Priority(model.Priority),
		valueobjects.TicketStatus(model.Status),
		model.AssigneeID,
		model.ScheduledAt,
		model.Location,
		model.DistanceKM,
		model.EstimatedMinutes,
		model.ActualMinutes,
		model.InterventionStarted,
		steps,
		model.CompletionNotes,
		notes,
		model.ResolvedAt,
		model.ClosedAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *TicketMapper) ToModel(entity *ticket.Ticket) (*models.TicketModel, error) {
	if entity == nil {
		return nil, nil
	}

	steps, err := json.Marshal(entity.WorkflowSteps())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workflow steps: %w", err)
	}

	notes, err := json.Marshal(entity.Notes())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal technician notes: %w", err)
	}

	return &models.TicketModel{
		ID:                  entity.ID(),
		Number:              entity.Number(),
		ClientID:            entity.ClientID(),
		Title:               entity.Title(),
		Description:         entity.Description(),
		Type:                entity.Type().String(),
		Priority:            entity.Priority().String(),
		Status:              entity.Status().String(),
		AssigneeID:          entity.AssigneeID(),
		ScheduledAt:         entity.ScheduledAt(),
		Location:            entity.Location(),
		DistanceKM:          entity.DistanceKM(),
		EstimatedMinutes:    entity.EstimatedMinutes(),
		ActualMinutes:       entity.ActualMinutes(),
		InterventionStarted: entity.InterventionStarted(),
		WorkflowSteps:       steps,
		CompletionNotes:     entity.CompletionNotes(),
		TechnicianNotes:     notes,
		ResolvedAt:          entity.ResolvedAt(),
		ClosedAt:            entity.ClosedAt(),
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
	}, nil
}

func (m *TicketMapper) ToEntities(modelList []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map ticket %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
