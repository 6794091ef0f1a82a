package models

import (
	"time"

	"gorm.io/datatypes"
)

// TicketModel is the persistence shape of a service ticket. The checklist
// and technician notes live in JSON columns; they are only ever read and
// written through the aggregate, never queried independently.
type TicketModel struct {
	ID                  uint           `gorm:"primaryKey"`
	Number              string         `gorm:"uniqueIndex;size:50;not null"`
	ClientID            uint           `gorm:"not null;index"`
	Title               string         `gorm:"size:200;not null"`
	Description         string         `gorm:"type:text"`
	Type                string         `gorm:"size:20;not null;index"`
	Priority            string         `gorm:"size:20;not null;index"`
	Status              string         `gorm:"size:20;not null;index"`
	AssigneeID          *uint          `gorm:"index"`
	ScheduledAt         *time.Time
	Location            string         `gorm:"size:255"`
	DistanceKM          float64        `gorm:"not null;default:0"`
	EstimatedMinutes    int            `gorm:"not null;default:0"`
	ActualMinutes       int            `gorm:"not null;default:0"`
	InterventionStarted *time.Time
	WorkflowSteps       datatypes.JSON
	CompletionNotes     string         `gorm:"type:text"`
	TechnicianNotes     datatypes.JSON
	ResolvedAt          *time.Time
	ClosedAt            *time.Time
	CreatedAt           time.Time      `gorm:"autoCreateTime"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
