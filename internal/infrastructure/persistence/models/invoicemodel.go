package models

import (
	"time"

	"gorm.io/datatypes"
)

// InvoiceModel is the persistence shape of an invoice. Line items are a
// JSON column; totals are stored denormalized for listing queries but the
// domain recomputes them from the items on load.
type InvoiceModel struct {
	ID        uint           `gorm:"primaryKey"`
	Number    string         `gorm:"uniqueIndex;size:50;not null"`
	ClientID  uint           `gorm:"not null;index"`
	TicketID  *uint          `gorm:"uniqueIndex"`
	Items     datatypes.JSON
	Amount    float64        `gorm:"not null;default:0"`
	TaxRate   float64        `gorm:"not null;default:0"`
	TaxAmount float64        `gorm:"not null;default:0"`
	Total     float64        `gorm:"not null;default:0"`
	Status    string         `gorm:"size:20;not null;index"`
	DueDate   time.Time      `gorm:"not null;index"`
	SentAt    *time.Time
	PaidAt    *time.Time
	Notes     string         `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}
