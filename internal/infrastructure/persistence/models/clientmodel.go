package models

import (
	"time"
)

// ClientModel is the persistence shape of a client account. Profile fields
// stay nullable-free; empty strings mean "not provided yet".
type ClientModel struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"uniqueIndex;not null"`
	CompanyName  string    `gorm:"size:200"`
	FirstName    string    `gorm:"size:100"`
	LastName     string    `gorm:"size:100"`
	Email        string    `gorm:"index;size:255;not null"`
	Phone        string    `gorm:"size:30"`
	Address      string    `gorm:"size:255"`
	City         string    `gorm:"size:100"`
	Province     string    `gorm:"size:50"`
	PostalCode   string    `gorm:"size:10"`
	IsInIslands  bool      `gorm:"not null;default:false"`
	Status       string    `gorm:"size:20;not null;index"`
	Priority     string    `gorm:"size:20;not null"`
	Notes        string    `gorm:"type:text"`
	CloudQuotaGB float64   `gorm:"not null;default:0"`
	CloudUsedGB  float64   `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (ClientModel) TableName() string {
	return "clients"
}
