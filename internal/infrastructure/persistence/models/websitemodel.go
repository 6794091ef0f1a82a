package models

import (
	"time"

	"gorm.io/datatypes"
)

// WebsiteModel is the persistence shape of a website project. The editable
// content block is stored as JSON.
type WebsiteModel struct {
	ID         uint           `gorm:"primaryKey"`
	ClientID   uint           `gorm:"not null;index"`
	Name       string         `gorm:"size:200;not null"`
	Type       string         `gorm:"size:20;not null;index"`
	Domain     string         `gorm:"size:255"`
	Subdomain  string         `gorm:"uniqueIndex;size:63;not null"`
	Status     string         `gorm:"size:20;not null;index"`
	Content    datatypes.JSON
	LaunchedAt *time.Time
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (WebsiteModel) TableName() string {
	return "websites"
}
