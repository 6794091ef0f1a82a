package models

import (
	"time"
)

// SubscriptionModel is the persistence shape of a maintenance subscription.
// A client has at most one row.
type SubscriptionModel struct {
	ID                 uint       `gorm:"primaryKey"`
	ClientID           uint       `gorm:"uniqueIndex;not null"`
	Tier               string     `gorm:"size:20;not null"`
	Cycle              string     `gorm:"size:20;not null"`
	Status             string     `gorm:"size:20;not null;index"`
	Price              float64    `gorm:"not null;default:0"`
	CurrentPeriodStart time.Time  `gorm:"not null"`
	CurrentPeriodEnd   time.Time  `gorm:"not null"`
	CancelledAt        *time.Time
	CreatedAt          time.Time  `gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
