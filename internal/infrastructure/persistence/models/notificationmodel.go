package models

import (
	"time"
)

// NotificationModel is the persistence shape of an in-app notification.
type NotificationModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_user_read"`
	Type      string    `gorm:"size:20;not null"`
	Title     string    `gorm:"size:200;not null"`
	Message   string    `gorm:"type:text"`
	ActionURL string    `gorm:"size:500"`
	IsRead    bool      `gorm:"not null;default:false;index:idx_user_read"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
