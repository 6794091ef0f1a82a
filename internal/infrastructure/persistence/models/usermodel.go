package models

import (
	"time"
)

// UserModel is the persistence shape of a portal account.
type UserModel struct {
	ID           uint       `gorm:"primaryKey"`
	Email        string     `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `gorm:"size:255;not null"`
	DisplayName  string     `gorm:"size:100;not null"`
	Role         string     `gorm:"size:30;not null;index"`
	Active       bool       `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}
