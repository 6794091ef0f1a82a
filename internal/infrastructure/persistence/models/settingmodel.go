package models

import (
	"time"
)

// SettingModel is a generic key/value row for operator-editable settings.
// Values are JSON documents; the rate table lives under the "rates" key.
type SettingModel struct {
	ID         uint      `gorm:"primaryKey"`
	SettingKey string    `gorm:"uniqueIndex;size:100;not null"`
	Value      string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (SettingModel) TableName() string {
	return "settings"
}
