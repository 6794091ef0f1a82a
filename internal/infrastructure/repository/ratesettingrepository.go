package repository

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/techile/fieldportal/internal/domain/pricing"
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
	"github.com/techile/fieldportal/internal/shared/db"
	"github.com/techile/fieldportal/internal/shared/logger"
)

const rateSettingKey = "rates"

// RateSettingRepository stores the published rate table as a JSON document
// in the settings table, one row under the "rates" key.
type RateSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewRateSettingRepository(db *gorm.DB, logger logger.Interface) *RateSettingRepository {
	return &RateSettingRepository{db: db, logger: logger}
}

// Load returns the stored rate table. The second return reports whether a
// row exists; callers fall back to defaults when it does not.
func (r *RateSettingRepository) Load(ctx context.Context) (pricing.RateTable, bool, error) {
	var model models.SettingModel

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.Where("setting_key = ?", rateSettingKey).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.RateTable{}, false, nil
		}
		r.logger.Errorw("failed to load rate setting", "error", err)
		return pricing.RateTable{}, false, fmt.Errorf("failed to load rate setting: %w", err)
	}

	var rt pricing.RateTable
	if err := json.Unmarshal([]byte(model.Value), &rt); err != nil {
		return pricing.RateTable{}, false, fmt.Errorf("failed to unmarshal rate setting: %w", err)
	}

	return rt, true, nil
}

func (r *RateSettingRepository) Store(ctx context.Context, rt pricing.RateTable) error {
	data, err := json.Marshal(rt)
	if err != nil {
		return fmt.Errorf("failed to marshal rate setting: %w", err)
	}

	model := models.SettingModel{
		SettingKey: rateSettingKey,
		Value:      string(data),
	}

	conn := db.GetTxFromContext(ctx, r.db)
	err = conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		r.logger.Errorw("failed to store rate setting", "error", err)
		return fmt.Errorf("failed to store rate setting: %w", err)
	}

	return nil
}
