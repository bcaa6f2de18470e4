package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"triday/internal/models/db_models"
)

type SettingRepository interface {
	GetAll(ctx context.Context) ([]db_models.AppSetting, error)
	Get(ctx context.Context, key string) (*db_models.AppSetting, error)
	Upsert(ctx context.Context, key string, value string) error
	// SeedDefaults inserts any missing keys without touching existing rows.
	SeedDefaults(ctx context.Context, defaults map[string]string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetAll(ctx context.Context) ([]db_models.AppSetting, error) {
	var settings []db_models.AppSetting
	err := r.db.WithContext(ctx).Order("key").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepository) Get(ctx context.Context, key string) (*db_models.AppSetting, error) {
	var setting db_models.AppSetting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) Upsert(ctx context.Context, key string, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&db_models.AppSetting{Key: key, Value: value}).Error
}

func (r *settingRepository) SeedDefaults(ctx context.Context, defaults map[string]string) error {
	for key, value := range defaults {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoNothing: true,
			}).
			Create(&db_models.AppSetting{Key: key, Value: value}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
