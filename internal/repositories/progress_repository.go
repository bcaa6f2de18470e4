package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"triday/internal/models/db_models"
)

type ProgressRepository interface {
	FindByUserId(ctx context.Context, userID uuid.UUID) (*db_models.JourneyProgress, error)
	Insert(ctx context.Context, progress *db_models.JourneyProgress) error
	Save(ctx context.Context, progress *db_models.JourneyProgress) error
	// SaveWithLog persists the progress row and the matching audit row
	// as one all-or-nothing unit.
	SaveWithLog(ctx context.Context, progress *db_models.JourneyProgress, logRow *db_models.AccessLog) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) FindByUserId(ctx context.Context, userID uuid.UUID) (*db_models.JourneyProgress, error) {
	var progress db_models.JourneyProgress
	err := r.db.WithContext(ctx).First(&progress, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) Insert(ctx context.Context, progress *db_models.JourneyProgress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

func (r *progressRepository) Save(ctx context.Context, progress *db_models.JourneyProgress) error {
	return r.db.WithContext(ctx).Save(progress).Error
}

func (r *progressRepository) SaveWithLog(ctx context.Context, progress *db_models.JourneyProgress, logRow *db_models.AccessLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(progress).Error; err != nil {
			return err
		}
		return tx.Create(logRow).Error
	})
}
