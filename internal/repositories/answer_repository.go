package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"triday/internal/models/db_models"
)

type AnswerRepository interface {
	// Upsert replaces the stored payload for (user_id, day_key); there
	// are no merge semantics.
	Upsert(ctx context.Context, answer *db_models.DayAnswer) error
	FindByUserAndKey(ctx context.Context, userID uuid.UUID, key db_models.DayKey) (*db_models.DayAnswer, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.DayAnswer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Upsert(ctx context.Context, answer *db_models.DayAnswer) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"answers", "updated_at"}),
		}).
		Create(answer).Error
}

func (r *answerRepository) FindByUserAndKey(ctx context.Context, userID uuid.UUID, key db_models.DayKey) (*db_models.DayAnswer, error) {
	var answer db_models.DayAnswer
	err := r.db.WithContext(ctx).
		First(&answer, "user_id = ? AND day_key = ?", userID, key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.DayAnswer, error) {
	var answers []db_models.DayAnswer
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day_key").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
