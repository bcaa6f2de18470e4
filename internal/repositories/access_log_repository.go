package repositories

import (
	"context"

	"gorm.io/gorm"

	"triday/internal/models/db_models"
)

type AccessLogRepository interface {
	Insert(ctx context.Context, logRow *db_models.AccessLog) error
	List(ctx context.Context, page int, pageSize int, email string, eventType string) ([]db_models.AccessLog, int64, error)
}

type accessLogRepository struct {
	db *gorm.DB
}

func NewAccessLogRepository(db *gorm.DB) AccessLogRepository {
	return &accessLogRepository{db: db}
}

func (r *accessLogRepository) Insert(ctx context.Context, logRow *db_models.AccessLog) error {
	return r.db.WithContext(ctx).Create(logRow).Error
}

func (r *accessLogRepository) List(ctx context.Context, page int, pageSize int, email string, eventType string) ([]db_models.AccessLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&db_models.AccessLog{})
	if email != "" {
		q = q.Where("user_email = ?", email)
	}
	if eventType != "" {
		q = q.Where("event_type = ?", eventType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []db_models.AccessLog
	err := q.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
