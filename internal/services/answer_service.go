package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"triday/internal/models/db_models"
	"triday/internal/repositories"
	"triday/pkg/utils"
)

type AnswerServiceInterface interface {
	SaveAnswer(ctx context.Context, userID uuid.UUID, dayKey string, answers json.RawMessage) (*db_models.DayAnswer, error)
	GetAnswer(ctx context.Context, userID uuid.UUID, dayKey string) (*db_models.DayAnswer, error)
	ListAnswers(ctx context.Context, userID uuid.UUID) ([]db_models.DayAnswer, error)
}

type AnswerService struct {
	answerRepo repositories.AnswerRepository
}

func NewAnswerService(answerRepo repositories.AnswerRepository) AnswerServiceInterface {
	return &AnswerService{
		answerRepo: answerRepo,
	}
}

// SaveAnswer fully replaces the stored payload for (user, dayKey).
func (s *AnswerService) SaveAnswer(ctx context.Context, userID uuid.UUID, dayKey string, answers json.RawMessage) (*db_models.DayAnswer, error) {
	key := db_models.DayKey(dayKey)
	if !db_models.ValidDayKey(key) {
		return nil, utils.ErrInvalidDayKey
	}
	if len(answers) == 0 || string(answers) == "null" {
		return nil, utils.ErrMissingAnswers
	}

	answer := &db_models.DayAnswer{
		UserID:  userID,
		DayKey:  key,
		Answers: datatypes.JSON(answers),
	}
	if err := s.answerRepo.Upsert(ctx, answer); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return answer, nil
}

func (s *AnswerService) GetAnswer(ctx context.Context, userID uuid.UUID, dayKey string) (*db_models.DayAnswer, error) {
	key := db_models.DayKey(dayKey)
	if !db_models.ValidDayKey(key) {
		return nil, utils.ErrInvalidDayKey
	}

	answer, err := s.answerRepo.FindByUserAndKey(ctx, userID, key)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if answer == nil {
		return nil, utils.ErrAnswerNotFound
	}

	return answer, nil
}

func (s *AnswerService) ListAnswers(ctx context.Context, userID uuid.UUID) ([]db_models.DayAnswer, error) {
	answers, err := s.answerRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return answers, nil
}
