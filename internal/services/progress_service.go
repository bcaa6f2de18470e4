package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"triday/internal/models/db_models"
	"triday/internal/models/request_models"
	"triday/internal/progression"
	"triday/internal/repositories"
	"triday/pkg/utils"
)

type ProgressServiceInterface interface {
	GetProgress(ctx context.Context, userID uuid.UUID) (*db_models.JourneyProgress, error)
	UpdateProgress(ctx context.Context, userID uuid.UUID, request request_models.UpdateProgressRequest) (*db_models.JourneyProgress, error)
	CompleteDay(ctx context.Context, userID uuid.UUID, day int) (*db_models.JourneyProgress, error)
}

type ProgressService struct {
	progressRepo repositories.ProgressRepository
	userRepo     repositories.UserRepository
	now          func() time.Time
}

func NewProgressService(progressRepo repositories.ProgressRepository, userRepo repositories.UserRepository) ProgressServiceInterface {
	return &ProgressService{
		progressRepo: progressRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

// GetProgress returns the user's progress row, creating it with
// defaults on first access.
func (s *ProgressService) GetProgress(ctx context.Context, userID uuid.UUID) (*db_models.JourneyProgress, error) {
	return s.getOrCreate(ctx, userID)
}

func (s *ProgressService) UpdateProgress(ctx context.Context, userID uuid.UUID, request request_models.UpdateProgressRequest) (*db_models.JourneyProgress, error) {
	progress, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Client sync may move the pointer and step; the completed set and
	// streak are only ever written by CompleteDay.
	if request.CurrentDay != nil {
		if !progression.ValidDay(*request.CurrentDay) {
			return nil, utils.ErrInvalidDayNumber
		}
		progress.CurrentDay = *request.CurrentDay
	}
	if request.CurrentStep != nil {
		step := db_models.JourneyStep(*request.CurrentStep)
		switch step {
		case db_models.StepContent, db_models.StepSurvey, db_models.StepCelebration:
			progress.CurrentStep = step
		default:
			return nil, utils.ErrInvalidInput
		}
	}

	if err := s.progressRepo.Save(ctx, progress); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return progress, nil
}

func (s *ProgressService) CompleteDay(ctx context.Context, userID uuid.UUID, day int) (*db_models.JourneyProgress, error) {
	if !progression.ValidDay(day) {
		return nil, utils.ErrInvalidDayNumber
	}

	user, err := s.userRepo.FindById(ctx, userID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	progress, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	progression.ApplyCompletion(progress, day, s.now())

	logRow := &db_models.AccessLog{
		UserID:      &user.ID,
		UserEmail:   user.Email,
		EventType:   db_models.EventDayCompleted,
		EventDetail: fmt.Sprintf("day %d", day),
	}
	if err := s.progressRepo.SaveWithLog(ctx, progress, logRow); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return progress, nil
}

func (s *ProgressService) getOrCreate(ctx context.Context, userID uuid.UUID) (*db_models.JourneyProgress, error) {
	progress, err := s.progressRepo.FindByUserId(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if progress != nil {
		return progress, nil
	}

	fresh := progression.Defaults()
	fresh.UserID = userID
	if err := s.progressRepo.Insert(ctx, &fresh); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &fresh, nil
}
