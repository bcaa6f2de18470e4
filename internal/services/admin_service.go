package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"triday/internal/models/db_models"
	"triday/internal/models/request_models"
	"triday/internal/repositories"
	"triday/pkg/utils"
)

type AdminServiceInterface interface {
	ListUsers(ctx context.Context, page int, pageSize int) ([]db_models.User, int64, error)
	CreateUser(ctx context.Context, request request_models.CreateUserRequest) (*db_models.User, error)
	GetUser(ctx context.Context, id string) (*db_models.User, error)
	UpdateUser(ctx context.Context, id string, request request_models.UpdateUserRequest) (*db_models.User, error)
	DeleteUser(ctx context.Context, id string) error
	SuspendUser(ctx context.Context, id string, reason string) (*db_models.User, error)
	ReactivateUser(ctx context.Context, id string, durationDays *int) (*db_models.User, error)
	ListLogs(ctx context.Context, page int, pageSize int, email string, eventType string) ([]db_models.AccessLog, int64, error)
	GetSettings(ctx context.Context) ([]db_models.AppSetting, error)
	UpdateSetting(ctx context.Context, key string, value string) error
}

type AdminService struct {
	userRepo    repositories.UserRepository
	logRepo     repositories.AccessLogRepository
	settingRepo repositories.SettingRepository
	mailService IMailService
	now         func() time.Time
}

func NewAdminService(
	userRepo repositories.UserRepository,
	logRepo repositories.AccessLogRepository,
	settingRepo repositories.SettingRepository,
	mailService IMailService,
) AdminServiceInterface {
	return &AdminService{
		userRepo:    userRepo,
		logRepo:     logRepo,
		settingRepo: settingRepo,
		mailService: mailService,
		now:         time.Now,
	}
}

func (s *AdminService) ListUsers(ctx context.Context, page int, pageSize int) ([]db_models.User, int64, error) {
	if page < 1 {
		return nil, 0, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, 0, utils.ErrInvalidPageSize
	}

	users, total, err := s.userRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return users, total, nil
}

func (s *AdminService) CreateUser(ctx context.Context, request request_models.CreateUserRequest) (*db_models.User, error) {
	if len(request.Password) < minPasswordLength {
		return nil, utils.ErrPasswordTooShort
	}

	existing, err := s.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	role := db_models.RoleUser
	if request.Role == string(db_models.RoleAdmin) {
		role = db_models.RoleAdmin
	}

	accessDays := s.defaultAccessDays(ctx)
	expiresAt := s.now().AddDate(0, 0, accessDays).Unix()

	user := &db_models.User{
		DisplayName:        request.DisplayName,
		Email:              request.Email,
		PasswordHash:       hashed,
		Role:               role,
		Status:             db_models.StatusActive,
		AccessExpiresAt:    &expiresAt,
		AccessDurationDays: accessDays,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return user, nil
}

func (s *AdminService) GetUser(ctx context.Context, id string) (*db_models.User, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id string, request request_models.UpdateUserRequest) (*db_models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.DisplayName != nil {
		user.DisplayName = *request.DisplayName
	}
	if request.Role != nil {
		user.Role = db_models.UserRole(*request.Role)
	}
	if request.AccessDurationDays != nil && *request.AccessDurationDays > 0 {
		user.AccessDurationDays = *request.AccessDurationDays
	}
	if request.Locale != nil {
		user.Locale = *request.Locale
	}
	if request.Theme != nil {
		user.Theme = *request.Theme
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// SuspendUser moves the user to suspended with the admin's reason.
// Nothing but an explicit reactivation leaves that state.
func (s *AdminService) SuspendUser(ctx context.Context, id string, reason string) (*db_models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Status = db_models.StatusSuspended
	user.StatusReason = reason

	logRow := &db_models.AccessLog{
		UserID:      &user.ID,
		UserEmail:   user.Email,
		EventType:   db_models.EventAccessSuspended,
		EventDetail: reason,
	}
	if err := s.userRepo.SaveWithLog(ctx, user, logRow); err != nil {
		return nil, utils.ErrDatabaseError
	}

	go func(to string) {
		if err := s.mailService.SendMailToNotifyUser(
			to,
			"Your account has been suspended",
			"Your access to the program has been suspended. Contact support if you believe this is a mistake.",
			"", "",
		); err != nil {
			log.Printf("suspension mail to %s failed: %v", to, err)
		}
	}(user.Email)

	return user, nil
}

// ReactivateUser returns a suspended or expired user to active and
// extends the access window from now, not from the prior expiry.
func (s *AdminService) ReactivateUser(ctx context.Context, id string, durationDays *int) (*db_models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	days := s.defaultAccessDays(ctx)
	if durationDays != nil && *durationDays > 0 {
		days = *durationDays
	}

	expiresAt := s.now().AddDate(0, 0, days).Unix()
	user.Status = db_models.StatusActive
	user.StatusReason = ""
	user.AccessExpiresAt = &expiresAt
	user.AccessDurationDays = days

	logRow := &db_models.AccessLog{
		UserID:      &user.ID,
		UserEmail:   user.Email,
		EventType:   db_models.EventAccessReactivated,
		EventDetail: fmt.Sprintf("access extended by %d days", days),
	}
	if err := s.userRepo.SaveWithLog(ctx, user, logRow); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return user, nil
}

func (s *AdminService) ListLogs(ctx context.Context, page int, pageSize int, email string, eventType string) ([]db_models.AccessLog, int64, error) {
	if page < 1 {
		return nil, 0, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, 0, utils.ErrInvalidPageSize
	}

	logs, total, err := s.logRepo.List(ctx, page, pageSize, email, eventType)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return logs, total, nil
}

func (s *AdminService) GetSettings(ctx context.Context) ([]db_models.AppSetting, error) {
	settings, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return settings, nil
}

func (s *AdminService) UpdateSetting(ctx context.Context, key string, value string) error {
	if key == "" {
		return utils.ErrInvalidInput
	}
	if err := s.settingRepo.Upsert(ctx, key, value); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AdminService) defaultAccessDays(ctx context.Context) int {
	days := 60
	setting, err := s.settingRepo.Get(ctx, db_models.SettingDefaultAccessDays)
	if err == nil && setting != nil {
		if n, convErr := strconv.Atoi(setting.Value); convErr == nil && n > 0 {
			days = n
		}
	}
	return days
}
