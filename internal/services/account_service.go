package services

import (
	"context"
	"log"
	"strconv"
	"time"

	"triday/internal/models/db_models"
	"triday/internal/models/request_models"
	"triday/internal/progression"
	"triday/internal/repositories"
	mem "triday/pkg/memcache"
	"triday/pkg/utils"
)

const (
	minPasswordLength = 8
	resetTokenTTL     = 15 * time.Minute
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, *db_models.User, error)
	GetProfile(ctx context.Context, userID string) (*db_models.User, error)
	UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*db_models.User, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyAndConsumeResetToken(ctx context.Context, request request_models.ForgotPasswordRequest) error
}

type AccountService struct {
	userRepo    repositories.UserRepository
	logRepo     repositories.AccessLogRepository
	settingRepo repositories.SettingRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
	now         func() time.Time
}

func NewAccountService(
	userRepo repositories.UserRepository,
	logRepo repositories.AccessLogRepository,
	settingRepo repositories.SettingRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
) AccountServiceInterface {
	return &AccountService{
		userRepo:    userRepo,
		logRepo:     logRepo,
		settingRepo: settingRepo,
		mailService: mailService,
		resetTokens: resetTokens,
		now:         time.Now,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	if len(request.Password) < minPasswordLength {
		return utils.ErrPasswordTooShort
	}

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	accessDays := a.defaultAccessDays(ctx)
	expiresAt := a.now().AddDate(0, 0, accessDays).Unix()

	progress := progression.Defaults()
	newUser := &db_models.User{
		DisplayName:        request.DisplayName,
		Email:              request.Email,
		PasswordHash:       hashedPassword,
		Role:               db_models.RoleUser,
		Status:             db_models.StatusActive,
		AccessExpiresAt:    &expiresAt,
		AccessDurationDays: accessDays,
		Progress:           &progress,
	}

	// The associated progress row is created in the same insert.
	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		return utils.ErrDatabaseError
	}

	a.appendLog(ctx, newUser, db_models.EventUserRegistered, "")

	go func(to, name string) {
		if err := a.mailService.SendMailToNotifyUser(
			to,
			"Welcome to your 3-day journey",
			"Hi "+name+", your self-care journey starts now. Take it one day at a time.",
			"Start Day 1", "",
		); err != nil {
			log.Printf("welcome mail to %s failed: %v", to, err)
		}
	}(newUser.Email, newUser.DisplayName)

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, *db_models.User, error) {

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", nil, utils.ErrDatabaseError
	}
	if user == nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	// Lazy expiry: evaluated only here, and never for suspended users.
	// Suspension outranks expiry and only an admin clears it.
	if user.Status != db_models.StatusSuspended &&
		user.Status != db_models.StatusExpired &&
		user.AccessExpiresAt != nil && *user.AccessExpiresAt < a.now().Unix() {

		user.Status = db_models.StatusExpired
		logRow := &db_models.AccessLog{
			UserID:      &user.ID,
			UserEmail:   user.Email,
			EventType:   db_models.EventAccessExpired,
			EventDetail: "access window elapsed at login",
		}
		if err := a.userRepo.SaveWithLog(ctx, user, logRow); err != nil {
			return "", nil, utils.ErrDatabaseError
		}
	}

	token, err := utils.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	a.appendLog(ctx, user, db_models.EventUserLogin, "")

	return token, user, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID string) (*db_models.User, error) {
	user, err := a.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	return user, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*db_models.User, error) {
	user, err := a.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	if request.DisplayName != nil {
		user.DisplayName = *request.DisplayName
	}
	if request.Locale != nil {
		user.Locale = *request.Locale
	}
	if request.Theme != nil {
		user.Theme = *request.Theme
	}
	if request.NotificationsEnabled != nil {
		user.NotificationsEnabled = *request.NotificationsEnabled
	}
	if request.NotificationTime != nil {
		user.NotificationTime = *request.NotificationTime
	}

	if err := a.userRepo.Save(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return user, nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		// Respond identically whether or not the email exists.
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, user.Email, resetTokenTTL)

	go func(to, t string) {
		if err := a.mailService.SendMailToResetPassword(to, t); err != nil {
			log.Printf("reset mail to %s failed: %v", to, err)
		}
	}(user.Email, token)

	return nil
}

func (a *AccountService) VerifyAndConsumeResetToken(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	if len(request.NewPassword) < minPasswordLength {
		return utils.ErrPasswordTooShort
	}

	email := a.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	user.PasswordHash = hashed

	if err := a.userRepo.Save(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) defaultAccessDays(ctx context.Context) int {
	days := 60
	setting, err := a.settingRepo.Get(ctx, db_models.SettingDefaultAccessDays)
	if err == nil && setting != nil {
		if n, convErr := strconv.Atoi(setting.Value); convErr == nil && n > 0 {
			days = n
		}
	}
	return days
}

func (a *AccountService) appendLog(ctx context.Context, user *db_models.User, eventType, detail string) {
	logRow := &db_models.AccessLog{
		UserID:      &user.ID,
		UserEmail:   user.Email,
		EventType:   eventType,
		EventDetail: detail,
	}
	if err := a.logRepo.Insert(ctx, logRow); err != nil {
		log.Printf("access log insert failed (%s): %v", eventType, err)
	}
}
