package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triday/internal/models/db_models"
	"triday/internal/models/request_models"
	"triday/pkg/utils"
)

func newAccountServiceForTest() (*AccountService, *fakeUserRepo, *fakeLogRepo, *fakeSettingRepo, *fakeMailService, *fakeTokenStore) {
	userRepo := newFakeUserRepo()
	logRepo := &fakeLogRepo{}
	settingRepo := newFakeSettingRepo()
	mail := &fakeMailService{}
	tokens := newFakeTokenStore()

	svc := &AccountService{
		userRepo:    userRepo,
		logRepo:     logRepo,
		settingRepo: settingRepo,
		mailService: mail,
		resetTokens: tokens,
		now:         time.Now,
	}
	return svc, userRepo, logRepo, settingRepo, mail, tokens
}

func TestCreateAccountRejectsShortPassword(t *testing.T) {
	svc, userRepo, _, _, _, _ := newAccountServiceForTest()

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Mai",
		Email:       "mai@example.com",
		Password:    "short",
	})

	assert.ErrorIs(t, err, utils.ErrPasswordTooShort)
	assert.Empty(t, userRepo.users)
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	svc, _, _, _, _, _ := newAccountServiceForTest()

	req := request_models.SignUpRequest{
		DisplayName: "Mai",
		Email:       "mai@example.com",
		Password:    "longenough",
	}
	require.NoError(t, svc.CreateAccount(context.Background(), req))

	err := svc.CreateAccount(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestCreateAccountSeedsProgressAndAccessWindow(t *testing.T) {
	svc, userRepo, logRepo, settingRepo, _, _ := newAccountServiceForTest()
	settingRepo.settings[db_models.SettingDefaultAccessDays] = "30"

	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Mai",
		Email:       "mai@example.com",
		Password:    "longenough",
	})
	require.NoError(t, err)

	user, err := userRepo.FindByEmail(context.Background(), "mai@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, db_models.RoleUser, user.Role)
	assert.Equal(t, db_models.StatusActive, user.Status)
	assert.Equal(t, 30, user.AccessDurationDays)
	require.NotNil(t, user.AccessExpiresAt)
	assert.Equal(t, start.AddDate(0, 0, 30).Unix(), *user.AccessExpiresAt)

	require.NotNil(t, user.Progress)
	assert.Equal(t, 0, user.Progress.CurrentDay)
	assert.Equal(t, 0, user.Progress.Streak)
	assert.Empty(t, user.Progress.CompletedDays)

	assert.Contains(t, logRepo.events(), db_models.EventUserRegistered)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _, _, _, _ := newAccountServiceForTest()
	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Mai", Email: "mai@example.com", Password: "longenough",
	}))

	_, _, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "mai@example.com", Password: "wrongwrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _, _, _, _ := newAccountServiceForTest()

	_, _, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "nobody@example.com", Password: "whatever1",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginMarksExpiredAccessLazily(t *testing.T) {
	svc, userRepo, _, _, _, _ := newAccountServiceForTest()
	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Mai", Email: "mai@example.com", Password: "longenough",
	}))

	user, _ := userRepo.FindByEmail(context.Background(), "mai@example.com")
	past := time.Now().AddDate(0, 0, -1).Unix()
	user.AccessExpiresAt = &past

	token, loggedIn, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "mai@example.com", Password: "longenough",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, db_models.StatusExpired, loggedIn.Status)

	var expiredEvents int
	for _, l := range userRepo.logs {
		if l.EventType == db_models.EventAccessExpired {
			expiredEvents++
		}
	}
	assert.Equal(t, 1, expiredEvents)
}

func TestLoginExpiryCheckSkipsSuspendedUsers(t *testing.T) {
	svc, userRepo, _, _, _, _ := newAccountServiceForTest()
	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Mai", Email: "mai@example.com", Password: "longenough",
	}))

	user, _ := userRepo.FindByEmail(context.Background(), "mai@example.com")
	past := time.Now().AddDate(0, 0, -1).Unix()
	user.AccessExpiresAt = &past
	user.Status = db_models.StatusSuspended
	user.StatusReason = "refund dispute"

	_, loggedIn, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "mai@example.com", Password: "longenough",
	})
	require.NoError(t, err)

	// Suspension outranks expiry; the status must survive the login.
	assert.Equal(t, db_models.StatusSuspended, loggedIn.Status)
	assert.Equal(t, "refund dispute", loggedIn.StatusReason)
	assert.Empty(t, userRepo.logs)
}

func TestLoginAlreadyExpiredDoesNotRelog(t *testing.T) {
	svc, userRepo, _, _, _, _ := newAccountServiceForTest()
	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Mai", Email: "mai@example.com", Password: "longenough",
	}))

	user, _ := userRepo.FindByEmail(context.Background(), "mai@example.com")
	past := time.Now().AddDate(0, 0, -1).Unix()
	user.AccessExpiresAt = &past
	user.Status = db_models.StatusExpired

	_, _, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "mai@example.com", Password: "longenough",
	})
	require.NoError(t, err)
	assert.Empty(t, userRepo.logs)
}

func TestUpdateProfilePartialFields(t *testing.T) {
	svc, userRepo, _, _, _, _ := newAccountServiceForTest()
	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Mai", Email: "mai@example.com", Password: "longenough",
	}))
	user, _ := userRepo.FindByEmail(context.Background(), "mai@example.com")

	theme := "dark"
	updated, err := svc.UpdateProfile(context.Background(), user.ID.String(), request_models.UpdateProfileRequest{
		Theme: &theme,
	})
	require.NoError(t, err)

	assert.Equal(t, "dark", updated.Theme)
	assert.Equal(t, "Mai", updated.DisplayName)
}

func TestForgotPasswordSilentOnUnknownEmail(t *testing.T) {
	svc, _, _, _, mail, tokens := newAccountServiceForTest()

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Empty(t, mail.resets)
	assert.Empty(t, tokens.tokens)
}

func TestResetTokenIsSingleUse(t *testing.T) {
	svc, _, _, _, _, tokens := newAccountServiceForTest()
	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Mai", Email: "mai@example.com", Password: "longenough",
	}))

	tokens.Set("tok-1", "mai@example.com", time.Minute)

	req := request_models.ForgotPasswordRequest{Token: "tok-1", NewPassword: "freshpassword"}
	require.NoError(t, svc.VerifyAndConsumeResetToken(context.Background(), req))

	err := svc.VerifyAndConsumeResetToken(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)

	_, _, loginErr := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "mai@example.com", Password: "freshpassword",
	})
	assert.NoError(t, loginErr)
}

func TestResetTokenRejectsShortPassword(t *testing.T) {
	svc, _, _, _, _, tokens := newAccountServiceForTest()
	tokens.Set("tok-1", "mai@example.com", time.Minute)

	err := svc.VerifyAndConsumeResetToken(context.Background(), request_models.ForgotPasswordRequest{
		Token: "tok-1", NewPassword: "tiny",
	})
	assert.ErrorIs(t, err, utils.ErrPasswordTooShort)

	// The token must survive a rejected attempt.
	_, ok := tokens.Peek("tok-1")
	assert.True(t, ok)
}
