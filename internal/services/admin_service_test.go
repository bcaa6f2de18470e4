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

func newAdminServiceForTest() (*AdminService, *fakeUserRepo, *fakeLogRepo, *fakeSettingRepo) {
	userRepo := newFakeUserRepo()
	logRepo := &fakeLogRepo{}
	settingRepo := newFakeSettingRepo()
	svc := &AdminService{
		userRepo:    userRepo,
		logRepo:     logRepo,
		settingRepo: settingRepo,
		mailService: &fakeMailService{},
		now:         time.Now,
	}
	return svc, userRepo, logRepo, settingRepo
}

func adminSeedUser(t *testing.T, svc *AdminService) *db_models.User {
	t.Helper()
	user, err := svc.CreateUser(context.Background(), request_models.CreateUserRequest{
		DisplayName: "Mai",
		Email:       "mai@example.com",
		Password:    "longenough",
	})
	require.NoError(t, err)
	return user
}

func TestListUsersValidatesPagination(t *testing.T) {
	svc, _, _, _ := newAdminServiceForTest()

	_, _, err := svc.ListUsers(context.Background(), 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, _, err = svc.ListUsers(context.Background(), 1, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, _, err = svc.ListUsers(context.Background(), 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestAdminCreateUserWithRole(t *testing.T) {
	svc, _, _, _ := newAdminServiceForTest()

	user, err := svc.CreateUser(context.Background(), request_models.CreateUserRequest{
		DisplayName: "Ops",
		Email:       "ops@example.com",
		Password:    "longenough",
		Role:        "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleAdmin, user.Role)
	assert.Equal(t, db_models.StatusActive, user.Status)
}

func TestAdminCreateUserDefaultsToUserRole(t *testing.T) {
	svc, _, _, _ := newAdminServiceForTest()
	user := adminSeedUser(t, svc)
	assert.Equal(t, db_models.RoleUser, user.Role)
}

func TestSuspendAndReactivateUser(t *testing.T) {
	svc, userRepo, _, _ := newAdminServiceForTest()
	user := adminSeedUser(t, svc)

	suspended, err := svc.SuspendUser(context.Background(), user.ID.String(), "chargeback filed")
	require.NoError(t, err)
	assert.Equal(t, db_models.StatusSuspended, suspended.Status)
	assert.Equal(t, "chargeback filed", suspended.StatusReason)

	days := 14
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }

	reactivated, err := svc.ReactivateUser(context.Background(), user.ID.String(), &days)
	require.NoError(t, err)
	assert.Equal(t, db_models.StatusActive, reactivated.Status)
	assert.Empty(t, reactivated.StatusReason)
	assert.Equal(t, 14, reactivated.AccessDurationDays)
	require.NotNil(t, reactivated.AccessExpiresAt)
	assert.Equal(t, start.AddDate(0, 0, 14).Unix(), *reactivated.AccessExpiresAt)

	var events []string
	for _, l := range userRepo.logs {
		events = append(events, l.EventType)
	}
	assert.Equal(t, []string{db_models.EventAccessSuspended, db_models.EventAccessReactivated}, events)
}

func TestReactivateUsesDefaultDurationWhenOmitted(t *testing.T) {
	svc, _, _, settingRepo := newAdminServiceForTest()
	settingRepo.settings[db_models.SettingDefaultAccessDays] = "90"
	user := adminSeedUser(t, svc)

	reactivated, err := svc.ReactivateUser(context.Background(), user.ID.String(), nil)
	require.NoError(t, err)
	assert.Equal(t, 90, reactivated.AccessDurationDays)
}

func TestUpdateUserPartialFields(t *testing.T) {
	svc, _, _, _ := newAdminServiceForTest()
	user := adminSeedUser(t, svc)

	role := "admin"
	days := 120
	updated, err := svc.UpdateUser(context.Background(), user.ID.String(), request_models.UpdateUserRequest{
		Role:               &role,
		AccessDurationDays: &days,
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleAdmin, updated.Role)
	assert.Equal(t, 120, updated.AccessDurationDays)
	assert.Equal(t, "Mai", updated.DisplayName)
}

func TestDeleteUser(t *testing.T) {
	svc, _, _, _ := newAdminServiceForTest()
	user := adminSeedUser(t, svc)

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID.String()))

	_, err := svc.GetUser(context.Background(), user.ID.String())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestListLogsFiltersByEventType(t *testing.T) {
	svc, _, logRepo, _ := newAdminServiceForTest()
	logRepo.logs = []db_models.AccessLog{
		{UserEmail: "a@example.com", EventType: db_models.EventUserLogin},
		{UserEmail: "a@example.com", EventType: db_models.EventDayCompleted},
		{UserEmail: "b@example.com", EventType: db_models.EventUserLogin},
	}

	logs, total, err := svc.ListLogs(context.Background(), 1, 20, "", db_models.EventUserLogin)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, logs, 2)

	logs, _, err = svc.ListLogs(context.Background(), 1, 20, "a@example.com", db_models.EventUserLogin)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestUpdateSettingRejectsEmptyKey(t *testing.T) {
	svc, _, _, _ := newAdminServiceForTest()

	err := svc.UpdateSetting(context.Background(), "", "10")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUpdateSettingRoundTrip(t *testing.T) {
	svc, _, _, _ := newAdminServiceForTest()

	require.NoError(t, svc.UpdateSetting(context.Background(), db_models.SettingProgramPriceMinor, "249000"))

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, "249000", settings[0].Value)
}
