package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triday/internal/models/db_models"
	"triday/pkg/utils"
)

func newAnswerServiceForTest() (*AnswerService, *fakeAnswerRepo) {
	repo := newFakeAnswerRepo()
	return &AnswerService{answerRepo: repo}, repo
}

func TestSaveAnswerRejectsUnknownDayKey(t *testing.T) {
	svc, _ := newAnswerServiceForTest()

	_, err := svc.SaveAnswer(context.Background(), uuid.New(), "day4", json.RawMessage(`{"mood":5}`))
	assert.ErrorIs(t, err, utils.ErrInvalidDayKey)
}

func TestSaveAnswerRejectsEmptyPayload(t *testing.T) {
	svc, _ := newAnswerServiceForTest()

	_, err := svc.SaveAnswer(context.Background(), uuid.New(), "day1", nil)
	assert.ErrorIs(t, err, utils.ErrMissingAnswers)

	_, err = svc.SaveAnswer(context.Background(), uuid.New(), "day1", json.RawMessage(`null`))
	assert.ErrorIs(t, err, utils.ErrMissingAnswers)
}

func TestSaveAnswerRoundTrip(t *testing.T) {
	svc, _ := newAnswerServiceForTest()
	userID := uuid.New()

	payload := json.RawMessage(`{"mood":4,"note":"slept well"}`)
	saved, err := svc.SaveAnswer(context.Background(), userID, "day1", payload)
	require.NoError(t, err)
	assert.Equal(t, db_models.DayKeyDay1, saved.DayKey)

	got, err := svc.GetAnswer(context.Background(), userID, "day1")
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(got.Answers))
}

func TestSaveAnswerReplacesPriorPayload(t *testing.T) {
	svc, _ := newAnswerServiceForTest()
	userID := uuid.New()

	_, err := svc.SaveAnswer(context.Background(), userID, "welcome", json.RawMessage(`{"goal":"rest"}`))
	require.NoError(t, err)

	_, err = svc.SaveAnswer(context.Background(), userID, "welcome", json.RawMessage(`{"goal":"focus"}`))
	require.NoError(t, err)

	got, err := svc.GetAnswer(context.Background(), userID, "welcome")
	require.NoError(t, err)
	assert.JSONEq(t, `{"goal":"focus"}`, string(got.Answers))

	all, err := svc.ListAnswers(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetAnswerNotFound(t *testing.T) {
	svc, _ := newAnswerServiceForTest()

	_, err := svc.GetAnswer(context.Background(), uuid.New(), "day2")
	assert.ErrorIs(t, err, utils.ErrAnswerNotFound)
}

func TestListAnswersScopedToUser(t *testing.T) {
	svc, _ := newAnswerServiceForTest()
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.SaveAnswer(context.Background(), alice, "day1", json.RawMessage(`{"mood":3}`))
	require.NoError(t, err)
	_, err = svc.SaveAnswer(context.Background(), bob, "day1", json.RawMessage(`{"mood":5}`))
	require.NoError(t, err)

	got, err := svc.ListAnswers(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, alice, got[0].UserID)
}
