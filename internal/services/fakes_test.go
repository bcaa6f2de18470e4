package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	payos "github.com/payOSHQ/payos-lib-golang"

	"triday/internal/models/db_models"
)

// In-memory fakes shared by the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*db_models.User
	logs  []db_models.AccessLog
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*db_models.User{}}
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Progress != nil && user.Progress.ID == uuid.Nil {
		user.Progress.ID = uuid.New()
		user.Progress.UserID = user.ID
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindById(ctx context.Context, id string) (*db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	if u, ok := f.users[parsed]; ok {
		return u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) Save(ctx context.Context, user *db_models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) SaveWithLog(ctx context.Context, user *db_models.User, logRow *db_models.AccessLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	f.logs = append(f.logs, *logRow)
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, page int, pageSize int) ([]db_models.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, int64(len(f.users)), nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeLogRepo struct {
	mu   sync.Mutex
	logs []db_models.AccessLog
}

func (f *fakeLogRepo) Insert(ctx context.Context, logRow *db_models.AccessLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, *logRow)
	return nil
}

func (f *fakeLogRepo) List(ctx context.Context, page int, pageSize int, email string, eventType string) ([]db_models.AccessLog, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.AccessLog
	for _, l := range f.logs {
		if email != "" && l.UserEmail != email {
			continue
		}
		if eventType != "" && l.EventType != eventType {
			continue
		}
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLogRepo) events() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, l := range f.logs {
		out = append(out, l.EventType)
	}
	return out
}

type fakeSettingRepo struct {
	mu       sync.Mutex
	settings map[string]string
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{settings: map[string]string{}}
}

func (f *fakeSettingRepo) GetAll(ctx context.Context) ([]db_models.AppSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.AppSetting
	for k, v := range f.settings {
		out = append(out, db_models.AppSetting{Key: k, Value: v})
	}
	return out, nil
}

func (f *fakeSettingRepo) Get(ctx context.Context, key string) (*db_models.AppSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.settings[key]; ok {
		return &db_models.AppSetting{Key: key, Value: v}, nil
	}
	return nil, nil
}

func (f *fakeSettingRepo) Upsert(ctx context.Context, key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings[key] = value
	return nil
}

func (f *fakeSettingRepo) SeedDefaults(ctx context.Context, defaults map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, v := range defaults {
		if _, ok := f.settings[k]; !ok {
			f.settings[k] = v
		}
	}
	return nil
}

type fakeProgressRepo struct {
	mu       sync.Mutex
	progress map[uuid.UUID]*db_models.JourneyProgress
	logs     []db_models.AccessLog
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{progress: map[uuid.UUID]*db_models.JourneyProgress{}}
}

func (f *fakeProgressRepo) FindByUserId(ctx context.Context, userID uuid.UUID) (*db_models.JourneyProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.progress[userID]; ok {
		return p, nil
	}
	return nil, nil
}

func (f *fakeProgressRepo) Insert(ctx context.Context, progress *db_models.JourneyProgress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if progress.ID == uuid.Nil {
		progress.ID = uuid.New()
	}
	f.progress[progress.UserID] = progress
	return nil
}

func (f *fakeProgressRepo) Save(ctx context.Context, progress *db_models.JourneyProgress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress[progress.UserID] = progress
	return nil
}

func (f *fakeProgressRepo) SaveWithLog(ctx context.Context, progress *db_models.JourneyProgress, logRow *db_models.AccessLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress[progress.UserID] = progress
	f.logs = append(f.logs, *logRow)
	return nil
}

type fakeAnswerRepo struct {
	mu      sync.Mutex
	answers map[string]*db_models.DayAnswer
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: map[string]*db_models.DayAnswer{}}
}

func answerKey(userID uuid.UUID, key db_models.DayKey) string {
	return userID.String() + "/" + string(key)
}

func (f *fakeAnswerRepo) Upsert(ctx context.Context, answer *db_models.DayAnswer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if answer.ID == uuid.Nil {
		answer.ID = uuid.New()
	}
	f.answers[answerKey(answer.UserID, answer.DayKey)] = answer
	return nil
}

func (f *fakeAnswerRepo) FindByUserAndKey(ctx context.Context, userID uuid.UUID, key db_models.DayKey) (*db_models.DayAnswer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.answers[answerKey(userID, key)]; ok {
		return a, nil
	}
	return nil, nil
}

func (f *fakeAnswerRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.DayAnswer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.DayAnswer
	for _, a := range f.answers {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*db_models.Payment
	logs     []db_models.AccessLog
	confirms int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*db_models.Payment{}}
}

func (f *fakePaymentRepo) Insert(ctx context.Context, payment *db_models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	f.payments[payment.ProviderPaymentID] = payment
	return nil
}

func (f *fakePaymentRepo) FindByProviderID(ctx context.Context, providerID string) (*db_models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.payments[providerID]; ok {
		return p, nil
	}
	return nil, nil
}

func (f *fakePaymentRepo) MarkFailed(ctx context.Context, providerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.payments[providerID]; ok && p.Status != db_models.PaymentStatusPaid {
		p.Status = db_models.PaymentStatusFailed
	}
	return nil
}

func (f *fakePaymentRepo) ConfirmApproved(ctx context.Context, providerID string, payload []byte, accessDays int, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[providerID]
	if !ok {
		return false, nil
	}
	if p.Status == db_models.PaymentStatusPaid {
		return false, nil
	}
	paidAt := now.Unix()
	p.Status = db_models.PaymentStatusPaid
	p.PaidAt = &paidAt
	f.confirms++
	f.logs = append(f.logs,
		db_models.AccessLog{UserID: &p.UserID, EventType: db_models.EventPaymentConfirmed},
		db_models.AccessLog{UserID: &p.UserID, EventType: db_models.EventAccessActivated})
	return true, nil
}

type fakeMailService struct {
	mu       sync.Mutex
	notified []string
	resets   []string
}

func (f *fakeMailService) SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, to)
	return nil
}

func (f *fakeMailService) SendMailToResetPassword(email, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets = append(f.resets, email)
	return nil
}

type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]string{}}
}

func (f *fakeTokenStore) Set(token string, accountEmail string, ttl time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = accountEmail
}

func (f *fakeTokenStore) Consume(token string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	email := f.tokens[token]
	delete(f.tokens, token)
	return email
}

func (f *fakeTokenStore) Peek(token string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email, ok := f.tokens[token]
	return email, ok
}

type fakeGateway struct {
	checkoutURL string
	linkStatus  string
	linkErr     error
	verifyData  *payos.WebhookDataType
	verifyErr   error
	createErr   error
}

func (f *fakeGateway) CreatePaymentLink(body payos.CheckoutRequestType) (*payos.CheckoutResponseDataType, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &payos.CheckoutResponseDataType{CheckoutUrl: f.checkoutURL}, nil
}

func (f *fakeGateway) VerifyWebhook(body payos.WebhookType) (*payos.WebhookDataType, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.verifyData, nil
}

func (f *fakeGateway) GetPaymentLink(orderCode int64) (*payos.PaymentLinkDataType, error) {
	if f.linkErr != nil {
		return nil, f.linkErr
	}
	return &payos.PaymentLinkDataType{OrderCode: orderCode, Status: f.linkStatus}, nil
}
