package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	payos "github.com/payOSHQ/payos-lib-golang"

	"triday/internal/config"
	"triday/internal/models/db_models"
	"triday/internal/models/response_models"
	"triday/internal/repositories"
	"triday/pkg/utils"
)

// Every confirmed payment grants a fixed 60-day access window,
// regardless of the default duration admins configure for new signups.
const paidAccessDays = 60

const providerName = "payos"

const paidStatus = "PAID"

// PaymentGateway narrows the payOS SDK surface the service needs, so
// confirmation logic can be exercised without the provider.
type PaymentGateway interface {
	CreatePaymentLink(body payos.CheckoutRequestType) (*payos.CheckoutResponseDataType, error)
	VerifyWebhook(body payos.WebhookType) (*payos.WebhookDataType, error)
	GetPaymentLink(orderCode int64) (*payos.PaymentLinkDataType, error)
}

type payosGateway struct{}

func (payosGateway) CreatePaymentLink(body payos.CheckoutRequestType) (*payos.CheckoutResponseDataType, error) {
	return payos.CreatePaymentLink(body)
}

func (payosGateway) VerifyWebhook(body payos.WebhookType) (*payos.WebhookDataType, error) {
	return payos.VerifyPaymentWebhookData(body)
}

func (payosGateway) GetPaymentLink(orderCode int64) (*payos.PaymentLinkDataType, error) {
	return payos.GetPaymentLinkInformation(strconv.FormatInt(orderCode, 10))
}

type PaymentServiceInterface interface {
	CreateCheckout(ctx context.Context, userID uuid.UUID) (*response_models.CreateCheckoutResponse, error)
	VerifyPayment(ctx context.Context, userID uuid.UUID, orderCode int64) (*response_models.VerifyPaymentResponse, error)
	HandleWebhook(ctx context.Context, rawBody []byte) error
}

type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	settingRepo repositories.SettingRepository
	gateway     PaymentGateway
	cfg         config.PayOSConfig
	now         func() time.Time
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	settingRepo repositories.SettingRepository,
	cfg config.PayOSConfig,
) (PaymentServiceInterface, error) {
	if cfg.ClientID == "" || cfg.APIKey == "" || cfg.ChecksumKey == "" {
		return nil, errors.New("missing payOS credentials")
	}
	if err := payos.Key(cfg.ClientID, cfg.APIKey, cfg.ChecksumKey); err != nil {
		return nil, fmt.Errorf("payos client init: %w", err)
	}

	return &PaymentService{
		paymentRepo: paymentRepo,
		settingRepo: settingRepo,
		gateway:     payosGateway{},
		cfg:         cfg,
		now:         time.Now,
	}, nil
}

func (p *PaymentService) CreateCheckout(ctx context.Context, userID uuid.UUID) (*response_models.CreateCheckoutResponse, error) {
	amount := p.settingInt64(ctx, db_models.SettingProgramPriceMinor, 199000)
	currency := strings.ToUpper(p.settingString(ctx, db_models.SettingProgramCurrency, "VND"))
	if amount <= 0 {
		return nil, utils.ErrInvalidInput
	}

	// payOS expects an int64 order code; unix seconds plus a short
	// random suffix keeps it unique enough within 13 digits.
	orderCode := p.now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)
	providerID := providerPaymentID(orderCode)

	payment := &db_models.Payment{
		ProviderPaymentID: providerID,
		UserID:            userID,
		Status:            db_models.PaymentStatusPending,
		AmountMinor:       amount,
		Currency:          currency,
	}
	if err := p.paymentRepo.Insert(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	body := payos.CheckoutRequestType{
		OrderCode: orderCode,
		Amount:    int(amount),
		Items: []payos.Item{{
			Name:     "3-day self-care journey",
			Price:    int(amount),
			Quantity: 1,
		}},
		Description: "Triday program access",
		CancelUrl:   p.cfg.CancelURL,
		ReturnUrl:   p.cfg.ReturnURL,
	}

	resp, err := p.gateway.CreatePaymentLink(body)
	if err != nil {
		if markErr := p.paymentRepo.MarkFailed(ctx, providerID); markErr != nil {
			log.Printf("mark payment failed (%s): %v", providerID, markErr)
		}
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:    orderCode,
		Amount:       amount,
		Currency:     currency,
		PaymentURL:   resp.CheckoutUrl,
		ProviderName: providerName,
	}, nil
}

// VerifyPayment is the client-initiated confirmation path. It races
// the webhook; the repository's confirm step makes the pair
// exactly-once.
func (p *PaymentService) VerifyPayment(ctx context.Context, userID uuid.UUID, orderCode int64) (*response_models.VerifyPaymentResponse, error) {
	providerID := providerPaymentID(orderCode)

	payment, err := p.paymentRepo.FindByProviderID(ctx, providerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payment == nil || payment.UserID != userID {
		return nil, utils.ErrPaymentNotFound
	}

	info, err := p.gateway.GetPaymentLink(orderCode)
	if err != nil {
		return nil, fmt.Errorf("payos link lookup: %w", err)
	}

	if info.Status != paidStatus {
		return &response_models.VerifyPaymentResponse{Status: info.Status, Activated: false}, nil
	}

	payload, _ := json.Marshal(info)
	activated, err := p.paymentRepo.ConfirmApproved(ctx, providerID, payload, paidAccessDays, p.now())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.VerifyPaymentResponse{Status: info.Status, Activated: activated}, nil
}

func (p *PaymentService) HandleWebhook(ctx context.Context, rawBody []byte) error {
	var body payos.WebhookType
	if err := json.Unmarshal(rawBody, &body); err != nil {
		return utils.ErrInvalidInput
	}

	// Signature check first; an unverifiable payload changes nothing.
	data, err := p.gateway.VerifyWebhook(body)
	if err != nil {
		log.Printf("webhook verification failed: %v", err)
		return utils.ErrInvalidInput
	}

	// payOS sends order code 123 when confirming the webhook URL.
	if data.OrderCode == 123 {
		return nil
	}

	providerID := providerPaymentID(data.OrderCode)

	payment, err := p.paymentRepo.FindByProviderID(ctx, providerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if payment == nil {
		// Ack unknown orders to avoid a retry storm, but leave a trace.
		log.Printf("webhook: no payment recorded for order %d", data.OrderCode)
		return nil
	}

	payload, _ := json.Marshal(data)
	activated, err := p.paymentRepo.ConfirmApproved(ctx, providerID, payload, paidAccessDays, p.now())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !activated {
		log.Printf("webhook: order %d already processed", data.OrderCode)
	}

	return nil
}

func providerPaymentID(orderCode int64) string {
	return fmt.Sprintf("%s:%d", providerName, orderCode)
}

func (p *PaymentService) settingString(ctx context.Context, key, fallback string) string {
	setting, err := p.settingRepo.Get(ctx, key)
	if err != nil || setting == nil || setting.Value == "" {
		return fallback
	}
	return setting.Value
}

func (p *PaymentService) settingInt64(ctx context.Context, key string, fallback int64) int64 {
	if v := p.settingString(ctx, key, ""); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
