package payment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"triday/internal/config"
	"triday/internal/repositories"
	"triday/internal/services"
)

var Module = fx.Provide(
	providePaymentRepo, providePaymentService)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(
	paymentRepo repositories.PaymentRepository,
	settingRepo repositories.SettingRepository,
	cfg *config.Config,
) (services.PaymentServiceInterface, error) {
	return services.NewPaymentService(paymentRepo, settingRepo, cfg.PayOS)
}
