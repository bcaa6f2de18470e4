package account_fx

import (
	"go.uber.org/fx"

	"triday/internal/repositories"
	"triday/internal/services"
	mem "triday/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService)

func provideAccountService(
	userRepo repositories.UserRepository,
	logRepo repositories.AccessLogRepository,
	settingRepo repositories.SettingRepository,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, logRepo, settingRepo, mailService, resetTokens)
}
