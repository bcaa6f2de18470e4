package admin_fx

import (
	"go.uber.org/fx"

	"triday/internal/repositories"
	"triday/internal/services"
)

var Module = fx.Provide(
	provideAdminService)

func provideAdminService(
	userRepo repositories.UserRepository,
	logRepo repositories.AccessLogRepository,
	settingRepo repositories.SettingRepository,
	mailService services.IMailService,
) services.AdminServiceInterface {
	return services.NewAdminService(userRepo, logRepo, settingRepo, mailService)
}
