package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"triday/internal/config"
	"triday/internal/infra"
	"triday/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	provideUserRepo,
	provideAccessLogRepo,
	provideSettingRepo)

func provideDB(lc fx.Lifecycle, cfg *config.Config) *gorm.DB {
	db := infra.InitPostgresql(cfg)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})

	return db
}

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccessLogRepo(db *gorm.DB) repositories.AccessLogRepository {
	return repositories.NewAccessLogRepository(db)
}

func provideSettingRepo(db *gorm.DB) repositories.SettingRepository {
	return repositories.NewSettingRepository(db)
}
