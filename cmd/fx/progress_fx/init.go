package progress_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"triday/internal/repositories"
	"triday/internal/services"
)

var Module = fx.Provide(
	provideProgressRepo, provideProgressService)

func provideProgressRepo(db *gorm.DB) repositories.ProgressRepository {
	return repositories.NewProgressRepository(db)
}

func provideProgressService(progressRepo repositories.ProgressRepository, userRepo repositories.UserRepository) services.ProgressServiceInterface {
	return services.NewProgressService(progressRepo, userRepo)
}
