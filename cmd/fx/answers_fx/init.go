package answers_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"triday/internal/repositories"
	"triday/internal/services"
)

var Module = fx.Provide(
	provideAnswerRepo, provideAnswerService)

func provideAnswerRepo(db *gorm.DB) repositories.AnswerRepository {
	return repositories.NewAnswerRepository(db)
}

func provideAnswerService(answerRepo repositories.AnswerRepository) services.AnswerServiceInterface {
	return services.NewAnswerService(answerRepo)
}
