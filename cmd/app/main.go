package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"triday/cmd/fx/account_fx"
	"triday/cmd/fx/admin_fx"
	"triday/cmd/fx/answers_fx"
	"triday/cmd/fx/config_fx"
	"triday/cmd/fx/controllers_fx"
	"triday/cmd/fx/db_fx"
	"triday/cmd/fx/mail_fx"
	"triday/cmd/fx/memcache_fx"
	"triday/cmd/fx/payment_fx"
	"triday/cmd/fx/progress_fx"
	"triday/internal/api/controllers"
	"triday/internal/config"
	"triday/internal/models/db_models"
	"triday/internal/repositories"
	"triday/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		progress_fx.Module,
		answers_fx.Module,
		admin_fx.Module,
		payment_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedSettings),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func SeedSettings(settingRepo repositories.SettingRepository) error {
	return settingRepo.SeedDefaults(context.Background(), map[string]string{
		db_models.SettingDefaultAccessDays: "60",
		db_models.SettingProgramPriceMinor: "199000",
		db_models.SettingProgramCurrency:   "VND",
	})
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Server.Port)
				if err := engine.Run(":" + cfg.Server.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	progressController *controllers.ProgressController,
	answerController *controllers.AnswerController,
	adminController *controllers.AdminController,
	paymentController *controllers.PaymentController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		progressController,
		answerController,
		adminController,
		paymentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	progressController *controllers.ProgressController,
	answerController *controllers.AnswerController,
	adminController *controllers.AdminController,
	paymentController *controllers.PaymentController) {

	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/forgot-password", accountController.ForgotPassword)
	authGroup.POST("/reset-password", accountController.ResetPassword)
	authGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)
	authGroup.PUT("/me", middleware.JWTAuthMiddleware(), accountController.UpdateMe)

	progressGroup := r.Group("/api/progress", middleware.JWTAuthMiddleware())
	progressGroup.GET("", progressController.GetProgress)
	progressGroup.PUT("", progressController.UpdateProgress)
	progressGroup.POST("/complete-day", progressController.CompleteDay)

	answersGroup := r.Group("/api/answers", middleware.JWTAuthMiddleware())
	answersGroup.GET("", answerController.ListAnswers)
	answersGroup.GET("/:dayKey", answerController.GetAnswer)
	answersGroup.PUT("/:dayKey", answerController.SaveAnswer)

	adminGroup := r.Group("/api/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.GET("/users", adminController.ListUsers)
	adminGroup.POST("/users", adminController.CreateUser)
	adminGroup.GET("/users/:id", adminController.GetUser)
	adminGroup.PUT("/users/:id", adminController.UpdateUser)
	adminGroup.DELETE("/users/:id", adminController.DeleteUser)
	adminGroup.POST("/users/:id/suspend", adminController.SuspendUser)
	adminGroup.POST("/users/:id/reactivate", adminController.ReactivateUser)
	adminGroup.GET("/logs", adminController.ListLogs)
	adminGroup.GET("/settings", adminController.GetSettings)
	adminGroup.PUT("/settings", adminController.UpdateSetting)

	paymentGroup := r.Group("/api/payments")
	paymentGroup.POST("/checkout", middleware.JWTAuthMiddleware(), paymentController.CreateCheckout)
	paymentGroup.POST("/verify", middleware.JWTAuthMiddleware(), paymentController.VerifyPayment)
	paymentGroup.POST("/webhook", paymentController.HandleWebhook)
}
