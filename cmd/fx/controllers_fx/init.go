package controllers_fx

import (
	"go.uber.org/fx"

	"triday/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewProgressController,
	controllers.NewAnswerController,
	controllers.NewAdminController,
	controllers.NewPaymentController)
