package config_fx

import (
	"go.uber.org/fx"

	"triday/internal/config"
)

var Module = fx.Provide(
	config.Load)
