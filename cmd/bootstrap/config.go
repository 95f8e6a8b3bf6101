package bootstrap

import (
	"parking-engine/internal/pkg/config"

	"go.uber.org/fx"
)

// sections splits the loaded config so modules depend only on their part.
type sections struct {
	fx.Out

	Billing  config.BillingConfig
	Schedule config.ScheduleConfig
	Log      config.LogConfig
}

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) sections {
			return sections{Billing: cfg.Billing, Schedule: cfg.Schedule, Log: cfg.Log}
		},
	),
)
