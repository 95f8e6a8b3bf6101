package components

import (
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/schedule"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	fx.Provide(
		scheduleLocation,
		clock.NewRealClock,
		schedule.NewCoverage,
		newCalculator,
	),
)

func scheduleLocation(cfg config.ScheduleConfig) (*time.Location, error) {
	return cfg.Location()
}

func newCalculator(cfg config.BillingConfig) (*billing.Calculator, error) {
	return billing.NewCalculator(billing.Config{
		SlotMinutes:       cfg.SlotMinutes,
		PenaltyMultiplier: cfg.PenaltyMultiplier,
	})
}
