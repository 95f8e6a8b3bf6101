package bootstrap

import (
	"log/slog"

	"parking-engine/internal/pkg/config"
	"parking-engine/internal/pkg/logger"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.LogConfig) *slog.Logger {
	return logger.New(cfg)
}
