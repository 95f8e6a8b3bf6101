package bootstrap

import (
	"parking-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.EngineModule,
	components.InfraModule,
	components.CLIModule,
)
