package components

import (
	"parking-engine/internal/infra/lock"
	"parking-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			lock.NewKeyedLocker,
			fx.As(new(commands.ParkingLocker)),
		),
	),
)
