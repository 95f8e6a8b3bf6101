package components

import (
	"parking-engine/internal/cli"

	"go.uber.org/fx"
)

var CLIModule = fx.Module("cli",
	fx.Provide(
		cli.NewRunner,
	),
)
