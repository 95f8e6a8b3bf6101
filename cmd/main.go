package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"parking-engine/cmd/bootstrap"
	"parking-engine/internal/cli"
	"parking-engine/internal/pkg/errs"

	"go.uber.org/fx"
)

func main() {
	os.Exit(run())
}

func run() int {
	var runner *cli.Runner
	app := fx.New(
		fx.NopLogger,
		bootstrap.Module,
		fx.Populate(&runner),
	)
	if err := app.Err(); err != nil {
		slog.Error("failed to build application", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errs.Is(err, cli.ErrUsage) {
			return 2
		}
		return 1
	}
	return 0
}
