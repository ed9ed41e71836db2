package cli

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/bzsweep/pkg/cli/config"
	"github.com/m-mizutani/bzsweep/pkg/domain/interfaces"
	"github.com/m-mizutani/bzsweep/pkg/domain/model"
	"github.com/m-mizutani/bzsweep/pkg/infra"
	"github.com/m-mizutani/bzsweep/pkg/usecase"
	"github.com/m-mizutani/bzsweep/pkg/utils/errutil"
	"github.com/m-mizutani/bzsweep/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// ConfigureSentry is exported for testing purposes
var ConfigureSentry = func(ctx context.Context, s *config.Sentry) error {
	return s.Configure(ctx)
}

func sweepCommand() *cli.Command {
	var (
		sweep  config.Sweep
		sentry config.Sentry
	)

	return &cli.Command{
		Name:    "sweep",
		Aliases: []string{"sw"},
		Usage:   "Decompress every .bz2 archive under a directory whose output does not exist yet",
		Flags: slice.Flatten(
			sweep.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Debug("starting sweep",
				slog.Any("Sweep", &sweep),
				slog.Any("Sentry", &sentry),
			)

			input, err := sweep.Input()
			if err != nil {
				return err
			}

			if err := ConfigureSentry(ctx, &sentry); err != nil {
				return err
			}
			defer sentry.Flush(ctx)

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			uc := usecase.New(infra.New())
			return runSweep(ctx, uc, input)
		},
	}
}

func runSweep(ctx context.Context, uc interfaces.UseCase, input *model.SweepInput) error {
	if _, err := uc.SweepArchives(ctx, input); err != nil {
		errutil.HandleError(ctx, "Sweep failed", err)
		return err
	}
	return nil
}
