package config

import (
	"log/slog"

	"github.com/m-mizutani/bzsweep/pkg/domain/model"
	"github.com/m-mizutani/bzsweep/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type Sweep struct {
	root    string
	onError string
	dryRun  bool
}

func (x *Sweep) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "root",
			Aliases:     []string{"r"},
			Usage:       "Directory to scan recursively for .bz2 archives",
			Category:    "Sweep",
			Required:    true,
			Sources:     cli.EnvVars("BZSWEEP_ROOT"),
			Destination: &x.root,
		},
		&cli.StringFlag{
			Name:        "on-error",
			Usage:       "What to do when an archive fails to decompress [abort|skip]",
			Category:    "Sweep",
			Value:       string(types.ErrorPolicyAbort),
			Sources:     cli.EnvVars("BZSWEEP_ON_ERROR"),
			Destination: &x.onError,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Report what would be decompressed without writing anything",
			Category:    "Sweep",
			Sources:     cli.EnvVars("BZSWEEP_DRY_RUN"),
			Destination: &x.dryRun,
		},
	}
}

// Input builds a validated sweep input from the parsed flags.
func (x *Sweep) Input() (*model.SweepInput, error) {
	input := &model.SweepInput{
		Root:    x.root,
		OnError: types.ErrorPolicy(x.onError),
		DryRun:  x.dryRun,
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return input, nil
}

func (x *Sweep) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("root", x.root),
		slog.String("on_error", x.onError),
		slog.Bool("dry_run", x.dryRun),
	)
}
