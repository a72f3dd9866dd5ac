package cli

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/prefix-dev/pixi-testsuite/pkg/cli/config"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/types"
	"github.com/prefix-dev/pixi-testsuite/pkg/infra/envfile"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var logger *slog.Logger
	var projectRoot string

	flags := append(loggerCfg.Flags(),
		&cli.StringFlag{
			Name:        "project-root",
			Usage:       "Testsuite project root containing .env/.env.ci and test data",
			Value:       ".",
			Destination: &projectRoot,
			Sources:     cli.EnvVars("PIXI_TESTSUITE_ROOT"),
		},
	)

	app := &cli.Command{
		Name:    "testsuite",
		Usage:   "Cross-repository integration testsuite tooling for pixi and pixi-build-backends",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			logger = logger.With(slog.String("session", uuid.NewString()))

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			// Load .env and .env.ci before subcommand flags resolve their
			// environment sources, so file overrides reach the flags.
			if err := envfile.Load(ctx, projectRoot); err != nil {
				return nil, err
			}

			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdDownloadArtifacts(),
			cmdBuildRepos(),
			cmdUpdateLockfiles(&projectRoot),
			cmdCheckOverride(&projectRoot),
			cmdEnv(&projectRoot),
			cmdBuildDeps(),
			cmdServeChannel(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
