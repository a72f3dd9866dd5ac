package cli

import (
	"context"
	"runtime"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/cli/config"
	"github.com/prefix-dev/pixi-testsuite/pkg/infra/exec"
	"github.com/prefix-dev/pixi-testsuite/pkg/infra/git"
	"github.com/prefix-dev/pixi-testsuite/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdBuildRepos() *cli.Command {
	var (
		wsCfg     config.Workspace
		notifyCfg config.Notify
	)

	flags := append(wsCfg.Flags(), notifyCfg.Flags()...)

	return &cli.Command{
		Name:  "build-repos",
		Usage: "Pull and build the local pixi and pixi-build-backends checkouts",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if wsCfg.PixiRepo == "" {
				return goerr.New("PIXI_REPO is not set")
			}
			if wsCfg.BuildBackendsRepo == "" {
				return goerr.New("BUILD_BACKENDS_REPO is not set")
			}

			runner := exec.NewRunner()
			uc := usecase.NewBuild(git.NewClient(runner), runner, notifyCfg.Notifier())

			repos := map[string]string{
				"PIXI_REPO":           wsCfg.PixiRepo,
				"BUILD_BACKENDS_REPO": wsCfg.BuildBackendsRepo,
			}
			if err := uc.BuildRepos(ctx, repos); err != nil {
				return err
			}

			color.Green("All repositories processed successfully!")
			return nil
		},
	}
}

func cmdBuildDeps() *cli.Command {
	var (
		sourceDir string
		prefix    string
		jobs      int
	)

	return &cli.Command{
		Name:  "build-deps",
		Usage: "Build a native library dependency with configure/make/make install",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "source",
				Usage:       "Directory containing the configure script",
				Required:    true,
				Destination: &sourceDir,
			},
			&cli.StringFlag{
				Name:        "prefix",
				Usage:       "Installation prefix",
				Required:    true,
				Destination: &prefix,
			},
			&cli.IntFlag{
				Name:        "jobs",
				Usage:       "Parallel make jobs",
				Value:       runtime.GOMAXPROCS(0),
				Destination: &jobs,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := usecase.BuildAutotools(ctx, exec.NewRunner(), sourceDir, prefix, jobs); err != nil {
				return err
			}

			color.Green("Native build installed to %s", prefix)
			return nil
		},
	}
}
