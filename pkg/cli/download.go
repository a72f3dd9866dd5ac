package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/cli/config"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/types"
	"github.com/prefix-dev/pixi-testsuite/pkg/infra/exec"
	githubinfra "github.com/prefix-dev/pixi-testsuite/pkg/infra/github"
	"github.com/prefix-dev/pixi-testsuite/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdDownloadArtifacts() *cli.Command {
	var (
		githubCfg config.GitHub
		wsCfg     config.Workspace

		repo      string
		runID     int64
		outputDir string
	)

	flags := append(githubCfg.Flags(), wsCfg.Flags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Restrict download to a single repository (pixi or pixi-build-backends); by default both are fetched",
			Destination: &repo,
		},
		&cli.Int64Flag{
			Name:        "run-id",
			Usage:       "Specific workflow run ID to download from; requires --repo",
			Destination: &runID,
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Directory to store downloaded binaries",
			Value:       types.DefaultOutputDir,
			Destination: &outputDir,
		},
	)

	return &cli.Command{
		Name:  "download-artifacts",
		Usage: "Download CI artifacts for pixi and pixi-build-backends from GitHub Actions",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if runID != 0 && repo == "" {
				return goerr.New("--run-id can only be used together with --repo")
			}

			targets, err := selectTargets(&wsCfg, repo)
			if err != nil {
				return err
			}

			token, err := githubCfg.ResolveToken(ctx)
			if err != nil {
				return err
			}

			uc := usecase.NewDownload(githubinfra.NewClient(token), exec.NewRunner(), outputDir)
			if err := uc.Download(ctx, targets, runID); err != nil {
				return err
			}

			color.Green("Download completed successfully!")
			return nil
		},
	}
}

func selectTargets(ws *config.Workspace, repo string) ([]model.ArtifactTarget, error) {
	switch repo {
	case "pixi":
		target, err := ws.PixiTarget()
		if err != nil {
			return nil, err
		}
		return []model.ArtifactTarget{target}, nil

	case "pixi-build-backends":
		target, err := ws.BuildBackendsTarget()
		if err != nil {
			return nil, err
		}
		return []model.ArtifactTarget{target}, nil

	case "":
		pixi, err := ws.PixiTarget()
		if err != nil {
			return nil, err
		}
		backends, err := ws.BuildBackendsTarget()
		if err != nil {
			return nil, err
		}
		return []model.ArtifactTarget{pixi, backends}, nil

	default:
		return nil, goerr.New("unknown repository, expected pixi or pixi-build-backends",
			goerr.V("repo", repo))
	}
}
