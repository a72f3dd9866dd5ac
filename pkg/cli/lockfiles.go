package cli

import (
	"context"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/prefix-dev/pixi-testsuite/pkg/cli/config"
	"github.com/prefix-dev/pixi-testsuite/pkg/infra/exec"
	"github.com/prefix-dev/pixi-testsuite/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdUpdateLockfiles(projectRoot *string) *cli.Command {
	var wsCfg config.Workspace

	return &cli.Command{
		Name:      "update-lockfiles",
		Usage:     "Run pixi lock in every test data directory containing a pixi.lock",
		ArgsUsage: "[folder]",
		Flags:     wsCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			pixiPath, err := usecase.ResolvePixi(wsCfg.PixiBinDir, *projectRoot)
			if err != nil {
				return err
			}

			baseDir := filepath.Join(*projectRoot, "tests", "data", "pixi_build")
			if folder := c.Args().First(); folder != "" {
				baseDir = filepath.Join(baseDir, folder)
			}

			uc := usecase.NewLockfile(exec.NewRunner(), pixiPath)
			if err := uc.UpdateLockfiles(ctx, baseDir); err != nil {
				return err
			}

			color.Green("All lockfiles processed successfully!")
			return nil
		},
	}
}
