package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/prefix-dev/pixi-testsuite/pkg/cli/config"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
	"github.com/prefix-dev/pixi-testsuite/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdEnv(projectRoot *string) *cli.Command {
	var wsCfg config.Workspace

	return &cli.Command{
		Name:  "env",
		Usage: "Resolve and print the effective test environment",
		Flags: wsCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			pixiPath, err := usecase.ResolvePixi(wsCfg.PixiBinDir, *projectRoot)
			if err != nil {
				return err
			}

			override, err := model.BuildBackendOverride(wsCfg.BuildBackendsBinDir)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "PIXI=%s\n", pixiPath)
			fmt.Fprintf(os.Stdout, "PIXI_BUILD_BACKEND_OVERRIDE=%s\n", override)
			return nil
		},
	}
}
