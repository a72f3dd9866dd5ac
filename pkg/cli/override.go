package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/prefix-dev/pixi-testsuite/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdCheckOverride(projectRoot *string) *cli.Command {
	return &cli.Command{
		Name:  "check-override",
		Usage: "Fail when a .env.ci override file is present (CI merge gate)",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc := usecase.NewOverride()
			if err := uc.CheckOverride(ctx, *projectRoot); err != nil {
				return err
			}

			color.Green("No CI override files detected - safe to merge")
			return nil
		},
	}
}
