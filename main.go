package main

import (
	"context"
	"os"

	"github.com/prefix-dev/pixi-testsuite/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
