package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/interfaces"
)

// BuildAutotools builds a native library dependency with the standard
// configure / make / make install sequence, installing into prefix.
func BuildAutotools(ctx context.Context, runner interfaces.CommandRunner, sourceDir, prefix string, jobs int) error {
	logger := ctxlog.From(ctx)

	absPrefix, err := filepath.Abs(prefix)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve prefix", goerr.V("prefix", prefix))
	}

	steps := [][]string{
		{
			"./configure",
			"--prefix=" + absPrefix,
			"--oldincludedir=" + filepath.Join(absPrefix, "include"),
			"--enable-shared",
		},
		{"make", fmt.Sprintf("-j%d", jobs)},
		{"make", "install"},
	}

	for _, step := range steps {
		logger.Info("Running build step", "dir", sourceDir, "command", strings.Join(step, " "))

		out, err := runner.Run(ctx, sourceDir, step[0], step[1:]...)
		if err != nil {
			return goerr.Wrap(err, "build step failed",
				goerr.V("command", strings.Join(step, " ")),
				goerr.V("dir", sourceDir),
				goerr.V("output", strings.TrimSpace(string(out))),
			)
		}
	}

	logger.Info("Native build complete", "prefix", absPrefix)
	return nil
}
