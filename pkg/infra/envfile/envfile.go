// Package envfile loads the testsuite .env and .env.ci override files.
package envfile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/types"
)

// Load reads .env and then .env.ci from the project root. Values in .env.ci
// override values from .env so CI override files take precedence. Missing
// files are skipped silently.
func Load(ctx context.Context, projectRoot string) error {
	logger := ctxlog.From(ctx)

	envPath := filepath.Join(projectRoot, types.EnvFile)
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return goerr.Wrap(err, "failed to load env file", goerr.V("path", envPath))
		}
		logger.Debug("Loaded environment variables", "path", envPath)
	}

	ciPath := filepath.Join(projectRoot, types.EnvCIFile)
	if _, err := os.Stat(ciPath); err == nil {
		// Overload so PR/branch overrides in .env.ci win over .env
		if err := godotenv.Overload(ciPath); err != nil {
			return goerr.Wrap(err, "failed to load CI override file", goerr.V("path", ciPath))
		}
		logger.Info("Loaded CI override variables", "path", ciPath)
	}

	return nil
}
