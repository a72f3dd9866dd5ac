package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/interfaces"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/types"
)

type overrideUseCase struct{}

// NewOverride creates a new OverrideUseCase.
func NewOverride() interfaces.OverrideUseCase {
	return &overrideUseCase{}
}

// CheckOverride returns an error if a .env.ci override file is present in
// the project root. CI runs this on pull requests so branch/PR override
// configuration never reaches main.
func (uc *overrideUseCase) CheckOverride(ctx context.Context, projectRoot string) error {
	overridePath := filepath.Join(projectRoot, types.EnvCIFile)

	if _, err := os.Stat(overridePath); err == nil {
		return goerr.New(types.EnvCIFile+" file detected; it is used for testing PR combinations "+
			"and must not be merged to main, remove it from your branch",
			goerr.V("path", overridePath),
		)
	}

	ctxlog.From(ctx).Info("No CI override files detected, safe to merge")
	return nil
}
