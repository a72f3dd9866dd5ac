package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/prefix-dev/pixi-testsuite/pkg/usecase"
)

func TestCheckOverride_Clean(t *testing.T) {
	uc := usecase.NewOverride()
	gt.NoError(t, uc.CheckOverride(context.Background(), t.TempDir()))
}

func TestCheckOverride_EnvCIPresent(t *testing.T) {
	root := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(root, ".env.ci"), []byte("PIXI_PR_NUMBER=123\n"), 0o644))

	uc := usecase.NewOverride()
	err := uc.CheckOverride(context.Background(), root)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains(".env.ci")
	gt.String(t, err.Error()).Contains("must not be merged")
}
