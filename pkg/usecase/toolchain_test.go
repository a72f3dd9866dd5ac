package usecase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
	"github.com/prefix-dev/pixi-testsuite/pkg/usecase"
)

func writePixiBinary(t *testing.T, dir string) string {
	t.Helper()
	gt.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, model.ExecName("pixi"))
	gt.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	return path
}

func TestResolvePixi_BinDir(t *testing.T) {
	binDir := t.TempDir()
	want := writePixiBinary(t, binDir)

	got, err := usecase.ResolvePixi(binDir, t.TempDir())
	gt.NoError(t, err)
	gt.Value(t, got).Equal(want)
}

func TestResolvePixi_ArtifactsFallback(t *testing.T) {
	root := t.TempDir()
	want := writePixiBinary(t, filepath.Join(root, "artifacts"))

	got, err := usecase.ResolvePixi("", root)
	gt.NoError(t, err)
	gt.Value(t, got).Equal(want)
}

func TestResolvePixi_NestedFallback(t *testing.T) {
	root := t.TempDir()
	want := writePixiBinary(t, filepath.Join(root, "artifacts", "pixi"))

	got, err := usecase.ResolvePixi("", root)
	gt.NoError(t, err)
	gt.Value(t, got).Equal(want)
}

func TestResolvePixi_NotFound(t *testing.T) {
	_, err := usecase.ResolvePixi("", t.TempDir())
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("PIXI_BIN_DIR")
}

func TestResolvePixi_InvalidBinDir(t *testing.T) {
	_, err := usecase.ResolvePixi(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	gt.Error(t, err)
}

func TestResolvePixi_MissingExecutable(t *testing.T) {
	_, err := usecase.ResolvePixi(t.TempDir(), t.TempDir())
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("pixi executable not found")
}
