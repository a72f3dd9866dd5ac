package model_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
)

func TestBuildBackendOverride(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range model.KnownBackends {
		path := filepath.Join(dir, model.ExecName(backend))
		gt.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	}

	override, err := model.BuildBackendOverride(dir)
	gt.NoError(t, err)

	parts := strings.Split(override, "::")
	gt.Number(t, len(parts)).Equal(len(model.KnownBackends))
	for i, backend := range model.KnownBackends {
		name, path, ok := strings.Cut(parts[i], "=")
		gt.Value(t, ok).Equal(true)
		gt.Value(t, name).Equal(backend)
		gt.String(t, path).Contains(dir)
	}
}

func TestBuildBackendOverride_MissingBackend(t *testing.T) {
	dir := t.TempDir()
	// Only one of the expected backends is present
	gt.NoError(t, os.WriteFile(filepath.Join(dir, model.ExecName("pixi-build-cmake")), []byte("x"), 0o755))

	_, err := model.BuildBackendOverride(dir)
	gt.Error(t, err)
}

func TestBuildBackendOverride_InvalidDir(t *testing.T) {
	_, err := model.BuildBackendOverride(filepath.Join(t.TempDir(), "missing"))
	gt.Error(t, err)
}
