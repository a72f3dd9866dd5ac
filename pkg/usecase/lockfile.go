package usecase

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/interfaces"
)

type lockfileUseCase struct {
	runner   interfaces.CommandRunner
	pixiPath string
}

// NewLockfile creates a new LockfileUseCase running the given pixi
// executable.
func NewLockfile(runner interfaces.CommandRunner, pixiPath string) interfaces.LockfileUseCase {
	return &lockfileUseCase{
		runner:   runner,
		pixiPath: pixiPath,
	}
}

// UpdateLockfiles runs pixi lock in every directory containing a pixi.lock
// below baseDir, stopping at the first failure.
func (uc *lockfileUseCase) UpdateLockfiles(ctx context.Context, baseDir string) error {
	logger := ctxlog.From(ctx)

	if fi, err := os.Stat(baseDir); err != nil || !fi.IsDir() {
		return goerr.New("lockfile directory does not exist", goerr.V("dir", baseDir))
	}

	var lockDirs []string
	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == "pixi.lock" {
			lockDirs = append(lockDirs, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return goerr.Wrap(err, "failed to search for lockfiles", goerr.V("dir", baseDir))
	}

	if len(lockDirs) == 0 {
		logger.Warn("No pixi.lock files found", "dir", baseDir)
		return nil
	}

	logger.Info("Found lockfiles", "count", len(lockDirs))

	for _, dir := range lockDirs {
		logger.Info("Updating lockfile", "dir", dir, "workspace", workspaceName(dir))

		out, err := uc.runner.Run(ctx, dir, uc.pixiPath, "lock")
		if err != nil {
			return goerr.Wrap(err, "failed to run pixi lock",
				goerr.V("dir", dir),
				goerr.V("output", strings.TrimSpace(string(out))),
			)
		}

		logger.Info("Successfully updated lockfile", "dir", dir)
	}

	return nil
}

// workspaceName reads the workspace name from the pixi.toml manifest next to
// a lockfile. Best effort; missing or malformed manifests yield "".
func workspaceName(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "pixi.toml"))
	if err != nil {
		return ""
	}

	var manifest struct {
		Workspace struct {
			Name string `toml:"name"`
		} `toml:"workspace"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return ""
	}

	return manifest.Workspace.Name
}
